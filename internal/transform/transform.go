// Package transform runs the bundle expander over a whole cart and folds the
// per-line results into the document returned to the host.
package transform

import (
	"github.com/cartkit/bundle-expander/internal/bundle"
	"github.com/cartkit/bundle-expander/internal/cart"
)

// Transformer applies bundle expansion to cart inputs.
// It holds only immutable options and is safe for concurrent use.
type Transformer struct {
	expander *bundle.Expander
}

// New creates a Transformer with the given expansion options.
func New(opts bundle.Options) *Transformer {
	return &Transformer{expander: bundle.NewExpander(opts)}
}

// Run transforms input with default options.
func Run(input cart.Input) cart.Result {
	return New(bundle.Options{}).Run(input)
}

// Run expands every bundle line of the cart in line order. Carts without
// bundle lines yield cart.NoChanges().
func (t *Transformer) Run(input cart.Input) cart.Result {
	var ops []cart.Operation
	for _, line := range input.Cart.Lines {
		op, ok := t.expander.Expand(line, input.PresentmentCurrencyRate)
		if !ok {
			continue
		}
		ops = append(ops, cart.Operation{LineExpand: &op})
	}

	if len(ops) == 0 {
		return cart.NoChanges()
	}
	return cart.Result{Operations: ops}
}
