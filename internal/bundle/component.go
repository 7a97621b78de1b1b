// Package bundle detects bundle products on cart lines and expands them into
// their component items.
package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/cartkit/bundle-expander/internal/cart"
)

// maxQuantity is the largest component quantity accepted.
const maxQuantity = math.MaxInt32

// ErrMalformedBundle indicates bundle configuration that does not match the
// component schema.
var ErrMalformedBundle = errors.New("malformed bundle configuration")

// Component is one entry of a bundle configuration.
type Component struct {
	// ID is the merchandise identifier of the component item.
	ID string

	// Quantity is the configured quantity; 0 when absent or zero.
	Quantity int

	// Price is the per-unit price in the reference currency.
	Price decimal.Decimal
}

// EffectiveQuantity returns the quantity to expand with. Zero means unset and
// falls back to 1.
func (c Component) EffectiveQuantity() int {
	if c.Quantity == 0 {
		return 1
	}
	return c.Quantity
}

// componentWire is the JSON shape of a component entry. Pointers distinguish
// absent fields from zero values.
type componentWire struct {
	ID       *string          `json:"id"`
	Quantity *json.Number     `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// ParseOptions tunes component validation.
type ParseOptions struct {
	// StrictZeroQuantity rejects entries with quantity 0 instead of treating
	// them as unset.
	StrictZeroQuantity bool
}

// ParseComponents decodes a bundle configuration value. The value must be a
// JSON array of objects with a string id, an optional non-negative integer
// quantity of at most maxQuantity and a non-negative price within the
// cart.CheckMagnitude bounds. Unknown fields are ignored.
// Every failure wraps ErrMalformedBundle.
func ParseComponents(raw string, opts ParseOptions) ([]Component, error) {
	var wire []componentWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBundle, err)
	}

	components := make([]Component, 0, len(wire))
	for i, w := range wire {
		c, err := w.component(opts)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d: %w", ErrMalformedBundle, i, err)
		}
		components = append(components, c)
	}
	return components, nil
}

func (w componentWire) component(opts ParseOptions) (Component, error) {
	if w.ID == nil || *w.ID == "" {
		return Component{}, errors.New("id is required")
	}
	if w.Price == nil {
		return Component{}, errors.New("price is required")
	}
	if err := cart.CheckMagnitude("price", *w.Price); err != nil {
		return Component{}, err
	}
	if w.Price.IsNegative() {
		return Component{}, fmt.Errorf("price %s is negative", w.Price.String())
	}

	qty, err := parseQuantity(w.Quantity)
	if err != nil {
		return Component{}, err
	}
	if qty == 0 && w.Quantity != nil && opts.StrictZeroQuantity {
		return Component{}, errors.New("quantity must be positive")
	}

	return Component{ID: *w.ID, Quantity: qty, Price: *w.Price}, nil
}

func parseQuantity(n *json.Number) (int, error) {
	if n == nil {
		return 0, nil
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not a number", n.String())
	}
	if err := cart.CheckMagnitude("quantity", d); err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("quantity %s is not an integer", d.String())
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("quantity %s is negative", d.String())
	}
	if d.GreaterThan(decimal.NewFromInt(maxQuantity)) {
		return 0, fmt.Errorf("quantity %s exceeds %d", d.String(), maxQuantity)
	}
	return int(d.IntPart()), nil
}
