package bundle

import (
	"github.com/shopspring/decimal"

	"github.com/cartkit/bundle-expander/internal/cart"
)

// Reason explains why a cart line was or was not expanded.
type Reason int

const (
	// ReasonExpanded means the line is a bundle and was expanded.
	ReasonExpanded Reason = iota

	// ReasonNotVariant means the merchandise is not a product variant.
	ReasonNotVariant

	// ReasonNoProduct means the variant has no product.
	ReasonNoProduct

	// ReasonNoBundleData means the product carries no bundle configuration.
	ReasonNoBundleData

	// ReasonMalformed means the bundle configuration failed to parse.
	ReasonMalformed

	// ReasonEmptyBundle means the configuration has no components.
	ReasonEmptyBundle
)

// String returns a short, human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonExpanded:
		return "expanded"
	case ReasonNotVariant:
		return "not a product variant"
	case ReasonNoProduct:
		return "no product"
	case ReasonNoBundleData:
		return "no bundle data"
	case ReasonMalformed:
		return "malformed bundle data"
	case ReasonEmptyBundle:
		return "empty bundle"
	default:
		return "unknown"
	}
}

// Decision is the outcome of classifying one cart line.
type Decision struct {
	Reason Reason

	// Operation is set only when Reason is ReasonExpanded.
	Operation *cart.LineExpandOperation

	// Components is the number of parsed components, if parsing got that far.
	Components int

	// Err holds the parse error for ReasonMalformed.
	Err error
}

// Expanded reports whether the decision produced an operation.
func (d Decision) Expanded() bool {
	return d.Reason == ReasonExpanded && d.Operation != nil
}

// Expander turns bundle cart lines into line expand operations.
// It holds no mutable state and is safe for concurrent use.
type Expander struct {
	opts Options
}

// NewExpander creates an Expander with the given options.
func NewExpander(opts Options) *Expander {
	if opts.Rounding == "" {
		opts.Rounding = RoundHalfUp
	}
	return &Expander{opts: opts}
}

// Options returns the options the expander was built with.
func (e *Expander) Options() Options {
	return e.opts
}

// Expand returns the expand operation for line, or false when the line is
// not an expandable bundle.
func (e *Expander) Expand(line cart.CartLine, rate decimal.Decimal) (cart.LineExpandOperation, bool) {
	d := e.Classify(line, rate)
	if !d.Expanded() {
		return cart.LineExpandOperation{}, false
	}
	return *d.Operation, true
}

// Classify runs the detection checks in order and stops at the first one
// that fails. Malformed configuration never escapes as an error; it is
// reported on the decision.
func (e *Expander) Classify(line cart.CartLine, rate decimal.Decimal) Decision {
	variant, ok := line.Merchandise.Variant()
	if !ok {
		return Decision{Reason: ReasonNotVariant}
	}
	if variant.Product == nil {
		return Decision{Reason: ReasonNoProduct}
	}

	raw, ok := variant.Product.BundleData()
	if !ok {
		return Decision{Reason: ReasonNoBundleData}
	}

	components, err := ParseComponents(raw, e.opts.parseOptions())
	if err != nil {
		return Decision{Reason: ReasonMalformed, Err: err}
	}
	if len(components) == 0 {
		return Decision{Reason: ReasonEmptyBundle}
	}

	items := e.expandItems(components, rate)
	if len(items) == 0 {
		return Decision{Reason: ReasonEmptyBundle, Components: len(components)}
	}

	return Decision{
		Reason:     ReasonExpanded,
		Components: len(components),
		Operation: &cart.LineExpandOperation{
			CartLineID:        line.ID,
			ExpandedCartItems: items,
		},
	}
}

func (e *Expander) expandItems(components []Component, rate decimal.Decimal) []cart.ExpandedItem {
	items := make([]cart.ExpandedItem, 0, len(components))
	for _, c := range components {
		items = append(items, cart.ExpandedItem{
			MerchandiseID: c.ID,
			Quantity:      c.EffectiveQuantity(),
			Price:         cart.FixedPrice(e.opts.Rounding.Format(c.Price.Mul(rate))),
		})
	}
	return items
}
