package cart

// Result is the list of edits returned to the host.
type Result struct {
	Operations []Operation `json:"operations"`
}

// noChanges is shared by every invocation that produces no operations.
// Its Operations slice is empty and non-nil so it encodes as [].
var noChanges = Result{Operations: []Operation{}}

// NoChanges returns the shared "no changes" result.
func NoChanges() Result {
	return noChanges
}

// IsNoChanges reports whether the result carries no operations.
func (r Result) IsNoChanges() bool {
	return len(r.Operations) == 0
}

// Operation wraps a single cart edit. LineExpand is the only edit kind.
type Operation struct {
	LineExpand *LineExpandOperation `json:"lineExpand,omitempty"`
}

// LineExpandOperation replaces a cart line with its expanded items.
type LineExpandOperation struct {
	CartLineID        string         `json:"cartLineId"`
	ExpandedCartItems []ExpandedItem `json:"expandedCartItems"`
}

// ExpandedItem is one component line produced from a bundle line.
type ExpandedItem struct {
	MerchandiseID string         `json:"merchandiseId"`
	Quantity      int            `json:"quantity"`
	Price         *ExpandedPrice `json:"price,omitempty"`
}

// ExpandedPrice carries the price adjustment for an expanded item.
type ExpandedPrice struct {
	Adjustment PriceAdjustment `json:"adjustment"`
}

// PriceAdjustment fixes the per-unit price of an expanded item.
type PriceAdjustment struct {
	FixedPricePerUnit Money `json:"fixedPricePerUnit"`
}

// Money is a presentment-currency amount in fixed-point notation.
type Money struct {
	Amount string `json:"amount"`
}

// FixedPrice builds the price adjustment for a per-unit amount.
func FixedPrice(amount string) *ExpandedPrice {
	return &ExpandedPrice{
		Adjustment: PriceAdjustment{
			FixedPricePerUnit: Money{Amount: amount},
		},
	}
}

// UnitAmount returns the fixed per-unit amount, or "" when unset.
func (i ExpandedItem) UnitAmount() string {
	if i.Price == nil {
		return ""
	}
	return i.Price.Adjustment.FixedPricePerUnit.Amount
}
