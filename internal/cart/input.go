// Package cart defines the documents exchanged with the host: the cart input
// snapshot and the transform result.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// TypeNameProductVariant is the __typename the host uses for product variants.
const TypeNameProductVariant = "ProductVariant"

// Input is the cart snapshot handed over by the host for one invocation.
type Input struct {
	Cart Cart `json:"cart"`

	// PresentmentCurrencyRate converts reference-currency prices into the
	// cart's display currency.
	PresentmentCurrencyRate decimal.Decimal `json:"presentmentCurrencyRate"`
}

// Cart is an ordered list of cart lines.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartLine is a single line of the cart.
type CartLine struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity,omitempty"`
	Merchandise Merchandise `json:"merchandise"`
}

// MerchandiseKind tags the merchandise variant of a cart line.
type MerchandiseKind int

const (
	// MerchandiseOther is any merchandise that is not a product variant.
	MerchandiseOther MerchandiseKind = iota

	// MerchandiseProductVariant is a purchasable variant of a product.
	MerchandiseProductVariant
)

// String returns the kind name.
func (k MerchandiseKind) String() string {
	switch k {
	case MerchandiseProductVariant:
		return "product-variant"
	default:
		return "other"
	}
}

// Merchandise is a tagged union over the merchandise kinds a cart line can
// reference. Only the product variant case carries data.
type Merchandise struct {
	Kind MerchandiseKind

	// TypeName is the raw __typename sent by the host.
	TypeName string

	variant *ProductVariant
}

// NewProductVariant returns merchandise holding the given variant.
func NewProductVariant(v ProductVariant) Merchandise {
	return Merchandise{
		Kind:     MerchandiseProductVariant,
		TypeName: TypeNameProductVariant,
		variant:  &v,
	}
}

// NewOtherMerchandise returns non-variant merchandise with the given typename.
func NewOtherMerchandise(typeName string) Merchandise {
	return Merchandise{Kind: MerchandiseOther, TypeName: typeName}
}

// Variant returns the product variant, or false for any other kind.
func (m Merchandise) Variant() (*ProductVariant, bool) {
	if m.Kind != MerchandiseProductVariant || m.variant == nil {
		return nil, false
	}
	return m.variant, true
}

// merchandiseWire is the flattened wire form of Merchandise.
type merchandiseWire struct {
	TypeName string   `json:"__typename"`
	ID       string   `json:"id,omitempty"`
	Product  *Product `json:"product,omitempty"`
}

// UnmarshalJSON decodes the __typename discriminator into a Kind.
func (m *Merchandise) UnmarshalJSON(data []byte) error {
	var w merchandiseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding merchandise: %w", err)
	}

	if w.TypeName != TypeNameProductVariant {
		*m = NewOtherMerchandise(w.TypeName)
		return nil
	}

	*m = NewProductVariant(ProductVariant{ID: w.ID, Product: w.Product})
	return nil
}

// MarshalJSON encodes the merchandise back into its wire form.
func (m Merchandise) MarshalJSON() ([]byte, error) {
	w := merchandiseWire{TypeName: m.TypeName}
	if v, ok := m.Variant(); ok {
		w.ID = v.ID
		w.Product = v.Product
	}
	return json.Marshal(w)
}

// ProductVariant references its parent product.
type ProductVariant struct {
	ID      string
	Product *Product
}

// Product carries the optional bundle configuration metafield.
type Product struct {
	ID                   string     `json:"id,omitempty"`
	BundledComponentData *Metafield `json:"bundledComponentData,omitempty"`
}

// BundleData returns the raw bundle configuration, or false when the
// metafield is missing or empty.
func (p *Product) BundleData() (string, bool) {
	if p == nil || p.BundledComponentData == nil || p.BundledComponentData.Value == "" {
		return "", false
	}
	return p.BundledComponentData.Value, true
}

// Metafield is a single product metafield value.
type Metafield struct {
	Value string `json:"value"`
}
