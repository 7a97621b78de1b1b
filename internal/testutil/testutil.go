// Package testutil provides cart builders shared by the package tests.
package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/cartkit/bundle-expander/internal/cart"
)

// PlainLine returns a product variant line whose product has no bundle data.
func PlainLine(id string) cart.CartLine {
	return cart.CartLine{
		ID:       id,
		Quantity: 1,
		Merchandise: cart.NewProductVariant(cart.ProductVariant{
			ID:      id + "/variant",
			Product: &cart.Product{},
		}),
	}
}

// BundleLine returns a product variant line carrying data as its bundled
// component metafield value.
func BundleLine(id, data string) cart.CartLine {
	return cart.CartLine{
		ID:       id,
		Quantity: 1,
		Merchandise: cart.NewProductVariant(cart.ProductVariant{
			ID:      id + "/variant",
			Product: &cart.Product{BundledComponentData: &cart.Metafield{Value: data}},
		}),
	}
}

// OtherLine returns a line whose merchandise is not a product variant.
func OtherLine(id, typeName string) cart.CartLine {
	return cart.CartLine{ID: id, Merchandise: cart.NewOtherMerchandise(typeName)}
}

// Input builds a cart input. It panics on an invalid rate.
func Input(rate string, lines ...cart.CartLine) cart.Input {
	return cart.Input{
		Cart:                    cart.Cart{Lines: lines},
		PresentmentCurrencyRate: decimal.RequireFromString(rate),
	}
}

// Item builds an expected expanded cart item.
func Item(id string, qty int, amount string) cart.ExpandedItem {
	return cart.ExpandedItem{MerchandiseID: id, Quantity: qty, Price: cart.FixedPrice(amount)}
}
