package transform

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/cartkit/bundle-expander/internal/cart"
	"github.com/cartkit/bundle-expander/internal/testutil"
)

type expansionTestContext struct {
	input  cart.Input
	result cart.Result
}

func (c *expansionTestContext) reset() {
	c.input = cart.Input{PresentmentCurrencyRate: decimal.NewFromInt(1)}
	c.result = cart.Result{}
}

func (c *expansionTestContext) thePresentmentCurrencyRateIs(rate string) error {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return err
	}
	c.input.PresentmentCurrencyRate = d
	return nil
}

func (c *expansionTestContext) aCartLineForAPlainProduct(id string) error {
	c.input.Cart.Lines = append(c.input.Cart.Lines, testutil.PlainLine(id))
	return nil
}

func (c *expansionTestContext) aCartLineForOtherMerchandise(id string) error {
	c.input.Cart.Lines = append(c.input.Cart.Lines, testutil.OtherLine(id, "CustomProduct"))
	return nil
}

func (c *expansionTestContext) aCartLineWithBundleData(id, data string) error {
	c.input.Cart.Lines = append(c.input.Cart.Lines, testutil.BundleLine(id, data))
	return nil
}

func (c *expansionTestContext) aCartLineForABundleWithComponents(id string, table *godog.Table) error {
	var components []map[string]any
	for i, row := range table.Rows {
		if i == 0 {
			continue // skip header
		}
		price, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		comp := map[string]any{
			"id":    row.Cells[0].Value,
			"price": price,
		}
		if q := row.Cells[1].Value; q != "-" {
			n, err := strconv.Atoi(q)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			comp["quantity"] = n
		}
		components = append(components, comp)
	}

	data, err := json.Marshal(components)
	if err != nil {
		return err
	}
	c.input.Cart.Lines = append(c.input.Cart.Lines, testutil.BundleLine(id, string(data)))
	return nil
}

func (c *expansionTestContext) theCartIsTransformed() error {
	c.result = Run(c.input)
	return nil
}

func (c *expansionTestContext) theResultHasNoChanges() error {
	if !c.result.IsNoChanges() || c.result.Operations == nil {
		return fmt.Errorf("expected no changes, got %d operations", len(c.result.Operations))
	}
	return nil
}

func (c *expansionTestContext) theResultHasOperations(n int) error {
	if len(c.result.Operations) != n {
		return fmt.Errorf("expected %d operations, got %d", n, len(c.result.Operations))
	}
	return nil
}

func (c *expansionTestContext) operationExpandsLineInto(index int, lineID string, table *godog.Table) error {
	if index < 1 || index > len(c.result.Operations) {
		return fmt.Errorf("operation %d does not exist (have %d)", index, len(c.result.Operations))
	}
	op := c.result.Operations[index-1].LineExpand
	if op == nil {
		return fmt.Errorf("operation %d is not a line expand", index)
	}
	if op.CartLineID != lineID {
		return fmt.Errorf("expected cart line %q, got %q", lineID, op.CartLineID)
	}

	rows := table.Rows[1:]
	if len(op.ExpandedCartItems) != len(rows) {
		return fmt.Errorf("expected %d expanded items, got %d", len(rows), len(op.ExpandedCartItems))
	}
	for i, row := range rows {
		got := op.ExpandedCartItems[i]
		qty, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		if got.MerchandiseID != row.Cells[0].Value {
			return fmt.Errorf("item %d: expected merchandise %q, got %q", i+1, row.Cells[0].Value, got.MerchandiseID)
		}
		if got.Quantity != qty {
			return fmt.Errorf("item %d: expected quantity %d, got %d", i+1, qty, got.Quantity)
		}
		if got.UnitAmount() != row.Cells[2].Value {
			return fmt.Errorf("item %d: expected amount %s, got %s", i+1, row.Cells[2].Value, got.UnitAmount())
		}
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &expansionTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the presentment currency rate is "([^"]*)"$`, tc.thePresentmentCurrencyRateIs)
	ctx.Step(`^a cart line "([^"]*)" for a plain product$`, tc.aCartLineForAPlainProduct)
	ctx.Step(`^a cart line "([^"]*)" for other merchandise$`, tc.aCartLineForOtherMerchandise)
	ctx.Step(`^a cart line "([^"]*)" with bundle data "([^"]*)"$`, tc.aCartLineWithBundleData)
	ctx.Step(`^a cart line "([^"]*)" for a bundle with components:$`, tc.aCartLineForABundleWithComponents)

	// When steps
	ctx.Step(`^the cart is transformed$`, tc.theCartIsTransformed)

	// Then steps
	ctx.Step(`^the result has no changes$`, tc.theResultHasNoChanges)
	ctx.Step(`^the result has (\d+) operations?$`, tc.theResultHasOperations)
	ctx.Step(`^operation (\d+) expands line "([^"]*)" into:$`, tc.operationExpandsLineInto)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
