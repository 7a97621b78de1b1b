package bundle

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how expanded prices are rounded to two decimals.
type RoundingMode string

const (
	// RoundHalfUp rounds halves away from zero on the exact decimal product,
	// so 1.005 becomes 1.01 where hosts rounding binary floats print 1.00.
	RoundHalfUp RoundingMode = "half-up"

	// RoundHalfEven rounds halves to the nearest even digit.
	RoundHalfEven RoundingMode = "half-even"
)

// priceDecimals is the number of decimals in presentment amounts.
const priceDecimals = 2

// ParseRoundingMode parses a rounding mode name.
// Returns false for unknown names.
func ParseRoundingMode(s string) (RoundingMode, bool) {
	switch strings.ToLower(s) {
	case "", "half-up", "halfup":
		return RoundHalfUp, true
	case "half-even", "halfeven", "bankers":
		return RoundHalfEven, true
	default:
		return "", false
	}
}

// ValidRoundingModes returns the accepted rounding mode names.
func ValidRoundingModes() []string {
	return []string{string(RoundHalfUp), string(RoundHalfEven)}
}

// Format renders d with exactly two decimals using the rounding mode.
func (m RoundingMode) Format(d decimal.Decimal) string {
	if m == RoundHalfEven {
		return d.StringFixedBank(priceDecimals)
	}
	return d.StringFixed(priceDecimals)
}

// Options configures an Expander. The zero value reproduces the host's
// historical behavior.
type Options struct {
	// StrictZeroQuantity treats a component quantity of 0 as malformed
	// configuration instead of defaulting it to 1.
	StrictZeroQuantity bool

	// Rounding selects the rounding of converted prices.
	Rounding RoundingMode
}

func (o Options) parseOptions() ParseOptions {
	return ParseOptions{StrictZeroQuantity: o.StrictZeroQuantity}
}
