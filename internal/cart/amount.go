package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on decoded decimals. Rescaling a value to two decimals costs time
// proportional to its exponent, so amounts outside these bounds are refused
// before any arithmetic touches them.
const (
	MaxAmountDigits   = 38
	MaxAmountExponent = 18
	MinAmountExponent = -MaxAmountDigits
)

// CheckMagnitude reports an error when d has more than MaxAmountDigits
// significant digits or an exponent outside [MinAmountExponent, MaxAmountExponent].
func CheckMagnitude(field string, d decimal.Decimal) error {
	if exp := d.Exponent(); exp > MaxAmountExponent || exp < MinAmountExponent {
		return fmt.Errorf("%s exponent %d is out of range", field, exp)
	}
	if digits := len(strings.TrimPrefix(d.Coefficient().String(), "-")); digits > MaxAmountDigits {
		return fmt.Errorf("%s has %d digits, at most %d allowed", field, digits, MaxAmountDigits)
	}
	return nil
}
