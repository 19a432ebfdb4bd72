package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every monetary value is rounded to.
const MoneyPlaces = 2

// settleEpsilon is the magnitude below which a balance counts as settled.
var settleEpsilon = decimal.RequireFromString("0.0001")

var hundred = decimal.NewFromInt(100)

// Bounds on parsed values. Rounding rescales a decimal to its exponent, so an
// input like "1e20000000" would otherwise expand to millions of digits.
const (
	maxExponent     = 20
	maxCoefficients = 30
)

// Round2 rounds d to two decimal places, half away from zero.
// For the non-negative amounts the calculator works with this is half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ParseAmount parses a user-entered numeric value.
// Empty, malformed or out-of-range input yields zero instead of an error:
// partially filled bills must still compute.
func ParseAmount(raw string) decimal.Decimal {
	d, ok := parseDecimal(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseNonNegative is ParseAmount with negative values clamped to zero.
func ParseNonNegative(raw string) decimal.Decimal {
	return clampNonNegative(ParseAmount(raw))
}

// IsDegraded reports whether ParseNonNegative replaces raw with zero.
// Blank input is a missing value, not a degraded one.
func IsDegraded(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	d, ok := parseDecimal(raw)
	return !ok || d.IsNegative()
}

func parseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return decimal.Zero, false
	}
	if d.NumDigits() > maxCoefficients {
		return decimal.Zero, false
	}
	return d, true
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// isSettled reports whether |d| is within the settle tolerance.
func isSettled(d decimal.Decimal) bool {
	return d.Abs().LessThan(settleEpsilon)
}
