package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Number is a user-entered numeric value kept exactly as typed.
// It unmarshals from a JSON number, a JSON string or null.
type Number string

// UnmarshalJSON accepts any JSON value and never fails on a well-formed one.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("number: %w", err)
		}
		*n = Number(s)
	default:
		// Numbers, booleans, objects and arrays keep their raw text; anything
		// that is not a number degrades to zero when parsed.
		*n = Number(data)
	}
	return nil
}

// MarshalJSON writes the value back as a JSON string.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// NumberFrom formats a decimal as a Number.
func NumberFrom(d decimal.Decimal) Number {
	return Number(d.String())
}

// Money is a monetary amount rendered with exactly two decimal places.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// String returns the amount with two decimal places, e.g. "50.00".
func (m Money) String() string {
	return m.StringFixed(2)
}

// MarshalJSON writes the amount as a two-place JSON string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON reads an amount from a JSON string or number.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}
