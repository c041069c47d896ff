package liqpay

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value. It wraps a decimal so that "1.10" survives a
// round trip without floating point drift, and it serializes as a bare JSON
// number because that is the form the gateway expects for amount fields.
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from value*10^exp, e.g. NewAmount(150, -2) is
// 1.50.
func NewAmount(value int64, exp int32) Amount {
	return Amount{decimal.New(value, exp)}
}

// ParseAmount parses a decimal string such as "100" or "1.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("liqpay: parse amount %q: %w", s, err)
	}
	return Amount{d}, nil
}

// AmountFromFloat converts a float64. Prefer [ParseAmount] or [NewAmount]
// when the value originates from user input.
func AmountFromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// MarshalJSON emits the amount as an unquoted number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted numbers; the gateway is
// not consistent across endpoints.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("liqpay: decode amount %s: %w", data, err)
	}
	a.Decimal = d
	return nil
}

// Positive reports whether the amount is greater than zero.
func (a Amount) Positive() bool {
	return a.Decimal.IsPositive()
}
