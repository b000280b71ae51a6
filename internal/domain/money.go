package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an arbitrary-precision decimal amount.
//
// The zero value is a valid zero amount. Results are never clamped,
// so a subtraction may produce a negative value.
type Money struct {
	value decimal.Decimal
}

// Zero returns zero money.
func Zero() Money {
	return Money{value: decimal.Zero}
}

// NewMoney wraps the given decimal.
func NewMoney(d decimal.Decimal) Money {
	return Money{value: d}
}

// MoneyFromInt returns money holding the given whole number.
func MoneyFromInt(v int64) Money {
	return Money{value: decimal.NewFromInt(v)}
}

// ParseMoney parses a decimal string such as "10.25".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	return Money{value: d}, nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value)}
}

// Sign returns -1, 0 or 1 depending on the sign of m.
func (m Money) Sign() int {
	return m.value.Sign()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// Equal reports whether m and other hold the same amount regardless of scale.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) String() string {
	return m.value.String()
}

// MarshalJSON encodes money as a JSON string to keep precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON accepts both JSON strings and numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
