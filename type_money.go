package skinvault

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display purposes. Calculations stay
// on decimal.Decimal; Money only carries the currency for formatting.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a decimal amount and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency go through the money.Money constructor
	return *money.New(0, m.cur).Currency()
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

// Currency returns the currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String returns the currency-aware string representation of the value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
