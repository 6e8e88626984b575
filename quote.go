package skinvault

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quote is the result of a single per-item price lookup. Both fields default
// to zero when the provider omits them or returns an unparsable string.
// A zero price means "unresolved", not "free".
type Quote struct {
	Lowest decimal.Decimal
	Median decimal.Decimal
}

// IsZero reports whether no price at all was resolved.
func (q Quote) IsZero() bool { return q.Lowest.IsZero() && q.Median.IsZero() }

// Price returns the price for the given field.
func (q Quote) Price(field PriceField) decimal.Decimal {
	if field == Median {
		return q.Median
	}
	return q.Lowest
}

// PriceField selects which of the two price-point conventions reported by the
// market endpoint is used in aggregates. Lowest and median are not
// interchangeable and must not be mixed within one statistic.
type PriceField string

const (
	Lowest PriceField = "lowest"
	Median PriceField = "median"
)

// ParsePriceField parses a price field name. The empty string defaults to Lowest.
func ParsePriceField(s string) (PriceField, error) {
	switch s {
	case "", string(Lowest):
		return Lowest, nil
	case string(Median):
		return Median, nil
	}
	return "", fmt.Errorf("invalid price field %q: want %q or %q", s, Lowest, Median)
}
