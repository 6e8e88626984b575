package skinvault

import "github.com/shopspring/decimal"

// Pricing pairs the resolved quote of a distinct item with the owned quantity.
type Pricing struct {
	Quote Quote
	Qty   int
}

// Total computes the inventory value: Σ price × quantity over all items,
// rounded half-up to 2 decimal places on the final sum. Rounding per item
// would compound the error, so it happens exactly once.
func Total(items map[string]Pricing, field PriceField) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Quote.Price(field).Mul(decimal.NewFromInt(int64(p.Qty))))
	}
	return total.Round(2)
}

// Distribution holds the full multiset of per-unit prices: one entry per
// owned unit, not per distinct item. Averaging over it gives a per-unit
// statistic, which is not the same thing as the per-item total and the two
// must not be conflated.
type Distribution struct {
	Lowest []decimal.Decimal
	Median []decimal.Decimal
}

// Distribute expands the priced items into per-unit lowest and median price
// streams.
func Distribute(items map[string]Pricing) Distribution {
	var d Distribution
	for _, p := range items {
		for i := 0; i < p.Qty; i++ {
			d.Lowest = append(d.Lowest, p.Quote.Lowest)
			d.Median = append(d.Median, p.Quote.Median)
		}
	}
	return d
}

// Mean returns the simple average of the per-unit prices for the given field,
// rounded half-up to 2 decimal places, or zero for an empty distribution.
func (d Distribution) Mean(field PriceField) decimal.Decimal {
	prices := d.Lowest
	if field == Median {
		prices = d.Median
	}
	if len(prices) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p)
	}
	return sum.Div(decimal.NewFromInt(int64(len(prices)))).Round(2)
}

// Units returns the number of owned units in the distribution.
func (d Distribution) Units() int { return len(d.Lowest) }
