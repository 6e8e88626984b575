package steam

import (
	"fmt"

	"github.com/ptrs/skinvault"
	"github.com/shopspring/decimal"
)

// MarketSource values an account by pricing every distinct inventory item on
// the market endpoint and summing price × quantity. It is the best-effort
// fallback behind the aggregate valuation providers: slower, rate limited,
// but independent of third parties.
type MarketSource struct {
	Client *Client
	// Field selects the price convention used for the per-item sum.
	Field skinvault.PriceField
}

// Name implements skinvault.Source.
func (s *MarketSource) Name() string { return "steam-market" }

// AccountValue implements skinvault.Source.
func (s *MarketSource) AccountValue(accountID string) (decimal.Decimal, error) {
	items, err := s.Items(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return skinvault.Total(items, s.Field), nil
}

// Items resolves the account inventory and prices every distinct item. Items
// whose price cannot be resolved stay in the result with a zero quote: zero
// means "unresolved", and only the debug log tells it apart from a worthless
// item. The client paces the lookups that actually reach the endpoint.
func (s *MarketSource) Items(accountID string) (map[string]skinvault.Pricing, error) {
	inv, err := s.Client.Inventory(accountID)
	if err != nil {
		return nil, fmt.Errorf("market fallback for %s: %w", accountID, err)
	}
	counts := inv.ItemCounts()

	items := make(map[string]skinvault.Pricing, len(counts))
	i := 0
	for name, qty := range counts {
		i++
		q, err := s.Client.PriceOverview(name)
		if err != nil || q.IsZero() {
			s.Client.debugf("[%d/%d] %q x%d: no price (%v)", i, len(counts), name, qty, err)
		} else {
			s.Client.debugf("[%d/%d] %q x%d: %s each", i, len(counts), name, qty, q.Price(s.Field))
		}
		items[name] = skinvault.Pricing{Quote: q, Qty: qty}
	}
	return items, nil
}
