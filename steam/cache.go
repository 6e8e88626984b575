package steam

import "github.com/ptrs/skinvault"

// priceCache memoizes per-item quotes within a single run so duplicate item
// names hit the market endpoint at most once. It is write-once per name: the
// first terminal answer wins, including the "no price" zero quote. Execution
// is single-threaded, so no locking is needed.
type priceCache struct {
	quotes map[string]skinvault.Quote
}

func (c *priceCache) get(name string) (skinvault.Quote, bool) {
	q, ok := c.quotes[name]
	return q, ok
}

func (c *priceCache) put(name string, q skinvault.Quote) {
	if c.quotes == nil {
		c.quotes = make(map[string]skinvault.Quote)
	}
	if _, ok := c.quotes[name]; ok {
		return
	}
	c.quotes[name] = q
}
