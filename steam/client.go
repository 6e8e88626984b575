// Package steam accesses the public marketplace endpoints: account
// inventories and the rate-limited per-item price overview.
package steam

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ptrs/skinvault"
)

const (
	defaultInventoryURL = "https://steamcommunity.com/inventory"
	defaultMarketURL    = "https://steamcommunity.com/market/priceoverview/"

	appID     = "730"
	contextID = "2"

	// inventoryPageSize is the maximum asset count requested per inventory call.
	inventoryPageSize = 2000

	// defaultBackoff is how long to wait after a rate-limit response before
	// retrying the same item.
	defaultBackoff = 5 * time.Second
)

// Client queries the public marketplace endpoints. It carries the per-run
// price cache, so one client must not be reused across runs.
type Client struct {
	// InventoryURL and MarketURL override the endpoints, for tests.
	InventoryURL string
	MarketURL    string

	// Currency is the ISO 4217 code items are priced in. An unknown code
	// lets the provider choose, and the locale-tolerant parser deals with
	// whatever price strings come back.
	Currency string

	// Delay is the mandatory pause between consecutive per-item price
	// requests. Removing it causes observable rate-limit responses.
	Delay time.Duration

	// Backoff is the fixed pause after a rate-limit response before the
	// request is retried. Zero means the 5s default.
	Backoff time.Duration

	// Debug enables per-request diagnostics on the standard logger.
	Debug bool

	httpClient *http.Client
	cache      priceCache
}

// NewClient creates a client for the given pricing currency and inter-request
// delay.
func NewClient(currency string, delay time.Duration) *Client {
	return &Client{
		Currency:   currency,
		Delay:      delay,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) client() *http.Client {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return c.httpClient
}

func (c *Client) backoff() time.Duration {
	if c.Backoff <= 0 {
		return defaultBackoff
	}
	return c.Backoff
}

func (c *Client) debugf(format string, args ...any) {
	if c.Debug {
		log.Printf(format, args...)
	}
}

// Inventory fetches the public inventory of an account. The payload is
// untrusted: missing fields and partial data are normal.
func (c *Client) Inventory(accountID string) (*skinvault.Inventory, error) {
	base := c.InventoryURL
	if base == "" {
		base = defaultInventoryURL
	}
	addr := fmt.Sprintf("%s/%s/%s/%s?l=english&count=%d", base, url.PathEscape(accountID), appID, contextID, inventoryPageSize)

	resp, err := c.client().Get(addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch inventory for %s: %w", accountID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot fetch inventory for %s: %s", accountID, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read inventory for %s: %w", accountID, err)
	}
	inv := new(skinvault.Inventory)
	if err := json.Unmarshal(buf.Bytes(), inv); err != nil {
		return nil, fmt.Errorf("cannot parse inventory for %s: %w", accountID, err)
	}
	return inv, nil
}

// priceOverviewResponse is the per-item market endpoint payload. Prices are
// locale-formatted strings.
type priceOverviewResponse struct {
	Success     bool   `json:"success"`
	LowestPrice string `json:"lowest_price"`
	MedianPrice string `json:"median_price"`
}

// PriceOverview resolves the current market quote for one item kind, keyed by
// its market hash name.
//
// Quotes are memoized for the lifetime of the client: the first resolved
// value wins and a failed lookup caches a zero quote rather than retrying
// within the same run. The one exception is a rate-limit response, which is
// retried after a fixed backoff, indefinitely, without consuming a cache
// slot: throttling says nothing about the item itself.
//
// Lookups that reach the endpoint are followed by the client delay to respect
// its rate limit; cache hits return immediately.
func (c *Client) PriceOverview(name string) (skinvault.Quote, error) {
	if q, ok := c.cache.get(name); ok {
		c.debugf("price cache hit for %q", name)
		return q, nil
	}
	defer time.Sleep(c.Delay)

	base := c.MarketURL
	if base == "" {
		base = defaultMarketURL
	}
	query := url.Values{}
	query.Set("appid", appID)
	query.Set("market_hash_name", name)
	if code := currencyCode(c.Currency); code != 0 {
		query.Set("currency", fmt.Sprint(code))
	}
	addr := base + "?" + query.Encode()

	for {
		resp, err := c.client().Get(addr)
		if err != nil {
			c.cache.put(name, skinvault.Quote{})
			return skinvault.Quote{}, fmt.Errorf("cannot fetch price for %q: %w", name, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			c.debugf("rate limited on %q, retrying in %v", name, c.backoff())
			time.Sleep(c.backoff())
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.cache.put(name, skinvault.Quote{})
			return skinvault.Quote{}, fmt.Errorf("cannot fetch price for %q: %s", name, resp.Status)
		}

		var payload priceOverviewResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil || !payload.Success {
			c.cache.put(name, skinvault.Quote{})
			return skinvault.Quote{}, fmt.Errorf("no price for %q (success=%v, err=%v)", name, payload.Success, err)
		}

		q := skinvault.Quote{
			Lowest: skinvault.ParsePrice(payload.LowestPrice),
			Median: skinvault.ParsePrice(payload.MedianPrice),
		}
		c.cache.put(name, q)
		return q, nil
	}
}
