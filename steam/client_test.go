package steam

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// newTestClient returns a client pointing at the given servers with
// test-friendly timings.
func newTestClient(inventoryURL, marketURL string) *Client {
	c := NewClient("EUR", time.Millisecond)
	c.InventoryURL = inventoryURL
	c.MarketURL = marketURL
	c.Backoff = time.Millisecond
	return c
}

func TestInventory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"assets": [
				{"classid": "10", "instanceid": "0", "assetid": "a1"},
				{"classid": "10", "instanceid": "0", "assetid": "a2"}
			],
			"descriptions": [
				{"classid": "10", "instanceid": "0", "market_hash_name": "AK-47 | Redline", "marketable": 1}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	inv, err := c.Inventory("76561198000000001")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	counts := inv.ItemCounts()
	if got := counts["AK-47 | Redline"]; got != 2 {
		t.Errorf(`counts["AK-47 | Redline"] = %d, want 2`, got)
	}
}

func TestInventoryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	if _, err := c.Inventory("76561198000000001"); err == nil {
		t.Errorf("Inventory() error = nil, want error for HTTP 403")
	}
}

func TestPriceOverviewParsesAndCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if got := r.URL.Query().Get("market_hash_name"); got != "AK-47 | Redline" {
			t.Errorf("market_hash_name = %q, want %q", got, "AK-47 | Redline")
		}
		w.Write([]byte(`{"success": true, "lowest_price": "1,23€", "median_price": "1,50€"}`))
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL)

	q, err := c.PriceOverview("AK-47 | Redline")
	if err != nil {
		t.Fatalf("PriceOverview() error = %v", err)
	}
	if want := decimal.RequireFromString("1.23"); !q.Lowest.Equal(want) {
		t.Errorf("Lowest = %v, want %v", q.Lowest, want)
	}
	if want := decimal.RequireFromString("1.50"); !q.Median.Equal(want) {
		t.Errorf("Median = %v, want %v", q.Median, want)
	}

	// second lookup for the same name is a cache hit
	if _, err := c.PriceOverview("AK-47 | Redline"); err != nil {
		t.Fatalf("PriceOverview() second call error = %v", err)
	}
	if hits != 1 {
		t.Errorf("endpoint hit %d times, want 1", hits)
	}
}

func TestPriceOverviewFailureCachedOnce(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "not found", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL)

	if _, err := c.PriceOverview("Broken Item"); err == nil {
		t.Fatalf("PriceOverview() error = nil, want error")
	}
	// the failure is a terminal answer: cached, not retried within the run
	q, err := c.PriceOverview("Broken Item")
	if err != nil {
		t.Fatalf("PriceOverview() second call error = %v, want cached zero quote", err)
	}
	if !q.IsZero() {
		t.Errorf("cached quote = %v, want zero", q)
	}
	if hits != 1 {
		t.Errorf("endpoint hit %d times, want 1", hits)
	}
}

func TestPriceOverviewRetriesOnRateLimit(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"success": true, "lowest_price": "$2.00"}`))
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL)

	q, err := c.PriceOverview("Hot Item")
	if err != nil {
		t.Fatalf("PriceOverview() error = %v", err)
	}
	if want := decimal.RequireFromString("2.00"); !q.Lowest.Equal(want) {
		t.Errorf("Lowest = %v, want %v", q.Lowest, want)
	}
	if hits != 3 {
		t.Errorf("endpoint hit %d times, want 3 (two rate limits, one success)", hits)
	}
	// the rate-limited attempts did not consume the cache slot
	if _, err := c.PriceOverview("Hot Item"); err != nil {
		t.Fatalf("PriceOverview() second call error = %v", err)
	}
	if hits != 3 {
		t.Errorf("endpoint hit %d times after cache hit, want 3", hits)
	}
}

func TestPriceOverviewUnsuccessfulPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL)
	if _, err := c.PriceOverview("Unknown Item"); err == nil {
		t.Errorf("PriceOverview() error = nil, want error for success=false")
	}
}

func TestPriceOverviewCacheHitDoesNotPause(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "lowest_price": "1,00€", "median_price": "1,10€"}`))
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL)
	c.Delay = 250 * time.Millisecond

	if _, err := c.PriceOverview("AK-47 | Redline"); err != nil {
		t.Fatalf("PriceOverview() error = %v", err)
	}

	start := time.Now()
	if _, err := c.PriceOverview("AK-47 | Redline"); err != nil {
		t.Fatalf("PriceOverview() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed >= c.Delay {
		t.Errorf("cache hit took %v, want no inter-request pause", elapsed)
	}
}
