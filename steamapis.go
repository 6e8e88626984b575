package skinvault

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// appID and contextID identify the CS game inventory on the marketplace.
const (
	appID     = "730"
	contextID = "2"
)

// steamAPIsBaseURL is the aggregate valuation endpoint of steamapis.com.
const steamAPIsBaseURL = "https://api.steamapis.com/steam/inventory"

// steamAPIsValuePath locates the nullable numeric total inside the response.
const steamAPIsValuePath = "$.totals.value"

// SteamAPIs is an aggregate valuation source backed by steamapis.com. It
// estimates an entire account's inventory value in one call.
type SteamAPIs struct {
	// APIKey authenticates the request. Required.
	APIKey string
	// BaseURL overrides the endpoint, for tests.
	BaseURL string

	client *http.Client
}

// NewSteamAPIs creates the source with a sensible request timeout.
func NewSteamAPIs(apiKey string) *SteamAPIs {
	return &SteamAPIs{
		APIKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements Source.
func (s *SteamAPIs) Name() string { return "steamapis" }

// AccountValue implements Source. Any transport error, non-success response
// or missing value reads as "no value from this source".
func (s *SteamAPIs) AccountValue(accountID string) (decimal.Decimal, error) {
	base := s.BaseURL
	if base == "" {
		base = steamAPIsBaseURL
	}
	addr := fmt.Sprintf("%s/%s/%s/%s?api_key=%s", base, url.PathEscape(accountID), appID, contextID, url.QueryEscape(s.APIKey))

	client := s.client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving value for %q: %w", accountID, err)
	}

	jval, err := jsonpath.Get(steamAPIsValuePath, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading %q from steamapis response: %w", steamAPIsValuePath, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// sometimes this kind of API returns the value as a string
		return ParsePrice(v), nil
	case nil:
		return decimal.Zero, fmt.Errorf("steamapis returned a null value for %q", accountID)
	default:
		return decimal.Zero, fmt.Errorf("steamapis value for %q is neither a number nor a string: %v", accountID, jval)
	}
}
