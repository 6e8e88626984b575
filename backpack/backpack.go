// Package backpack implements the CSGOBackpack aggregate valuation provider:
// one call estimates the total value of an account's inventory.
package backpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/ptrs/skinvault"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://csgobackpack.net/api/GetInventoryValue/"

// valuePath locates the nullable numeric value inside the provider response.
const valuePath = "$.value"

// Source queries CSGOBackpack for an account's total inventory value.
type Source struct {
	// Currency is the ISO 4217 code the value is requested in.
	Currency string
	// BaseURL overrides the endpoint, for tests.
	BaseURL string

	client *http.Client
}

// New creates the source for the given currency code.
func New(currency string) *Source {
	return &Source{
		Currency: currency,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements skinvault.Source.
func (s *Source) Name() string { return "csgobackpack" }

// AccountValue implements skinvault.Source. A transport error, a non-success
// response or a null value all read as "no value from this source"; the
// caller moves on to the next one.
func (s *Source) AccountValue(accountID string) (decimal.Decimal, error) {
	base := s.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	query := url.Values{}
	query.Set("id", accountID)
	query.Set("currency", s.Currency)
	addr := base + "?" + query.Encode()

	jobj, err := s.jwget(addr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving value for %q: %w", accountID, err)
	}

	jval, err := jsonpath.Get(valuePath, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading %q from csgobackpack response: %w", valuePath, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// the value sometimes comes back as a formatted string
		return skinvault.ParsePrice(v), nil
	case nil:
		return decimal.Zero, fmt.Errorf("csgobackpack returned a null value for %q", accountID)
	default:
		return decimal.Zero, fmt.Errorf("csgobackpack value for %q is neither a number nor a string: %v", accountID, jval)
	}
}

// jwget performs an HTTP GET request and unmarshals the JSON response.
func (s *Source) jwget(addr string) (any, error) {
	client := s.client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}
