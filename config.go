package skinvault

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

// Config is the explicit run configuration, constructed once at startup and
// threaded through the pipeline. There is no ambient process-wide state.
type Config struct {
	// Accounts lists the account identifiers (64-bit steam ids as strings)
	// to value on each run.
	Accounts []string
	// Currency is the ISO 4217 code used for aggregate provider queries and
	// for the history column header.
	Currency string
	// RequestDelay is the mandatory pause between consecutive per-item price
	// requests, required to stay under the provider's undocumented rate limit.
	RequestDelay time.Duration
	// Field selects the per-item price convention used by the market fallback.
	Field PriceField
	// SteamAPIsKey enables the steamapis aggregate source when non-empty.
	SteamAPIsKey string
	// Debug enables per-item and per-source diagnostics on the standard logger.
	Debug bool
}

// jconfig is the on-disk JSON schema of the config file.
type jconfig struct {
	SteamIDs     []string `json:"steam_ids"`
	Currency     string   `json:"currency"`
	SleepMS      *int     `json:"sleep_between_price_requests_ms"`
	PriceField   string   `json:"price_field"`
	SteamAPIsKey string   `json:"steamapis_api_key"`
	Debug        bool     `json:"debug"`
}

// DefaultConfig returns a config with the default currency, price field and
// inter-request delay, and no accounts.
func DefaultConfig() Config {
	return Config{
		Currency:     "EUR",
		RequestDelay: time.Second,
		Field:        Lowest,
	}
}

// LoadConfig reads the JSON configuration file. Missing optional fields keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	var jc jconfig
	if err := json.Unmarshal(content, &jc); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	cfg.Accounts = jc.SteamIDs
	cfg.SteamAPIsKey = jc.SteamAPIsKey
	cfg.Debug = jc.Debug
	if jc.Currency != "" {
		cfg.Currency = jc.Currency
	}
	if jc.SleepMS != nil {
		if *jc.SleepMS < 0 {
			return Config{}, fmt.Errorf("invalid sleep_between_price_requests_ms %d: must be >= 0", *jc.SleepMS)
		}
		cfg.RequestDelay = time.Duration(*jc.SleepMS) * time.Millisecond
	}
	field, err := ParsePriceField(jc.PriceField)
	if err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}
	cfg.Field = field
	return cfg, nil
}

// Debugf logs a diagnostic message when debug logging is enabled.
func (c Config) Debugf(format string, args ...any) {
	if c.Debug {
		log.Printf(format, args...)
	}
}
