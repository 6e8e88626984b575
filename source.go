package skinvault

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// Source is a named account valuation strategy. Implementations report a
// positive account value or an error; a zero value means the source could not
// resolve one.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// AccountValue returns the estimated total value of an account's inventory.
	AccountValue(accountID string) (decimal.Decimal, error)
}

// Chain tries sources in priority order and accepts the first strictly
// positive value. A failing or empty source is never fatal: the chain simply
// proceeds to the next one. Adding, removing or reordering sources is a data
// change, not a control-flow change.
type Chain struct {
	sources []Source
	debug   bool
}

// NewChain creates a chain over the given sources, in priority order.
func NewChain(debug bool, sources ...Source) Chain {
	return Chain{sources: sources, debug: debug}
}

// AccountValue walks the chain for one account. When every source fails it
// returns zero and an error describing the exhausted chain; the caller decides
// whether that is fatal (a daily run records a zero row instead of aborting).
func (c Chain) AccountValue(accountID string) (decimal.Decimal, error) {
	for _, s := range c.sources {
		v, err := s.AccountValue(accountID)
		if err != nil {
			c.debugf("source %s failed for %s: %v", s.Name(), accountID, err)
			continue
		}
		if !v.IsPositive() {
			c.debugf("source %s returned no value for %s", s.Name(), accountID)
			continue
		}
		c.debugf("source %s valued %s at %s", s.Name(), accountID, v)
		return v.Round(2), nil
	}
	return decimal.Zero, fmt.Errorf("no source could value account %s", accountID)
}

func (c Chain) debugf(format string, args ...any) {
	if c.debug {
		log.Printf(format, args...)
	}
}
