package skinvault

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// priceRe matches the first numeric token of a price string: digits, an
// optional separator, and an optional 2-digit fractional group.
var priceRe = regexp.MustCompile(`\d+[.,]?\d*(?:[.,]\d{2})?`)

// spaceStripper removes whitespace-like thousands separators before matching.
var spaceStripper = strings.NewReplacer(" ", "", "\u202f", "", "\u00a0", "")

// ParsePrice extracts a number from marketplace price strings across locales:
// "$1.23", "1,23€", "R$ 1,23", "1.234,56 ₽". It picks the first numeric group
// and normalizes the comma/period convention. It returns zero on empty input
// or when no numeric token can be found.
//
// When both '.' and ',' appear, '.' is assumed to be a thousands separator
// and ',' the decimal one (European convention). This heuristic misreads
// US-formatted strings like "1,234.56"; that is a known limitation of the
// upstream price strings, not silently special-cased here.
func ParsePrice(text string) decimal.Decimal {
	if text == "" {
		return decimal.Zero
	}
	raw := priceRe.FindString(spaceStripper.Replace(text))
	if raw == "" {
		return decimal.Zero
	}
	switch {
	case strings.Contains(raw, ".") && strings.Contains(raw, ","):
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	case strings.Contains(raw, ","):
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
