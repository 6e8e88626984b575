package renderer

import (
	"strings"
	"testing"

	"github.com/ptrs/skinvault"
	"github.com/ptrs/skinvault/date"
	"github.com/shopspring/decimal"
)

func TestHistoryMarkdown(t *testing.T) {
	r := &skinvault.HistoryReport{
		Currency: "EUR",
		Entries: []skinvault.HistoryEntry{
			{Date: date.New(2026, 8, 22), Value: skinvault.M(decimal.RequireFromString("12.50"), "EUR")},
			{Date: date.New(2026, 8, 23), Value: skinvault.M(decimal.RequireFromString("13.00"), "EUR")},
		},
	}
	md := HistoryMarkdown(r)
	for _, want := range []string{"2026-08-22", "2026-08-23", "€12.50", "€13.00", "EUR"} {
		if !strings.Contains(md, want) {
			t.Errorf("HistoryMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestRunMarkdown(t *testing.T) {
	r := &skinvault.Report{
		Date:     date.New(2026, 8, 23),
		Currency: "USD",
		Accounts: []skinvault.AccountValue{
			{AccountID: "76561198000000001", Value: decimal.RequireFromString("10.00")},
		},
		Total: decimal.RequireFromString("10.00"),
	}
	md := RunMarkdown(r)
	for _, want := range []string{"2026-08-23", "76561198000000001", "$10.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("RunMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
