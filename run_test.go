package skinvault

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// accountSource values specific accounts and fails for the others.
type accountSource struct {
	values map[string]string
}

func (s *accountSource) Name() string { return "stub" }
func (s *accountSource) AccountValue(id string) (decimal.Decimal, error) {
	v, ok := s.values[id]
	if !ok {
		return decimal.Zero, errors.New("unknown account")
	}
	return decimal.RequireFromString(v), nil
}

func TestRunRecordsOneGlobalRowAndOneRowPerAccount(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Accounts = []string{"acc1", "acc2"}

	chain := NewChain(false, &accountSource{values: map[string]string{
		"acc1": "10.00",
		"acc2": "2.51",
	}})
	rec := NewRecorder(dir, cfg.Currency)

	report, err := Run(cfg, chain, rec)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := decimal.RequireFromString("12.51"); !report.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", report.Total, want)
	}

	values, err := os.ReadFile(rec.valuesPath())
	if err != nil {
		t.Fatalf("reading values file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(values)), "\n")
	if len(lines) != 2 {
		t.Fatalf("values.csv has %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "date,value_eur" {
		t.Errorf("values.csv header = %q, want %q", lines[0], "date,value_eur")
	}
	if !strings.HasSuffix(lines[1], ",12.51") {
		t.Errorf("values.csv row = %q, want total 12.51", lines[1])
	}

	accounts, err := os.ReadFile(rec.accountsPath())
	if err != nil {
		t.Fatalf("reading accounts file: %v", err)
	}
	accLines := strings.Split(strings.TrimSpace(string(accounts)), "\n")
	if len(accLines) != 3 {
		t.Fatalf("accounts.csv has %d lines, want header + 2 rows", len(accLines))
	}
	if !strings.Contains(accLines[1], "acc1,10.00") || !strings.Contains(accLines[2], "acc2,2.51") {
		t.Errorf("accounts.csv rows = %q, want acc1 then acc2", accLines[1:])
	}
}

// A failing account records zero instead of aborting the run.
func TestRunRecordsZeroForFailedAccount(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Accounts = []string{"good", "broken"}

	chain := NewChain(false, &accountSource{values: map[string]string{"good": "5.00"}})
	rec := NewRecorder(dir, cfg.Currency)

	report, err := Run(cfg, chain, rec)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := decimal.RequireFromString("5.00"); !report.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", report.Total, want)
	}
	if len(report.Accounts) != 2 {
		t.Fatalf("len(Accounts) = %d, want 2", len(report.Accounts))
	}
	if !report.Accounts[1].Value.IsZero() {
		t.Errorf("broken account value = %v, want 0", report.Accounts[1].Value)
	}
}

// Two runs on the same day append duplicate rows; they are not merged.
func TestRunAppendsDuplicateRowsOnSameDay(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Accounts = []string{"acc1"}
	chain := NewChain(false, &accountSource{values: map[string]string{"acc1": "1.00"}})
	rec := NewRecorder(dir, cfg.Currency)

	for i := 0; i < 2; i++ {
		if _, err := Run(cfg, chain, rec); err != nil {
			t.Fatalf("Run() #%d error = %v", i+1, err)
		}
	}

	values, err := os.ReadFile(rec.valuesPath())
	if err != nil {
		t.Fatalf("reading values file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(values)), "\n")
	if len(lines) != 3 {
		t.Errorf("values.csv has %d lines, want header + 2 rows", len(lines))
	}
}
