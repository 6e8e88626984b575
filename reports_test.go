package skinvault

import (
	"testing"

	"github.com/ptrs/skinvault/date"
	"github.com/shopspring/decimal"
)

func TestNewHistoryReport(t *testing.T) {
	rec := NewRecorder(t.TempDir(), "EUR")
	accounts := []AccountValue{{AccountID: "a", Value: decimal.RequireFromString("1.00")}}
	if err := rec.Record(date.New(2026, 8, 22), accounts, decimal.RequireFromString("1.00")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := rec.Record(date.New(2026, 8, 23), accounts, decimal.RequireFromString("2.00")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	report, err := NewHistoryReport(rec, "EUR")
	if err != nil {
		t.Fatalf("NewHistoryReport() error = %v", err)
	}
	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}
	if got := report.Entries[1].Value.String(); got != "€2.00" {
		t.Errorf("Entries[1].Value = %q, want %q", got, "€2.00")
	}
}

func TestNewAccountHistoryReport(t *testing.T) {
	rec := NewRecorder(t.TempDir(), "EUR")
	accounts := []AccountValue{
		{AccountID: "a", Value: decimal.RequireFromString("1.00")},
		{AccountID: "b", Value: decimal.RequireFromString("2.00")},
	}
	if err := rec.Record(date.New(2026, 8, 23), accounts, decimal.RequireFromString("3.00")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	report, err := NewAccountHistoryReport(rec, "EUR", "b")
	if err != nil {
		t.Fatalf("NewAccountHistoryReport() error = %v", err)
	}
	if len(report.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(report.Entries))
	}
	if got := report.Entries[0].Value.String(); got != "€2.00" {
		t.Errorf("Entries[0].Value = %q, want %q", got, "€2.00")
	}

	// unknown account yields an empty report, not an error
	empty, err := NewAccountHistoryReport(rec, "EUR", "nobody")
	if err != nil {
		t.Fatalf("NewAccountHistoryReport(unknown) error = %v", err)
	}
	if len(empty.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(empty.Entries))
	}
}
