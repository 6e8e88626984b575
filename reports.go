package skinvault

import (
	"github.com/ptrs/skinvault/date"
	"github.com/shopspring/decimal"
)

// HistoryReport is the recorded valuation history prepared for rendering.
type HistoryReport struct {
	// Currency of the recorded values.
	Currency string
	// AccountID is set when the report covers a single account instead of
	// the global total.
	AccountID string
	Entries   []HistoryEntry
}

// HistoryEntry is one recorded day.
type HistoryEntry struct {
	Date  date.Date
	Value Money
}

// NewHistoryReport loads the global valuation history from the recorder.
func NewHistoryReport(rec *Recorder, currency string) (*HistoryReport, error) {
	h, err := rec.LoadValues()
	if err != nil {
		return nil, err
	}
	report := &HistoryReport{Currency: currency}
	for on, v := range h.Values() {
		report.Entries = append(report.Entries, HistoryEntry{
			Date:  on,
			Value: M(decimal.NewFromFloat(v), currency),
		})
	}
	return report, nil
}

// NewAccountHistoryReport loads the recorded history of a single account.
func NewAccountHistoryReport(rec *Recorder, currency, accountID string) (*HistoryReport, error) {
	series, err := rec.LoadAccounts()
	if err != nil {
		return nil, err
	}
	report := &HistoryReport{Currency: currency, AccountID: accountID}
	h, ok := series[accountID]
	if !ok {
		return report, nil
	}
	for on, v := range h.Values() {
		report.Entries = append(report.Entries, HistoryEntry{
			Date:  on,
			Value: M(decimal.NewFromFloat(v), currency),
		})
	}
	return report, nil
}
