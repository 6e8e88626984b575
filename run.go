package skinvault

import (
	"github.com/ptrs/skinvault/date"
	"github.com/shopspring/decimal"
)

// Report holds the figures produced by one valuation run.
type Report struct {
	Date     date.Date
	Currency string
	Accounts []AccountValue
	Total    decimal.Decimal
}

// TotalMoney returns the run total as a displayable Money.
func (r *Report) TotalMoney() Money { return M(r.Total, r.Currency) }

// Run values every configured account through the source chain, records the
// day's rows and returns the report.
//
// Accounts are resolved strictly one after the other. A whole-account failure
// is recovered by recording a zero value for that account so the remaining
// accounts are unaffected; the worst case is an all-zero row, which is not
// distinguishable from a genuinely empty inventory outside of debug logs.
func Run(cfg Config, chain Chain, rec *Recorder) (*Report, error) {
	on := date.Today()
	report := &Report{Date: on, Currency: cfg.Currency}

	total := decimal.Zero
	for _, id := range cfg.Accounts {
		v, err := chain.AccountValue(id)
		if err != nil {
			cfg.Debugf("account %s: %v: recording 0", id, err)
			v = decimal.Zero
		}
		report.Accounts = append(report.Accounts, AccountValue{AccountID: id, Value: v})
		total = total.Add(v)
	}
	report.Total = total.Round(2)

	if err := rec.Record(on, report.Accounts, report.Total); err != nil {
		return report, err
	}
	return report, nil
}
