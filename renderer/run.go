package renderer

import "github.com/ptrs/skinvault"

// runView is the template-facing shape of a run report.
type runView struct {
	Date     string
	Currency string
	Accounts []runAccount
	Total    string
}

type runAccount struct {
	AccountID string
	Value     string
}

// RunMarkdown renders the summary of one valuation run to markdown.
func RunMarkdown(r *skinvault.Report) string {
	view := runView{
		Date:     r.Date.String(),
		Currency: r.Currency,
		Total:    r.TotalMoney().String(),
	}
	for _, a := range r.Accounts {
		view.Accounts = append(view.Accounts, runAccount{
			AccountID: a.AccountID,
			Value:     skinvault.M(a.Value, r.Currency).String(),
		})
	}
	return renderTemplate("run", "run.md", nil, view)
}
