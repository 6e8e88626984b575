package renderer

import "github.com/ptrs/skinvault"

// historyView is the template-facing shape of a history report, with all
// values preformatted.
type historyView struct {
	Currency string
	Entries  []historyEntry
}

type historyEntry struct {
	Date  string
	Value string
}

// HistoryMarkdown renders the recorded global valuation history to markdown.
func HistoryMarkdown(r *skinvault.HistoryReport) string {
	view := historyView{Currency: r.Currency}
	for _, e := range r.Entries {
		view.Entries = append(view.Entries, historyEntry{
			Date:  e.Date.String(),
			Value: e.Value.String(),
		})
	}
	return renderTemplate("history", "history.md", nil, view)
}
