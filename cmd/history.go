package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ptrs/skinvault"
	"github.com/ptrs/skinvault/renderer"
)

type historyCmd struct {
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the recorded valuation history" }
func (*historyCmd) Usage() string {
	return `skv history [-a <steam_id>]

  Displays the recorded total value over time, or the history of a single
  account with -a.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "steam id of a single account to report on")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	rec := openRecorder(cfg)

	var report *skinvault.HistoryReport
	if c.account != "" {
		report, err = skinvault.NewAccountHistoryReport(rec, cfg.Currency, c.account)
	} else {
		report, err = skinvault.NewHistoryReport(rec, cfg.Currency)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(report.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "no recorded history yet, run 'skv record' first")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
