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

type recordCmd struct{}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "value all configured inventories and append to history" }
func (*recordCmd) Usage() string {
	return `skv record

  Fetches the inventories of all configured accounts, resolves their value
  through the provider chain, and appends today's figures to the history
  files.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(cfg.Accounts) == 0 {
		fmt.Fprintln(os.Stderr, "no accounts configured, nothing to record")
		return subcommands.ExitUsageError
	}

	report, err := skinvault.Run(cfg, newChain(cfg), openRecorder(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording valuation: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RunMarkdown(report))
	return subcommands.ExitSuccess
}
