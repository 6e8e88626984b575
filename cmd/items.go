package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/ptrs/skinvault"
	"github.com/ptrs/skinvault/steam"
)

type itemsCmd struct {
	stats bool
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the priced items of one inventory" }
func (*itemsCmd) Usage() string {
	return `skv items [-stats] <steam_id>

  Fetches one account's inventory from the Steam community endpoint and
  prices every marketable item. With -stats, also prints per-unit price
  statistics over the whole inventory.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.stats, "stats", false, "print per-unit price statistics")
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one steam id is required")
		return subcommands.ExitUsageError
	}
	accountID := f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	source := &steam.MarketSource{Client: newMarketClient(cfg), Field: cfg.Field}
	items, err := source.Items(accountID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error pricing inventory of %s: %v\n", accountID, err)
		return subcommands.ExitFailure
	}

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Qty\tLowest\tMedian\tItem\n")
	for _, name := range names {
		p := items[name]
		fmt.Printf("%d\t%s\t%s\t%s\n",
			p.Qty,
			skinvault.M(p.Quote.Lowest, cfg.Currency),
			skinvault.M(p.Quote.Median, cfg.Currency),
			name)
	}
	fmt.Printf("\nTotal (%s): %s\n", cfg.Field, skinvault.M(skinvault.Total(items, cfg.Field), cfg.Currency))

	if c.stats {
		d := skinvault.Distribute(items)
		fmt.Printf("Units: %d\n", d.Units())
		fmt.Printf("Mean unit price (lowest): %s\n", skinvault.M(d.Mean(skinvault.Lowest), cfg.Currency))
		fmt.Printf("Mean unit price (median): %s\n", skinvault.M(d.Mean(skinvault.Median), cfg.Currency))
	}

	return subcommands.ExitSuccess
}
