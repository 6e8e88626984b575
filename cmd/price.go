package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ptrs/skinvault"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "look up the market price of a single item" }
func (*priceCmd) Usage() string {
	return `skv price <market_hash_name>

  Queries the Steam market for one item and prints its lowest and median
  price. The name may be given unquoted, remaining arguments are joined
  with spaces.

Usage Examples:
$ skv price "AK-47 | Redline (Field-Tested)"
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "a market hash name is required")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	quote, err := newMarketClient(cfg).PriceOverview(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching price for %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s\n", name)
	fmt.Printf("  lowest: %s\n", skinvault.M(quote.Lowest, cfg.Currency))
	fmt.Printf("  median: %s\n", skinvault.M(quote.Median, cfg.Currency))
	return subcommands.ExitSuccess
}
