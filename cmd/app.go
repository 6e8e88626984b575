// Package cmd implements the CLI application to record and inspect
// inventory valuations.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ptrs/skinvault"
	"github.com/ptrs/skinvault/backpack"
	"github.com/ptrs/skinvault/steam"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&recordCmd{},
	&historyCmd{},
	&itemsCmd{},
	&priceCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "config.json", "Path to the configuration file (JSON format)")
var historyDir = flag.String("history-dir", ".", "Directory holding the values.csv and accounts.csv history files")

// loadConfig is the central function to load the app configuration.
func loadConfig() (cfg skinvault.Config, err error) {
	cfg, err = skinvault.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, config file does not exist, using defaults instead")
		cfg, err = skinvault.DefaultConfig(), nil
	}
	return
}

// openRecorder opens the CSV history recorder in the app history directory.
func openRecorder(cfg skinvault.Config) *skinvault.Recorder {
	return skinvault.NewRecorder(*historyDir, cfg.Currency)
}

// newMarketClient builds the Steam community client from the configuration.
func newMarketClient(cfg skinvault.Config) *steam.Client {
	c := steam.NewClient(cfg.Currency, cfg.RequestDelay)
	c.Debug = cfg.Debug
	return c
}

// newChain assembles the provider chain in resolution order: the cheap
// aggregate providers first, the per-item market fallback last.
func newChain(cfg skinvault.Config) skinvault.Chain {
	sources := []skinvault.Source{backpack.New(cfg.Currency)}
	if cfg.SteamAPIsKey != "" {
		sources = append(sources, skinvault.NewSteamAPIs(cfg.SteamAPIsKey))
	}
	sources = append(sources, &steam.MarketSource{
		Client: newMarketClient(cfg),
		Field:  cfg.Field,
	})
	return skinvault.NewChain(cfg.Debug, sources...)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
