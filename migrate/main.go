package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/ptrs/skinvault/date"
	"github.com/shopspring/decimal"
)

// The migrate tool converts history files recorded by older script
// variants into the canonical schema read by skv.

func main() {
	// The migrate tool needs its own set of flags, independent of the main skv tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(&valuesCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// --- valuesCmd ---

type valuesCmd struct {
	in       string
	out      string
	currency string
	field    string
}

func (*valuesCmd) Name() string { return "values" }
func (*valuesCmd) Synopsis() string {
	return "converts a legacy distribution-mode values file to the canonical schema"
}
func (*valuesCmd) Usage() string {
	return `migrate values -in <legacy_values_file> -out <destination_values_file> [-currency <cur>] [-field <lowest|median>]

Converts a legacy three-column values file (date,lowest_avg,median_avg) into
the canonical two-column schema (date,value_<cur>). The input and output files
must be in different directories to prevent accidental data loss.
`
}
func (c *valuesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the legacy values.csv file.")
	f.StringVar(&c.out, "out", "", "The path where the canonical values.csv will be written.")
	f.StringVar(&c.currency, "currency", "EUR", "The currency code used in the canonical header.")
	f.StringVar(&c.field, "field", "lowest", "The legacy column to keep (lowest or median).")
}

func (c *valuesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}
	if filepath.Dir(c.in) == filepath.Dir(c.out) {
		fmt.Fprintln(os.Stderr, "Error: -in and -out files must not be in the same directory.")
		return subcommands.ExitUsageError
	}

	var column int
	switch c.field {
	case "lowest":
		column = 1
	case "median":
		column = 2
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -field %q, want lowest or median.\n", c.field)
		return subcommands.ExitUsageError
	}

	rows, err := readRows(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading legacy file: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "Error: legacy file is empty.")
		return subcommands.ExitFailure
	}
	if !isLegacyHeader(rows[0]) {
		fmt.Fprintf(os.Stderr, "Error: %q does not have the legacy date,lowest_avg,median_avg layout.\n", c.in)
		return subcommands.ExitFailure
	}

	out := [][]string{{"date", "value_" + strings.ToLower(c.currency)}}
	for i, row := range rows[1:] {
		if len(row) != 3 {
			fmt.Fprintf(os.Stderr, "Error: row %d has %d columns, want 3.\n", i+2, len(row))
			return subcommands.ExitFailure
		}
		if _, err := date.Parse(row[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: row %d has an invalid date %q: %v\n", i+2, row[0], err)
			return subcommands.ExitFailure
		}
		v, err := decimal.NewFromString(row[column])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: row %d has an invalid value %q: %v\n", i+2, row[column], err)
			return subcommands.ExitFailure
		}
		out = append(out, []string{row[0], v.StringFixed(2)})
	}

	if err := writeRows(c.out, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing canonical file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully converted %d rows to %s\n", len(out)-1, c.out)
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	file string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "reports which schema a values file uses" }
func (*checkCmd) Usage() string {
	return `migrate check -file <values_file>

Reports whether a values file uses the canonical or the legacy schema.
`
}
func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "values.csv", "The values file to inspect.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rows, err := readRows(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(rows) == 0 {
		fmt.Printf("%s: empty file\n", c.file)
		return subcommands.ExitSuccess
	}

	header := rows[0]
	switch {
	case len(header) == 2 && header[0] == "date" && strings.HasPrefix(header[1], "value_"):
		fmt.Printf("%s: canonical schema (%s), %d rows\n", c.file, strings.Join(header, ","), len(rows)-1)
	case isLegacyHeader(header):
		fmt.Printf("%s: legacy schema, %d rows, run 'migrate values' to convert\n", c.file, len(rows)-1)
	default:
		fmt.Printf("%s: unknown schema %q\n", c.file, strings.Join(header, ","))
	}
	return subcommands.ExitSuccess
}

// --- helpers ---

func isLegacyHeader(header []string) bool {
	return len(header) == 3 && header[0] == "date" && header[1] == "lowest_avg" && header[2] == "median_avg"
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func writeRows(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
