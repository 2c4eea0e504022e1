package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"stockpile"

	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	what       string
	stockType  string
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export stock data as CSV or a JSON backup" }
func (*exportCmd) Usage() string {
	return `stk export -what <items|history|backup> [-t <type>] [-o <file>]

  Exports stock data. 'items' writes one partition as CSV, 'history'
  writes the issuance history as CSV, and 'backup' writes both
  partitions and the history as a single JSON document.

Usage Examples:
# Export the internal stock to a CSV file.
$ stk export -what items -t internal -o internal.csv

# Write a full backup to stdout.
$ stk export -what backup

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "backup", "What to export (items, history, backup).")
	f.StringVar(&c.stockType, "t", "internal", "Stock type, for -what items.")
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var out io.Writer = os.Stdout
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	ledger := OpenLedger()
	switch c.what {
	case "items":
		t, err := stockpile.ParseStockType(c.stockType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing stock type: %v\n", err)
			return subcommands.ExitUsageError
		}
		items, err := ledger.Items(t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading items: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := stockpile.ExportItemsCSV(out, t, items); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
	case "history":
		records, err := ledger.IssueHistory(stockpile.HistoryFilter{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := stockpile.ExportHistoryCSV(out, records); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
	case "backup":
		internal, external, err := ledger.AllItems()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading stock: %v\n", err)
			return subcommands.ExitFailure
		}
		history, err := ledger.IssueHistory(stockpile.HistoryFilter{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
			return subcommands.ExitFailure
		}
		b := stockpile.Backup{InternalStock: internal, ExternalStock: external, IssueHistory: history}
		if err := stockpile.ExportBackup(out, b); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export %q (want items, history or backup)\n", c.what)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
