package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stockpile"
	"stockpile/date"
	"stockpile/renderer"

	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display an overall stock summary" }
func (*summaryCmd) Usage() string {
	return `stk summary [-d <date>]

  Displays a summary of both stock partitions: item counts, total
  valuation, low and critical stock counts, and recent movement.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the summary (YYYY-MM-DD).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
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

	s := stockpile.NewSummary(internal, external, history, on, ledger.Currency())
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
