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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	start     string
	end       string
	stockType string
	search    string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the issuance history" }
func (*historyCmd) Usage() string {
	return `stk history [-s <start_date>] [-e <end_date>] [-t <type>] [-search <term>]

  Displays past issuances, newest first. All given filters must match.
  The search term matches item name, recipient and notes; terms shorter
  than two characters are ignored.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Inclusive start date (YYYY-MM-DD).")
	f.StringVar(&c.end, "e", "", "Inclusive end date (YYYY-MM-DD).")
	f.StringVar(&c.stockType, "t", "", "Stock type to restrict to (internal, external).")
	f.StringVar(&c.search, "search", "", "Search term over item name, recipient and notes.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := stockpile.HistoryFilter{SearchTerm: c.search}
	if c.start != "" {
		d, err := date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.StartDate = d
	}
	if c.end != "" {
		d, err := date.Parse(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.EndDate = d
	}
	if c.stockType != "" {
		t, err := stockpile.ParseStockType(c.stockType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing stock type: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.StockType = &t
	}

	records, err := OpenLedger().IssueHistory(filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(records))
	return subcommands.ExitSuccess
}
