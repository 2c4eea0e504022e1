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

type recommendCmd struct {
	date string
}

func (*recommendCmd) Name() string     { return "recommend" }
func (*recommendCmd) Synopsis() string { return "display restocking recommendations" }
func (*recommendCmd) Usage() string {
	return `stk recommend [-d <date>]

  Analyses both stock partitions and the recent issuance history, and
  displays a priority level, urgent alerts and restocking suggestions.
`
}

func (c *recommendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the analysis (YYYY-MM-DD).")
}

func (c *recommendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r := stockpile.Recommendations(internal, external, history, on)
	printMarkdown(renderer.RecommendationsMarkdown(r))
	return subcommands.ExitSuccess
}
