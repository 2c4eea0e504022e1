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

// movementCmd holds the flags for the 'movement' subcommand.
type movementCmd struct {
	date string
	days int
}

func (*movementCmd) Name() string     { return "movement" }
func (*movementCmd) Synopsis() string { return "display issuance movement over a trailing window" }
func (*movementCmd) Usage() string {
	return `stk movement [-d <date>] [-days <n>]

  Buckets the issuances of the trailing window by day, showing the
  quantity and value moved per day.
`
}

func (c *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "End date for the window (YYYY-MM-DD).")
	f.IntVar(&c.days, "days", stockpile.MovementWindowDays, "Number of trailing days to analyse.")
}

func (c *movementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	to, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	records, err := OpenLedger().IssueHistory(stockpile.HistoryFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}

	r := stockpile.Movement(records, date.Trailing(to, c.days))
	printMarkdown(renderer.MovementMarkdown(r))
	return subcommands.ExitSuccess
}
