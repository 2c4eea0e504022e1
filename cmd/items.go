package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stockpile"
	"stockpile/renderer"

	"github.com/google/subcommands"
)

type itemsCmd struct {
	stockType string
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the items of a stock partition" }
func (*itemsCmd) Usage() string {
	return `stk items [-t <type>]

  Lists the items of one stock partition, with quantity, unit cost,
  total value and a LOW/CRITICAL status marker.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stockType, "t", "internal", "Stock type (internal, external).")
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := stockpile.ParseStockType(c.stockType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing stock type: %v\n", err)
		return subcommands.ExitUsageError
	}

	items, err := OpenLedger().Items(t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading items: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ItemsMarkdown(t, items))
	return subcommands.ExitSuccess
}
