package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stockpile"

	"github.com/google/subcommands"
)

type rmCmd struct {
	stockType string
	id        string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the stock" }
func (*rmCmd) Usage() string {
	return `stk rm -t <type> -id <id>

  Removes an item from the stock. Removing an id that is already absent
  is not an error.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stockType, "t", "internal", "Stock type (internal, external).")
	f.StringVar(&c.id, "id", "", "Item id.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := stockpile.ParseStockType(c.stockType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing stock type: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	removed, err := OpenLedger().DeleteItem(c.id, t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing item: %v\n", err)
		return subcommands.ExitFailure
	}
	if removed {
		fmt.Printf("Removed %s item %s\n", t, c.id)
	} else {
		fmt.Printf("No %s item %s, nothing to remove\n", t, c.id)
	}
	return subcommands.ExitSuccess
}
