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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	stockType string
	name      string
	category  string
	supplier  string
	quantity  int
	unitCost  string
	received  string
	notes     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the stock" }
func (*addCmd) Usage() string {
	return `stk add -t <type> -name <name> -category <category> -supplier <supplier> -q <quantity> -cost <unit-cost> [-received <date>] [-notes <notes>]

  Adds a new item to the internal-use or external-use stock.

Usage Examples:
# Add 20 boxes of bolts to the internal stock.
$ stk add -t internal -name "M6 bolts" -category Hardware -supplier "Acme Co" -q 20 -cost 1.50

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stockType, "t", "internal", "Stock type (internal, external).")
	f.StringVar(&c.name, "name", "", "Item name.")
	f.StringVar(&c.category, "category", "", "Item category.")
	f.StringVar(&c.supplier, "supplier", "", "Supplier name.")
	f.IntVar(&c.quantity, "q", 0, "Initial quantity.")
	f.StringVar(&c.unitCost, "cost", "0", "Unit cost.")
	f.StringVar(&c.received, "received", "", "Date received (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := stockpile.ParseStockType(c.stockType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing stock type: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := stockpile.ParseMoney(c.unitCost, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing unit cost: %v\n", err)
		return subcommands.ExitUsageError
	}
	req := stockpile.CreateItemRequest{
		Name:         c.name,
		Category:     c.category,
		Supplier:     c.supplier,
		Quantity:     c.quantity,
		UnitCost:     cost,
		DateReceived: date.Today(),
		Notes:        c.notes,
	}
	if c.received != "" {
		d, err := date.Parse(c.received)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing received date: %v\n", err)
			return subcommands.ExitUsageError
		}
		req.DateReceived = d
	}

	item, err := OpenLedger().AddItem(req, t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s item %s: %s\n", t, item.ID, renderer.Item(item))
	return subcommands.ExitSuccess
}
