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

// setCmd holds the flags for the 'set' subcommand. Only flags the user
// actually passed are applied to the item.
type setCmd struct {
	stockType string
	id        string
	name      string
	category  string
	supplier  string
	quantity  int
	unitCost  string
	received  string
	notes     string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update fields of an existing stock item" }
func (*setCmd) Usage() string {
	return `stk set -t <type> -id <id> [-name <name>] [-category <category>] [-supplier <supplier>] [-q <quantity>] [-cost <unit-cost>] [-received <date>] [-notes <notes>]

  Updates the given fields of an existing item. Fields not passed are
  left untouched. The item id and stock type cannot be changed.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stockType, "t", "internal", "Stock type (internal, external).")
	f.StringVar(&c.id, "id", "", "Item id.")
	f.StringVar(&c.name, "name", "", "New item name.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.supplier, "supplier", "", "New supplier name.")
	f.IntVar(&c.quantity, "q", 0, "New quantity.")
	f.StringVar(&c.unitCost, "cost", "", "New unit cost.")
	f.StringVar(&c.received, "received", "", "New date received (YYYY-MM-DD).")
	f.StringVar(&c.notes, "notes", "", "New notes.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := stockpile.ParseStockType(c.stockType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing stock type: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	var fields stockpile.UpdateItemFields
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			fields.Name = &c.name
		case "category":
			fields.Category = &c.category
		case "supplier":
			fields.Supplier = &c.supplier
		case "q":
			fields.Quantity = &c.quantity
		case "notes":
			fields.Notes = &c.notes
		}
	})
	if c.unitCost != "" {
		cost, err := stockpile.ParseMoney(c.unitCost, *currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing unit cost: %v\n", err)
			return subcommands.ExitUsageError
		}
		fields.UnitCost = &cost
	}
	if c.received != "" {
		d, err := date.Parse(c.received)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing received date: %v\n", err)
			return subcommands.ExitUsageError
		}
		fields.DateReceived = &d
	}

	item, err := OpenLedger().UpdateItem(c.id, fields, t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s item %s: %s\n", t, item.ID, renderer.Item(item))
	return subcommands.ExitSuccess
}
