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

type categoriesCmd struct {
	stockType string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "break down a stock partition by category" }
func (*categoriesCmd) Usage() string {
	return `stk categories [-t <type>]

  Groups the items of one partition by category, with item counts,
  total quantities and total value per category.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stockType, "t", "internal", "Stock type (internal, external).")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.CategoriesMarkdown(stockpile.Categories(items)))
	return subcommands.ExitSuccess
}
