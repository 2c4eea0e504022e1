// Package cmd implements the CLI application to manage the stock room.
package cmd

import (
	"flag"

	"stockpile"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare them, and Execute() runs the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "stock")
	c.Register(&setCmd{}, "stock")
	c.Register(&rmCmd{}, "stock")
	c.Register(&itemsCmd{}, "stock")

	c.Register(&issueCmd{}, "issuance")
	c.Register(&historyCmd{}, "issuance")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
	c.Register(&movementCmd{}, "reports")
	c.Register(&recommendCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".stockpile", "Path to the folder holding the stock files (JSONL format)")
var currency = flag.String("currency", "USD", "Display currency for money amounts")

// OpenLedger opens the ledger over the app data folder.
func OpenLedger() *stockpile.Ledger {
	return stockpile.NewLedger(stockpile.NewFileRepository(*dataDir), *currency)
}
