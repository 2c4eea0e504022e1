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

// issueCmd holds the flags for the 'issue' subcommand.
type issueCmd struct {
	id       string
	quantity int
	issuedTo string
	reason   string
	date     string
	issuedBy string
	notes    string
}

func (*issueCmd) Name() string     { return "issue" }
func (*issueCmd) Synopsis() string { return "issue stock to a recipient" }
func (*issueCmd) Usage() string {
	return `stk issue -id <id> -q <quantity> -to <recipient> -reason <reason> [-d <date>] [-by <name>] [-notes <notes>]

  Issues a quantity of an item to a recipient, decrementing the stock
  and appending a record to the issuance history. The item is looked up
  in the internal-use stock first, then the external-use stock.

Usage Examples:
# Issue 12 bolts to the workshop.
$ stk issue -id 3f2a... -q 12 -to "Workshop" -reason "bench assembly"

`
}

func (c *issueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id.")
	f.IntVar(&c.quantity, "q", 0, "Quantity to issue.")
	f.StringVar(&c.issuedTo, "to", "", "Recipient of the issuance.")
	f.StringVar(&c.reason, "reason", "", "Reason for the issuance.")
	f.StringVar(&c.date, "d", "", "Issuance date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.issuedBy, "by", "", "Name of the person issuing.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *issueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := stockpile.IssueRequest{
		ItemID:   c.id,
		Quantity: c.quantity,
		IssuedTo: c.issuedTo,
		Reason:   c.reason,
		Date:     date.Today(),
		IssuedBy: c.issuedBy,
		Notes:    c.notes,
	}
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		req.Date = d
	}

	rec, err := OpenLedger().Issue(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing stock: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Issuance(rec))
	return subcommands.ExitSuccess
}
