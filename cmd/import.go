package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stockpile"

	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	inputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore stock data from a JSON backup" }
func (*importCmd) Usage() string {
	return `stk import -i <file>

  Restores both stock partitions and the issuance history from a JSON
  backup, replacing the current data. The backup document is accepted
  at the top level or nested under a 'data', 'backup' or 'inventory'
  key.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "i", "", "Backup file to restore from.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", c.inputFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	b, err := stockpile.ImportBackup(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := stockpile.Restore(stockpile.NewFileRepository(*dataDir), b); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored %d internal item(s), %d external item(s) and %d issuance record(s)\n",
		len(b.InternalStock), len(b.ExternalStock), len(b.IssueHistory))
	return subcommands.ExitSuccess
}
