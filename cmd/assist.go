package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"stockpile/agent"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `stk assist [<initial prompt>]

  Starts an interactive session with the AI assistant. The assistant
  can read the stock, the issuance history and the restocking
  recommendations, and research suppliers and prices on the web.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	storekeeper := agent.NewStorekeeper(client, OpenLedger())
	analyst := agent.NewAnalyst(client)
	a, err := agent.New(os.Stdout, os.Stdin, client, storekeeper, analyst)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating assistant:", err)
		return subcommands.ExitFailure
	}

	if err := a.Run(initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
