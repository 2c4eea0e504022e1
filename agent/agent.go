// Package agent implements a small conversational assistant for the
// stockpile inventory.
//
// The agent is a group of "experts", each one a dedicated LLM chat with
// its own system instruction and toolset. A facilitator expert routes
// the user's questions to the others and assembles the final answer.
package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive REPL.
type Agent struct {
	out         io.Writer
	in          io.Reader
	facilitator *Expert
	experts     []*Expert
}

// New creates an agent from a list of experts. A facilitator is created
// on top of them to orchestrate the conversation.
func New(out io.Writer, in io.Reader, client *genai.Client, experts ...*Expert) (*Agent, error) {
	facilitator, err := newFacilitator(client, experts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create facilitator: %w", err)
	}
	return &Agent{
		out:         out,
		in:          in,
		facilitator: facilitator,
		experts:     experts,
	}, nil
}

// Run loops reading user prompts until EOF or "bye". A non-empty
// initial prompt is answered before the first read.
func (a *Agent) Run(initialPrompt string) error {
	if err := a.facilitator.Start(); err != nil {
		return fmt.Errorf("cannot start facilitator: %w", err)
	}
	for _, e := range a.experts {
		if err := e.Start(); err != nil {
			return fmt.Errorf("cannot start expert %q: %w", e.Name, err)
		}
	}

	if initialPrompt != "" {
		answer, err := a.facilitator.Ask(initialPrompt)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		} else {
			fmt.Fprintln(a.out, answer)
		}
	}

	scanner := bufio.NewScanner(a.in)
	fmt.Fprintf(a.out, "assist> ")
	for scanner.Scan() {
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			fmt.Fprintf(a.out, "assist> ")
			continue
		}
		if prompt == "bye" {
			fmt.Fprintln(a.out, "bye")
			return nil
		}
		answer, err := a.facilitator.Ask(prompt)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		} else {
			fmt.Fprintln(a.out, answer)
		}
		fmt.Fprintf(a.out, "assist> ")
	}
	return scanner.Err()
}
