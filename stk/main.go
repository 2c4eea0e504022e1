package main

import (
	"context"
	"flag"
	"os"
	"path"

	"stockpile/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of completion mode.
	completion().Complete("stk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	types := predict.Set{"internal", "external"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"add":        {Flags: map[string]complete.Predictor{"t": types}},
			"set":        {Flags: map[string]complete.Predictor{"t": types}},
			"rm":         {Flags: map[string]complete.Predictor{"t": types}},
			"items":      {Flags: map[string]complete.Predictor{"t": types}},
			"issue":      {},
			"history":    {Flags: map[string]complete.Predictor{"t": types}},
			"summary":    {},
			"categories": {Flags: map[string]complete.Predictor{"t": types}},
			"movement":   {},
			"recommend":  {},
			"export":     {Flags: map[string]complete.Predictor{"what": predict.Set{"items", "history", "backup"}, "t": types}},
			"import":     {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"topic":      {},
			"assist":     {},
		},
	}
}
