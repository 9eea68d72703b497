package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cgjones/collate/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// No-op unless invoked by the shell completion hooks.
	completion().Complete("clt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	ledgers := predict.Files("*")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"echo": {Args: ledgers},
			"sum": {
				Args: ledgers,
				Flags: map[string]complete.Predictor{
					"pretty": predict.Nothing,
					"c":      predict.Set{"EUR", "USD", "GBP", "CHF"},
				},
			},
			"sort": {
				Args: ledgers,
				Flags: map[string]complete.Predictor{
					"xlsx": predict.Files("*.xlsx"),
				},
			},
			"export": {
				Args: ledgers,
				Flags: map[string]complete.Predictor{
					"q": predict.Nothing,
				},
			},
			"topic":  {Args: predict.Nothing},
			"assist": {Args: ledgers},
		},
		Flags: map[string]complete.Predictor{
			"groups-file": predict.Files("*.yaml"),
		},
	}
}
