package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/coinsim/coinsim/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before flag parsing; when invoked by the
	// shell it answers and exits by itself.
	completion().Complete("csim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	files := predict.Files("*")
	seed := predict.Something
	quantityFlags := map[string]complete.Predictor{"s": predict.Something, "q": predict.Something}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"init":       {Flags: map[string]complete.Predictor{"seed": seed, "config": files}},
			"market":     {},
			"tick":       {Flags: map[string]complete.Predictor{"n": predict.Something, "seed": seed}},
			"import":     {Flags: map[string]complete.Predictor{"f": files}},
			"buy":        {Flags: quantityFlags},
			"sell":       {Flags: quantityFlags},
			"holding":    {},
			"allocation": {},
			"fmt":        {},
			"topic":      {Args: predict.Set{"readme", "market", "ledger", "snapshot"}},
		},
		Flags: map[string]complete.Predictor{
			"market-file":   files,
			"snapshot-file": files,
		},
	}
}
