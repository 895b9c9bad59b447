package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/grq/tracker/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; a no-op unless invoked by the shell's completion hook.
	dateFlag := map[string]complete.Predictor{"d": predict.Something}
	complete.Complete("grqt", &complete.Command{
		Flags: map[string]complete.Predictor{
			"docs-path":     predict.Dirs("*"),
			"price-path":    predict.Dirs("*"),
			"dividend-path": predict.Dirs("*"),
			"verbose":       predict.Nothing,
			"v":             predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"update": {Flags: map[string]complete.Predictor{
				"process-all":           predict.Nothing,
				"calculate-performance": predict.Nothing,
				"performance-only":      predict.Nothing,
				"d":                     predict.Something,
			}},
			"performance": {Flags: dateFlag},
			"snapshot":    {Flags: dateFlag},
			"topic":       {Args: predict.Set{"readme", "methodology", "layout", "cli"}},
		},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()
	os.Exit(int(commander.Execute(context.Background())))
}
