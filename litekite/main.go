package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/litekite/litekite/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env in the working directory can carry GEMINI_API_KEY and the
	// LITEKITE_* settings. Missing file is fine.
	godotenv.Load()

	// Shell completion, installed once with COMP_INSTALL=1 litekite.
	complete.Complete("litekite", &complete.Command{
		Sub: map[string]*complete.Command{
			"register":  {},
			"login":     {},
			"logout":    {},
			"profile":   {},
			"portfolio": {},
			"buy":       {},
			"sell":      {},
			"history":   {},
			"trade":     {},
			"quote":     {},
			"search":    {},
			"info":      {},
			"analyze":   {},
			"suggest":   {},
			"assist":    {},
			"topic":     {},
			"help":      {},
		},
		Flags: map[string]complete.Predictor{
			"server":    predict.Something,
			"ai-server": predict.Something,
		},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
