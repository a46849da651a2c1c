package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/api"
	"github.com/litekite/litekite/renderer"
)

type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "AI stock suggestions for your portfolio" }
func (*suggestCmd) Usage() string {
	return `litekite suggest

Sends the US portfolio to the analysis service and shows which stocks it
would consider next, with the reasoning.
`
}

func (*suggestCmd) SetFlags(_ *flag.FlagSet) {}

func (*suggestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	snap, err := client.Portfolio(ctx, api.US)
	if err != nil {
		return fail(err)
	}
	suggestion, err := client.SuggestStocks(ctx, snap)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SuggestionMarkdown(suggestion))
	return subcommands.ExitSuccess
}
