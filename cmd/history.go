package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/api"
	"github.com/litekite/litekite/renderer"
)

type historyCmd struct {
	india bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show past transactions" }
func (*historyCmd) Usage() string {
	return `litekite history [-india]

Lists past buy and sell transactions with price, share count and time.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) { marketFlag(f, &c.india) }

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	m := market(c.india)
	records, err := client.History(ctx, m)
	if err != nil {
		return fail(err)
	}

	title := "Transaction History"
	if m == api.India {
		title = "Indian Transaction History"
	}
	printMarkdown(renderer.HistoryMarkdown(title, records, m.Currency()))
	return subcommands.ExitSuccess
}
