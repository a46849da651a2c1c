package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/renderer"
)

type quoteCmd struct {
	india bool
	chart int
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "look up the latest price of a stock" }
func (*quoteCmd) Usage() string {
	return `litekite quote [-india] [-chart <days>] <symbol>

Shows the latest traded price for a symbol. With -chart, also draws the
recent closing prices.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	marketFlag(f, &c.india)
	f.IntVar(&c.chart, "chart", 0, "Also draw the last N closing prices")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	m := market(c.india)
	quote, err := client.GetQuote(ctx, m, symbol)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.QuoteMarkdown(quote, m.Currency()))

	if c.chart > 0 {
		points, err := client.StockChart(ctx, m, symbol)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.ChartMarkdown(quote.Symbol, points, m.Currency(), c.chart))
	}
	return subcommands.ExitSuccess
}
