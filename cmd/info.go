package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/renderer"
)

type infoCmd struct {
	news  bool
	chart int
	india bool
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "show fundamentals, news or a price chart" }
func (*infoCmd) Usage() string {
	return `litekite info [-news] [-chart <days>] [-india] <symbol>

Shows key financial figures for a stock. With -news, lists recent articles
instead. With -chart, draws the recent closing prices. Fundamentals and
news cover US stocks only; charts work on both markets.
`
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.news, "news", false, "Show recent news articles")
	f.IntVar(&c.chart, "chart", 0, "Draw the last N closing prices")
	marketFlag(f, &c.india)
}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	switch {
	case c.news:
		items, err := client.News(ctx, symbol)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.NewsMarkdown(symbol, items))

	case c.chart > 0:
		m := market(c.india)
		points, err := client.StockChart(ctx, m, symbol)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.ChartMarkdown(symbol, points, m.Currency(), c.chart))

	default:
		if c.india {
			fmt.Fprintln(os.Stderr, "Error: fundamentals are available for US stocks only.")
			return subcommands.ExitUsageError
		}
		fundamentals, err := client.Fundamentals(ctx, symbol)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.FundamentalsMarkdown(fundamentals))
	}
	return subcommands.ExitSuccess
}
