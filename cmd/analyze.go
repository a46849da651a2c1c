package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/renderer"
)

type analyzeCmd struct {
	india bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "AI analysis of one of your holdings" }
func (*analyzeCmd) Usage() string {
	return `litekite analyze [-india] <symbol>

Sends one of your holdings to the analysis service and shows its pros,
cons and suggestion. The symbol must be a stock you currently own.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) { marketFlag(f, &c.india) }

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	// The analysis service needs the position's numbers, so the holding is
	// read from the live portfolio first.
	snap, err := client.Portfolio(ctx, market(c.india))
	if err != nil {
		return fail(err)
	}
	for _, h := range snap.Stocks {
		if h.Ticker == symbol {
			analysis, err := client.Analyze(ctx, h.Ticker, h.AvgPurchasePrice, h.TotalShares, h.CurrentPrice)
			if err != nil {
				return fail(err)
			}
			printMarkdown(renderer.AnalysisMarkdown(h.Ticker, analysis))
			return subcommands.ExitSuccess
		}
	}

	fmt.Fprintf(os.Stderr, "Error: you do not own %s. Only held stocks can be analyzed.\n", symbol)
	return subcommands.ExitFailure
}
