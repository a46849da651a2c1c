package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/renderer"
)

type buyCmd struct {
	india bool
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares at the latest price" }
func (*buyCmd) Usage() string {
	return `litekite buy [-india] <symbol> <shares>

Buys shares at the latest traded price. The order fails when its cost
exceeds the cash balance. On success the refreshed portfolio is shown.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { marketFlag(f, &c.india) }

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return order(ctx, f, c.india, false)
}

// order runs a buy or a sell and shows the refreshed portfolio. Both sides
// share this path: only the API call differs.
func order(ctx context.Context, f *flag.FlagSet, india, sell bool) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a symbol and a number of shares are required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	shares, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil || shares <= 0 {
		fmt.Fprintf(os.Stderr, "Error: shares must be a positive whole number, got %q.\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	m := market(india)
	var msg string
	if sell {
		msg, err = client.Sell(ctx, m, symbol, shares)
	} else {
		msg, err = client.Buy(ctx, m, symbol, shares)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Println(msg)

	// Re-read the account rather than patching it locally.
	snap, err := client.Portfolio(ctx, m)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PortfolioMarkdown(renderer.NewPortfolioReport("Portfolio", snap, m.Currency())))
	return subcommands.ExitSuccess
}
