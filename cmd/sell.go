package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type sellCmd struct {
	india bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares at the latest price" }
func (*sellCmd) Usage() string {
	return `litekite sell [-india] <symbol> <shares>

Sells shares at the latest traded price. The order fails when selling more
shares than owned. On success the refreshed portfolio is shown.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { marketFlag(f, &c.india) }

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return order(ctx, f, c.india, true)
}
