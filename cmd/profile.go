package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/renderer"
)

type profileCmd struct {
	nation string
	add    float64
	india  bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the account profile" }
func (*profileCmd) Usage() string {
	return `litekite profile
litekite profile -nation <india|usa>
litekite profile -add <amount> [-india]

Shows the profile with both cash balances. With -nation, records the
nationality, which picks the default market side. With -add, tops up the
paper cash balance, at most 10000 per request.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nation, "nation", "", "Set the nationality")
	f.Float64Var(&c.add, "add", 0, "Add paper funds to a cash balance")
	marketFlag(f, &c.india)
}

func (c *profileCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	if c.nation != "" {
		if err := client.SelectNation(ctx, c.nation); err != nil {
			return fail(err)
		}
		fmt.Println("Nationality updated.")
	}

	if c.add != 0 {
		var cash, indianCash float64
		if c.india {
			indianCash = c.add
		} else {
			cash = c.add
		}
		if err := client.AddFunds(ctx, cash, indianCash); err != nil {
			return fail(err)
		}
		fmt.Println("Funds added.")
	}

	profile, err := client.GetProfile(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProfileMarkdown(profile))
	return subcommands.ExitSuccess
}
