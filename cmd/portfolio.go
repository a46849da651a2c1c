package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/litekite/litekite"
	"github.com/litekite/litekite/api"
	"github.com/litekite/litekite/renderer"
)

type portfolioCmd struct {
	india bool
	us    bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show holdings, cash and total value" }
func (*portfolioCmd) Usage() string {
	return `litekite portfolio [-india|-us]

Shows the portfolio: holdings with live prices, the cash balance and the
total account value. Without a flag the market side follows the profile's
nationality.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	marketFlag(f, &c.india)
	f.BoolVar(&c.us, "us", false, "Force the US side of the account")
}

func (c *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	m := c.resolveMarket(ctx, client)

	view := litekite.NewView(func(ctx context.Context) (litekite.PortfolioSnapshot, error) {
		return client.Portfolio(ctx, m)
	})
	if err := view.Load(ctx); err != nil {
		return fail(view.Err())
	}

	snap, _ := view.Data()
	title := "Portfolio Overview"
	if m == api.India {
		title = "Indian Portfolio Overview"
	}
	printMarkdown(renderer.PortfolioMarkdown(renderer.NewPortfolioReport(title, snap, m.Currency())))
	return subcommands.ExitSuccess
}

// resolveMarket picks the market side: explicit flags win, otherwise the
// profile's nationality decides, the way the web app routes its home page.
func (c *portfolioCmd) resolveMarket(ctx context.Context, client *api.Client) api.Market {
	if c.india {
		return api.India
	}
	if c.us {
		return api.US
	}
	if p, err := client.GetProfile(ctx); err == nil && strings.EqualFold(p.Nationality, "india") {
		return api.India
	}
	return api.US
}
