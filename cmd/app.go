// Package cmd implements the CLI application to trade on LiteKite.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/litekite/litekite"
	"github.com/litekite/litekite/api"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "session")
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&profileCmd{}, "session")

	c.Register(&portfolioCmd{}, "trading")
	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&historyCmd{}, "trading")
	c.Register(&tradeCmd{}, "trading")

	c.Register(&quoteCmd{}, "market data")
	c.Register(&searchCmd{}, "market data")
	c.Register(&infoCmd{}, "market data")

	c.Register(&analyzeCmd{}, "insight")
	c.Register(&suggestCmd{}, "insight")
	c.Register(&assistCmd{}, "insight")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverFlag = flag.String("server", "", "Base URL of the LiteKite API server (overrides LITEKITE_SERVER and the config file)")
var aiServerFlag = flag.String("ai-server", "", "Base URL of the LiteKite AI service (overrides LITEKITE_AI_SERVER and the config file)")

// newClient builds the API client from the resolved configuration.
func newClient() *api.Client {
	cfg := loadConfig()
	if *serverFlag != "" {
		cfg.Server = *serverFlag
	}
	if *aiServerFlag != "" {
		cfg.AIServer = *aiServerFlag
	}
	return api.New(cfg.Server, cfg.AIServer, litekite.NewSessionStore())
}

// requireSession is the guard in front of every account page. It fails fast
// with a hint instead of letting the request bounce with a 401.
func requireSession(client *api.Client) error {
	if !client.Authenticated() {
		return litekite.ErrNoSession
	}
	return nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be set up.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and converts it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// marketFlag adds the -india switch shared by the dual-market commands.
func marketFlag(f *flag.FlagSet, india *bool) {
	f.BoolVar(india, "india", false, "Operate on the Indian side of the account instead of the US one")
}

func market(india bool) api.Market {
	if india {
		return api.India
	}
	return api.US
}
