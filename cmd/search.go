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

type searchCmd struct {
	india bool
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search stocks by name or symbol" }
func (*searchCmd) Usage() string {
	return `litekite search [-india] [-n <limit>] <query>

Searches the selected market for stocks matching the query.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	marketFlag(f, &c.india)
	f.IntVar(&c.limit, "n", 5, "Maximum number of results")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	results, err := client.Search(ctx, market(c.india), query, c.limit)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SearchMarkdown(query, results))
	return subcommands.ExitSuccess
}
