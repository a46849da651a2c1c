package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	username string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `litekite register -u <username> -p <password>

Creates a new LiteKite account. Registering does not sign you in;
run 'litekite login' afterwards.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
}

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -p are required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	if err := client.Register(ctx, c.username, c.password); err != nil {
		return fail(err)
	}

	fmt.Println("Account created. Sign in with: litekite login -u", c.username, "-p <password>")
	return subcommands.ExitSuccess
}
