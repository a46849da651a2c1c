package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/litekite/litekite/api"
)

type loginCmd struct {
	username string
	password string
	token    string
	google   bool
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and store the session" }
func (*loginCmd) Usage() string {
	return `litekite login -u <username> -p <password>
litekite login -google
litekite login -token <token>

Signs in to LiteKite and stores the session token, so the other commands
work until the session expires or 'litekite logout' is run.

With -google, prints the Google sign-in URL to open in a browser; the token
shown after approving is then stored with 'litekite login -token <token>'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.token, "token", "", "Store an already issued token instead of signing in")
	f.BoolVar(&c.google, "google", false, "Print the Google sign-in URL")
}

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()

	switch {
	case c.google:
		authURL, err := client.StartOAuthLogin(ctx)
		if err != nil {
			return fail(err)
		}
		fmt.Println("Open this URL in your browser to sign in with Google:")
		fmt.Println()
		fmt.Println("  " + authURL)
		fmt.Println()
		fmt.Println("Then store the token with: litekite login -token <token>")
		return subcommands.ExitSuccess

	case c.token != "":
		if err := client.SetAuthToken(c.token); err != nil {
			return fail(err)
		}

	default:
		if c.username == "" || c.password == "" {
			fmt.Fprintln(os.Stderr, "Error: -u and -p are required.")
			return subcommands.ExitUsageError
		}
		if err := client.Login(ctx, c.username, c.password); err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				fmt.Fprintln(os.Stderr, "Error: invalid username or password.")
				return subcommands.ExitFailure
			}
			return fail(err)
		}
	}

	fmt.Println("Signed in.")
	return subcommands.ExitSuccess
}
