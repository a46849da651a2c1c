package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/subcommands"
	"github.com/litekite/litekite"
	"github.com/litekite/litekite/api"
	"github.com/litekite/litekite/renderer"
)

type tradeCmd struct {
	india bool
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "interactive trading session" }
func (*tradeCmd) Usage() string {
	return `litekite trade [-india]

Starts an interactive trading session. Orders run in the background so the
session stays responsive; a second order on the same stock is refused while
the first is still in flight. Type 'help' inside the session for the
commands.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) { marketFlag(f, &c.india) }

func (c *tradeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	if err := requireSession(client); err != nil {
		return fail(err)
	}

	s := &tradeSession{
		client:   client,
		market:   market(c.india),
		tracker:  litekite.NewActionTracker(),
		searcher: client.NewSearcher(market(c.india), 5),
	}
	s.view = litekite.NewView(func(ctx context.Context) (litekite.PortfolioSnapshot, error) {
		return client.Portfolio(ctx, s.market)
	})

	if err := s.run(ctx, os.Stdin); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// tradeSession holds the state of one interactive session.
type tradeSession struct {
	client   *api.Client
	market   api.Market
	view     *litekite.View[litekite.PortfolioSnapshot]
	tracker  *litekite.ActionTracker
	searcher *api.Searcher

	mu sync.Mutex // guards terminal output from order goroutines
	wg sync.WaitGroup
}

func (s *tradeSession) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Printf(format, args...)
}

func (s *tradeSession) show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.view.State() {
	case litekite.Loading:
		fmt.Println("Loading...")
	case litekite.Failed:
		fmt.Println("Could not load the portfolio:", s.view.Err())
	case litekite.Ready:
		snap, _ := s.view.Data()
		printMarkdown(renderer.PortfolioMarkdown(renderer.NewPortfolioReport("Portfolio", snap, s.market.Currency())))
	}
}

const tradeHelp = `Commands:
  buy <symbol> <shares>    place a buy order
  sell <symbol> <shares>   place a sell order
  quote <symbol>           look up the latest price
  find <query>             search stocks
  owned                    list the stocks you can sell
  cash                     show the US cash balance
  show                     show the portfolio
  refresh                  re-read the portfolio from the server
  pending                  count orders still in flight
  quit                     leave the session
`

func (s *tradeSession) run(ctx context.Context, in *os.File) error {
	if err := s.view.Load(ctx); err != nil {
		// Still enter the session; 'refresh' can recover.
		s.printf("Could not load the portfolio: %v\n", err)
	}
	s.show()
	fmt.Print(tradeHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("trade> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "bye":
			s.wg.Wait()
			return scanner.Err()
		case "help":
			fmt.Print(tradeHelp)
		case "show":
			s.show()
		case "refresh":
			if err := s.view.Refresh(ctx); err != nil {
				s.printf("Refresh failed: %v\n", err)
			}
			s.show()
		case "pending":
			s.printf("%d order(s) in flight\n", s.tracker.InFlightCount())
		case "owned":
			owned, err := s.client.OwnedStocks(ctx, s.market)
			if err != nil {
				s.printf("Could not list owned stocks: %v\n", err)
				continue
			}
			if len(owned) == 0 {
				s.printf("You own no stocks on this side of the account.\n")
				continue
			}
			for _, o := range owned {
				s.printf("  %s  %d share(s)  %s\n", o.Ticker, o.TotalShares, o.Name)
			}
		case "cash":
			balance, err := s.client.Balance(ctx)
			if err != nil {
				s.printf("Could not read the balance: %v\n", err)
				continue
			}
			s.printf("Cash balance: %s\n", litekite.USD(balance))
		case "quote":
			if len(fields) != 2 {
				s.printf("Usage: quote <symbol>\n")
				continue
			}
			quote, err := s.client.GetQuote(ctx, s.market, strings.ToUpper(fields[1]))
			if err != nil {
				s.printf("Quote failed: %v\n", err)
				continue
			}
			s.mu.Lock()
			printMarkdown(renderer.QuoteMarkdown(quote, s.market.Currency()))
			s.mu.Unlock()
		case "find":
			if len(fields) < 2 {
				s.printf("Usage: find <query>\n")
				continue
			}
			s.find(ctx, strings.Join(fields[1:], " "))
		case "buy", "sell":
			if len(fields) != 3 {
				s.printf("Usage: %s <symbol> <shares>\n", fields[0])
				continue
			}
			shares, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || shares <= 0 {
				s.printf("Shares must be a positive whole number, got %q.\n", fields[2])
				continue
			}
			s.order(ctx, fields[0], strings.ToUpper(fields[1]), shares)
		default:
			s.printf("Unknown command %q, type 'help'.\n", fields[0])
		}
	}
	s.wg.Wait()
	return scanner.Err()
}

// order places a buy or sell in the background. The tracker refuses a second
// order on the same stock and side while the first is in flight.
func (s *tradeSession) order(ctx context.Context, kind, symbol string, shares int64) {
	key := litekite.Key(symbol, kind)
	if !s.tracker.Begin(key) {
		s.printf("A %s order for %s is already in flight.\n", kind, symbol)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var msg string
		var err error
		if kind == "sell" {
			msg, err = s.client.Sell(ctx, s.market, symbol, shares)
		} else {
			msg, err = s.client.Buy(ctx, s.market, symbol, shares)
		}
		s.tracker.Done(key, err)
		if err != nil {
			s.printf("\n%s %s failed: %v\ntrade> ", kind, symbol, err)
			return
		}

		// The server's account is the truth, re-read it after the fill.
		if err := s.view.Refresh(ctx); err != nil {
			s.printf("\n%s\n(refresh failed: %v)\ntrade> ", msg, err)
			return
		}
		s.printf("\n%s\ntrade> ", msg)
	}()
}

func (s *tradeSession) find(ctx context.Context, query string) {
	// Lookups are last-query-wins: whatever the user typed most recently is
	// what Results reports, even when responses come back out of order.
	done := s.searcher.Lookup(ctx, query)
	<-done
	results, applied, err := s.searcher.Results()
	if err != nil {
		s.printf("Search failed: %v\n", err)
		return
	}
	s.mu.Lock()
	printMarkdown(renderer.SearchMarkdown(applied, results))
	s.mu.Unlock()
}
