package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/litekite/litekite"
)

// Portfolio fetches the full, authoritative snapshot for the market.
func (c *Client) Portfolio(ctx context.Context, m Market) (litekite.PortfolioSnapshot, error) {
	var snap litekite.PortfolioSnapshot
	err := c.jwget(ctx, m.portfolioPath(), &snap)
	return snap, err
}

// Balance fetches the current cash balance.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	var body struct {
		Balance float64 `json:"balance"`
	}
	err := c.jwget(ctx, "/balance", &body)
	return body.Balance, err
}

// OwnedStocks lists the positions that can currently be sold.
func (c *Client) OwnedStocks(ctx context.Context, m Market) ([]litekite.OwnedStock, error) {
	var owned []litekite.OwnedStock
	err := c.jwget(ctx, m.ownedPath(), &owned)
	return owned, err
}

// checkOrder is the client-side validation gate shared by Buy and Sell.
// A failing check produces the same error surface as a server rejection,
// without sending any request.
func checkOrder(symbol string, shares int64) error {
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("%w: a stock symbol is required", ErrValidation)
	}
	if shares <= 0 {
		return fmt.Errorf("%w: the number of shares must be positive, got %d", ErrValidation, shares)
	}
	return nil
}

// Buy places a buy order and returns the server's confirmation message.
func (c *Client) Buy(ctx context.Context, m Market, symbol string, shares int64) (string, error) {
	if err := checkOrder(symbol, shares); err != nil {
		return "", err
	}
	return c.order(ctx, m.buyPath(), symbol, shares)
}

// Sell places a sell order and returns the server's confirmation message.
func (c *Client) Sell(ctx context.Context, m Market, symbol string, shares int64) (string, error) {
	if err := checkOrder(symbol, shares); err != nil {
		return "", err
	}
	return c.order(ctx, m.sellPath(), symbol, shares)
}

func (c *Client) order(ctx context.Context, path, symbol string, shares int64) (string, error) {
	order := struct {
		Symbol string `json:"symbol"`
		Shares int64  `json:"shares"`
	}{strings.ToUpper(strings.TrimSpace(symbol)), shares}
	var body struct {
		Message string `json:"message"`
	}
	if err := c.jwpost(ctx, path, order, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// History fetches the transaction log, newest first as served.
func (c *Client) History(ctx context.Context, m Market) ([]litekite.TransactionRecord, error) {
	var records []litekite.TransactionRecord
	err := c.jwget(ctx, m.historyPath(), &records)
	return records, err
}

// GetQuote fetches the current price for a symbol.
func (c *Client) GetQuote(ctx context.Context, m Market, symbol string) (litekite.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return litekite.Quote{}, fmt.Errorf("%w: a stock symbol is required", ErrValidation)
	}
	var q litekite.Quote
	req := struct {
		Symbol string `json:"symbol"`
	}{symbol}
	err := c.jwpost(ctx, m.quotePath(), req, &q)
	return q, err
}

// Search looks up symbols matching the query.
func (c *Client) Search(ctx context.Context, m Market, query string, limit int) ([]litekite.SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	var results []litekite.SearchResult
	path := fmt.Sprintf("%s?q=%s&limit=%d", m.searchPath(), url.QueryEscape(query), limit)
	err := c.jwget(ctx, path, &results)
	return results, err
}

// GetProfile fetches the account profile with both market balances.
func (c *Client) GetProfile(ctx context.Context) (litekite.Profile, error) {
	var p litekite.Profile
	err := c.jwget(ctx, "/profile", &p)
	return p, err
}

// SelectNation records the user's nationality.
func (c *Client) SelectNation(ctx context.Context, nation string) error {
	nation = strings.TrimSpace(nation)
	if nation == "" {
		return fmt.Errorf("%w: a nationality is required", ErrValidation)
	}
	req := struct {
		Nation string `json:"nation"`
	}{nation}
	return c.jwpost(ctx, "/selectnation", req, nil)
}

// addFundsLimit is the most the backend accepts per top-up.
const addFundsLimit = 10000

// AddFunds tops up the paper-money balances. Each amount is capped at 10000
// per call; the check runs client-side before any request.
func (c *Client) AddFunds(ctx context.Context, cash, indianCash float64) error {
	if cash < 0 || indianCash < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}
	if cash > addFundsLimit || indianCash > addFundsLimit {
		return fmt.Errorf("%w: add funds limit is %d per call", ErrValidation, addFundsLimit)
	}
	req := struct {
		Cash       float64 `json:"cash"`
		IndianCash float64 `json:"indiancash"`
	}{cash, indianCash}
	return c.jwpost(ctx, "/editbalances", req, nil)
}
