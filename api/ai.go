package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/litekite/litekite"
)

// Analyze asks the AI service for a verdict on a single holding. The inputs
// are the figures the portfolio page already shows; they must all be set.
func (c *Client) Analyze(ctx context.Context, symbol string, avgPrice float64, shares int64, ltp float64) (litekite.Analysis, error) {
	var a litekite.Analysis
	if strings.TrimSpace(symbol) == "" || avgPrice <= 0 || shares <= 0 || ltp <= 0 {
		return a, fmt.Errorf("%w: symbol, average price, shares and last price must all be set", ErrValidation)
	}
	req := struct {
		Symbol   string  `json:"symbol"`
		AvgPrice float64 `json:"avg_price"`
		Shares   int64   `json:"shares"`
		LTP      float64 `json:"ltp"`
	}{strings.ToUpper(strings.TrimSpace(symbol)), avgPrice, shares, ltp}
	err := c.do(ctx, "POST", c.aiBase+"/analyze", req, &a)
	return a, err
}

// SuggestStocks asks the AI service for whole-portfolio advice based on the
// current snapshot.
func (c *Client) SuggestStocks(ctx context.Context, snap litekite.PortfolioSnapshot) (litekite.Suggestion, error) {
	var s litekite.Suggestion
	req := struct {
		Total  float64            `json:"total"`
		Stocks []litekite.Holding `json:"stocks"`
		Cash   float64            `json:"cash"`
	}{snap.Total, snap.Stocks, snap.Cash}
	if err := c.do(ctx, "POST", c.aiBase+"/suggest-stocks", req, &s); err != nil {
		return s, err
	}
	if s.Suggestion == "" && s.Reasoning == "" && len(s.Stocks) == 0 {
		return s, fmt.Errorf("empty or invalid response from the analysis service")
	}
	return s, nil
}
