package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/litekite/litekite"
)

// Fundamentals fetches the financial figures for a symbol.
func (c *Client) Fundamentals(ctx context.Context, symbol string) (litekite.Fundamentals, error) {
	var f litekite.Fundamentals
	err := c.jwget(ctx, "/fundamentals/"+url.PathEscape(symbol), &f)
	if f.Symbol == "" {
		f.Symbol = symbol
	}
	return f, err
}

// News fetches the recent articles for a symbol.
func (c *Client) News(ctx context.Context, symbol string) ([]litekite.NewsItem, error) {
	var items []litekite.NewsItem
	err := c.jwget(ctx, "/news/"+url.PathEscape(symbol), &items)
	return items, err
}

// ChartPoint is one daily close from the historical price feed.
type ChartPoint struct {
	Date  string
	Close float64
}

// StockChart fetches the historical price series for a ticker. The backend
// relays the provider's nested chart payload; the dates and closes are
// plucked out with jsonpath rather than mirroring the whole structure.
func (c *Client) StockChart(ctx context.Context, m Market, ticker string) ([]ChartPoint, error) {
	path := "/stock_data/"
	if m == India {
		path = "/indian_stock_data/"
	}
	var jobj any
	if err := c.jwget(ctx, path+url.PathEscape(ticker), &jobj); err != nil {
		return nil, err
	}

	dates, err := jsonpath.Get("$.data[*].date", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected chart payload for %q: %w", ticker, err)
	}
	closes, err := jsonpath.Get("$.data[*].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected chart payload for %q: %w", ticker, err)
	}
	jdates, ok1 := dates.([]any)
	jcloses, ok2 := closes.([]any)
	if !ok1 || !ok2 || len(jdates) != len(jcloses) {
		return nil, fmt.Errorf("unexpected chart payload for %q: dates and closes mismatch", ticker)
	}

	points := make([]ChartPoint, 0, len(jdates))
	for i := range jdates {
		date, _ := jdates[i].(string)
		close, ok := jcloses[i].(float64)
		if !ok {
			continue // provider sometimes serves nulls on holidays
		}
		points = append(points, ChartPoint{Date: date, Close: close})
	}
	return points, nil
}
