package litekite

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types served by the LiteKite backend. Field tags follow the server's
// JSON exactly, including the historical spelling of avg_purcase_price.

// Holding is one position inside a portfolio snapshot.
type Holding struct {
	Ticker           string  `json:"ticker"`
	Name             string  `json:"name,omitempty"`
	TotalShares      int64   `json:"totalshares"`
	AvgPurchasePrice float64 `json:"avg_purcase_price"`
	CurrentPrice     float64 `json:"current_price"`
	CurrentValue     float64 `json:"current_value"`
}

// PortfolioSnapshot is the full, authoritative read of the user's portfolio.
// Every fetch fully replaces the previous one; it is never patched locally.
type PortfolioSnapshot struct {
	Stocks []Holding `json:"stocks"`
	Cash   float64   `json:"cash"`
	Total  float64   `json:"total"`
}

// ProfitLoss returns the holding's unrealized gain in the given currency.
// current_value is server-authoritative; this figure is display-only.
func (h Holding) ProfitLoss(currency string) Money {
	cost := M(h.AvgPurchasePrice, currency).MulInt(h.TotalShares)
	return M(h.CurrentValue, currency).Sub(cost)
}

// NetChangePercent returns the percentage change against the purchase value,
// or zero when the purchase value is zero. Display-only.
func (h Holding) NetChangePercent() decimal.Decimal {
	cost := decimal.NewFromFloat(h.AvgPurchasePrice).Mul(decimal.NewFromInt(h.TotalShares))
	if cost.IsZero() {
		return decimal.Zero
	}
	value := decimal.NewFromFloat(h.CurrentValue)
	return value.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100))
}

// OwnedStock is a sellable position as listed by /currentstocks.
type OwnedStock struct {
	Name        string `json:"name"`
	Ticker      string `json:"ticker"`
	TotalShares int64  `json:"total_shares"`
}

// TransactionRecord is one line of the trade history, read-only.
type TransactionRecord struct {
	Type   string    `json:"type"` // "BUY" or "SELL"
	Ticker string    `json:"ticker"`
	Price  float64   `json:"price"`
	Shares int64     `json:"shares"`
	Time   time.Time `json:"time"`
}

// Amount returns price*shares in the given currency. Display-only.
func (t TransactionRecord) Amount(currency string) Money {
	return M(t.Price, currency).MulInt(t.Shares)
}

// Quote is a point-in-time price lookup result.
type Quote struct {
	Name   string  `json:"name,omitempty"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// DisplayName returns the quote's name, falling back to the bare symbol.
// Indian quotes come back without a name.
func (q Quote) DisplayName() string {
	if q.Name != "" {
		return q.Name
	}
	return q.Symbol
}

// SearchResult is one match from the symbol search endpoints.
type SearchResult struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Profile is the account profile with both market balances.
type Profile struct {
	Username    string  `json:"username"`
	Nationality string  `json:"nationality,omitempty"`
	Cash        float64 `json:"cash"`
	IndianCash  float64 `json:"indiancash"`
}

// Analysis is the AI service's verdict on a single holding.
type Analysis struct {
	Pros       map[string]string `json:"pros"`
	Cons       map[string]string `json:"cons"`
	Suggestion string            `json:"suggestion"`
}

// Suggestion is the AI service's whole-portfolio advice.
type Suggestion struct {
	Stocks     []string `json:"stocks,omitempty"`
	Reasoning  string   `json:"reasoning,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// NewsItem is one article from the news feed for a symbol.
type NewsItem struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher,omitempty"`
	Link      string `json:"link,omitempty"`
}

// Fundamentals carries the subset of financial figures the info page shows.
type Fundamentals struct {
	Symbol        string  `json:"symbol"`
	MarketCap     float64 `json:"marketCap,omitempty"`
	TrailingPE    float64 `json:"trailingPE,omitempty"`
	ForwardPE     float64 `json:"forwardPE,omitempty"`
	DividendYield float64 `json:"dividendYield,omitempty"`
	High52        float64 `json:"fiftyTwoWeekHigh,omitempty"`
	Low52         float64 `json:"fiftyTwoWeekLow,omitempty"`
}
