package renderer

import (
	"github.com/litekite/litekite"
)

// PortfolioRow is one holding prepared for display: every column is already
// a formatted string so the template stays dumb.
type PortfolioRow struct {
	Ticker    string
	Shares    int64
	AvgCost   string
	LTP       string
	CurValue  string
	PnL       string
	NetChange string
}

// PortfolioReport is the data behind the portfolio overview page.
type PortfolioReport struct {
	Title string
	Rows  []PortfolioRow
	Cash  string
	Total string
}

// NewPortfolioReport prepares a snapshot for rendering in the given display
// currency. current_value and total are served figures; P&L and net change
// are derived here for display only.
func NewPortfolioReport(title string, snap litekite.PortfolioSnapshot, currency string) *PortfolioReport {
	r := &PortfolioReport{
		Title: title,
		Cash:  litekite.M(snap.Cash, currency).String(),
		Total: litekite.M(snap.Total, currency).String(),
	}
	for _, h := range snap.Stocks {
		r.Rows = append(r.Rows, PortfolioRow{
			Ticker:    h.Ticker,
			Shares:    h.TotalShares,
			AvgCost:   litekite.M(h.AvgPurchasePrice, currency).String(),
			LTP:       litekite.M(h.CurrentPrice, currency).String(),
			CurValue:  litekite.M(h.CurrentValue, currency).String(),
			PnL:       h.ProfitLoss(currency).SignedString(),
			NetChange: h.NetChangePercent().StringFixed(2) + "%",
		})
	}
	return r
}
