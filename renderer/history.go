package renderer

import (
	"fmt"
	"strings"

	"github.com/litekite/litekite"
)

// HistoryMarkdown renders the transaction log as a markdown table.
func HistoryMarkdown(title string, records []litekite.TransactionRecord, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(records) == 0 {
		fmt.Fprintln(&b, "No transactions yet!")
		return b.String()
	}
	fmt.Fprintln(&b, "| Type | Ticker | Price | Shares | Amount | Time |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|")
	for _, tx := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
			tx.Type,
			tx.Ticker,
			litekite.M(tx.Price, currency),
			tx.Shares,
			tx.Amount(currency),
			tx.Time.Format("2006-01-02 15:04"),
		)
	}
	return b.String()
}
