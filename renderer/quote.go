package renderer

import (
	"fmt"
	"strings"

	"github.com/litekite/litekite"
	"github.com/litekite/litekite/api"
)

// QuoteMarkdown renders a single price lookup.
func QuoteMarkdown(q litekite.Quote, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", q.DisplayName())
	fmt.Fprintf(&b, "* Symbol: **%s**\n", q.Symbol)
	fmt.Fprintf(&b, "* Price: **%s**\n", litekite.M(q.Price, currency))
	return b.String()
}

// SearchMarkdown renders symbol search matches.
func SearchMarkdown(query string, results []litekite.SearchResult) string {
	var b strings.Builder
	if len(results) == 0 {
		fmt.Fprintf(&b, "No stocks found for %q!\n", query)
		return b.String()
	}
	fmt.Fprintf(&b, "Found %d results for %q:\n\n", len(results), query)
	fmt.Fprintln(&b, "| Symbol | Name |")
	fmt.Fprintln(&b, "|:---|:---|")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %s |\n", r.Symbol, r.Name)
	}
	return b.String()
}

// ChartMarkdown renders the recent closes of a price series, newest last,
// with a coarse bar per row to read the trend at a glance.
func ChartMarkdown(ticker string, points []api.ChartPoint, currency string, last int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s price history\n\n", ticker)
	if len(points) == 0 {
		fmt.Fprintln(&b, "No price data available.")
		return b.String()
	}
	if last > 0 && len(points) > last {
		points = points[len(points)-last:]
	}

	lo, hi := points[0].Close, points[0].Close
	for _, p := range points {
		if p.Close < lo {
			lo = p.Close
		}
		if p.Close > hi {
			hi = p.Close
		}
	}

	fmt.Fprintln(&b, "| Date | Close | |")
	fmt.Fprintln(&b, "|:---|---:|:---|")
	for _, p := range points {
		width := 0
		if hi > lo {
			width = int((p.Close - lo) / (hi - lo) * 20)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Date, litekite.M(p.Close, currency), strings.Repeat("▇", width+1))
	}
	return b.String()
}
