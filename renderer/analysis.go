package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/litekite/litekite"
)

// AnalysisMarkdown renders the AI verdict on a single holding.
func AnalysisMarkdown(symbol string, a litekite.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis: %s\n\n", symbol)

	fmt.Fprintln(&b, "## Pros")
	writePoints(&b, a.Pros)
	fmt.Fprintln(&b, "\n## Cons")
	writePoints(&b, a.Cons)

	if a.Suggestion != "" {
		fmt.Fprintf(&b, "\n## Suggestion\n\n%s\n", a.Suggestion)
	}
	return b.String()
}

// writePoints renders a keyed point list in a stable order.
func writePoints(b *strings.Builder, points map[string]string) {
	if len(points) == 0 {
		fmt.Fprintln(b, "\n* none noted")
		return
	}
	keys := make([]string, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(b)
	for _, k := range keys {
		fmt.Fprintf(b, "* **%s**: %s\n", k, points[k])
	}
}

// SuggestionMarkdown renders the AI whole-portfolio advice.
func SuggestionMarkdown(s litekite.Suggestion) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Portfolio suggestion")
	fmt.Fprintln(&b)
	if len(s.Stocks) > 0 {
		fmt.Fprintf(&b, "Stocks to look at: **%s**\n\n", strings.Join(s.Stocks, ", "))
	}
	if s.Reasoning != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Reasoning)
	}
	if s.Suggestion != "" {
		fmt.Fprintf(&b, "%s\n", s.Suggestion)
	}
	return b.String()
}

// FundamentalsMarkdown renders the financial figures for a symbol.
func FundamentalsMarkdown(f litekite.Fundamentals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fundamentals\n\n", f.Symbol)
	fmt.Fprintln(&b, "| Figure | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	if f.MarketCap > 0 {
		fmt.Fprintf(&b, "| Market cap | %.0f |\n", f.MarketCap)
	}
	if f.TrailingPE > 0 {
		fmt.Fprintf(&b, "| Trailing P/E | %.2f |\n", f.TrailingPE)
	}
	if f.ForwardPE > 0 {
		fmt.Fprintf(&b, "| Forward P/E | %.2f |\n", f.ForwardPE)
	}
	if f.DividendYield > 0 {
		fmt.Fprintf(&b, "| Dividend yield | %.2f%% |\n", f.DividendYield*100)
	}
	if f.High52 > 0 {
		fmt.Fprintf(&b, "| 52-week high | %.2f |\n", f.High52)
	}
	if f.Low52 > 0 {
		fmt.Fprintf(&b, "| 52-week low | %.2f |\n", f.Low52)
	}
	return b.String()
}

// NewsMarkdown renders the news feed for a symbol.
func NewsMarkdown(symbol string, items []litekite.NewsItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s news\n\n", symbol)
	if len(items) == 0 {
		fmt.Fprintln(&b, "No recent news.")
		return b.String()
	}
	for _, item := range items {
		fmt.Fprintf(&b, "* **%s**", item.Title)
		if item.Publisher != "" {
			fmt.Fprintf(&b, " (%s)", item.Publisher)
		}
		fmt.Fprintln(&b)
		if item.Link != "" {
			fmt.Fprintf(&b, "  <%s>\n", item.Link)
		}
	}
	return b.String()
}
