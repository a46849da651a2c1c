package renderer

// PortfolioMarkdown renders the portfolio overview report to markdown.
func PortfolioMarkdown(r *PortfolioReport) string {
	partials := map[string]string{
		"portfolio_holdings": "portfolio_holdings.md",
		"portfolio_summary":  "portfolio_summary.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, r)
}
