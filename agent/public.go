package agent

import (
	"context"
	"fmt"

	"github.com/litekite/litekite/api"
	"github.com/litekite/litekite/renderer"
	"google.golang.org/genai"
)

const modelName = "gemini-2.5-pro"

// newFacilitator creates the expert that fronts the session. It never answers
// portfolio questions itself, it routes them to the other experts.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "facilitator",
		Description: "Facilitates a conversation about the user's paper trading account " +
			"by asking the right expert.",
		ModelName: modelName,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: `You are the facilitator of the LiteKite assistant,
a helper for a paper trading platform covering US and Indian stock markets.

You never guess account state. For anything about the user's holdings, cash,
past transactions or live prices, call the 'broker' expert. For market news,
company background or general investing questions, call the 'analyst' expert.

Keep answers short and in plain text suitable for a terminal. Amounts are
paper money, never real funds.`}},
			},
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert for market context. It is grounded with
// Google Search so news and company questions get fresh answers.
func NewAnalyst() *Expert {
	return &Expert{
		Name:        "analyst",
		Description: "Answers questions about companies, markets and investing in general.",
		ModelName:   modelName,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: `You are a stock market analyst. Answer questions
about companies, sectors and market events. Use search when the answer depends
on recent information. Be factual and concise, and never present anything as
personal financial advice.`}},
			},
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		},
	}
}

// NewBroker creates the expert that can read the user's account. Its tools
// call the LiteKite backend directly so answers reflect live state.
func NewBroker(client *api.Client) *Expert {
	functions := []*Func{
		portfolioFunc(client),
		quoteFunc(client),
		historyFunc(client),
	}
	return &Expert{
		Name:        "broker",
		Description: "Knows the user's paper portfolio, cash balances, transaction history and live quotes.",
		ModelName:   modelName,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: `You are the broker of a paper trading account.
Use your tools to read the user's portfolio, history and quotes, then answer
from that data only. The account has two sides, a US one in dollars and an
Indian one in rupees. When the user does not say which market they mean,
check both. Do not invent numbers.`}},
			},
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
		},
		Library: NewLibrary(functions),
	}
}

func portfolioFunc(client *api.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_portfolio",
			Description: "Returns the user's holdings, cash balance and total value for one market, as a markdown table.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"market": {
						Type:        genai.TypeString,
						Description: "The market to read, 'us' or 'india'.",
						Enum:        []string{"us", "india"},
					},
				},
				Required: []string{"market"},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "get_portfolio", Response: map[string]any{}}
			market := marketArg(args)
			snap, err := client.Portfolio(ctx, market)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			report := renderer.NewPortfolioReport("Portfolio", snap, market.Currency())
			fresp.Response["output"] = renderer.PortfolioMarkdown(report)
			return fresp
		},
	}
}

func quoteFunc(client *api.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_quote",
			Description: "Returns the latest price for a stock symbol in one market.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The ticker symbol, e.g. AAPL or TCS.",
					},
					"market": {
						Type:        genai.TypeString,
						Description: "The market to read, 'us' or 'india'.",
						Enum:        []string{"us", "india"},
					},
				},
				Required: []string{"symbol", "market"},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "get_quote", Response: map[string]any{}}
			symbol, ok := args["symbol"].(string)
			if !ok {
				fresp.Response["error"] = fmt.Sprintf("invalid symbol %v", args["symbol"])
				return fresp
			}
			market := marketArg(args)
			quote, err := client.GetQuote(ctx, market, symbol)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = renderer.QuoteMarkdown(quote, market.Currency())
			return fresp
		},
	}
}

func historyFunc(client *api.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_history",
			Description: "Returns the user's past buy and sell transactions for one market, as a markdown table.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"market": {
						Type:        genai.TypeString,
						Description: "The market to read, 'us' or 'india'.",
						Enum:        []string{"us", "india"},
					},
				},
				Required: []string{"market"},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "get_history", Response: map[string]any{}}
			market := marketArg(args)
			records, err := client.History(ctx, market)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = renderer.HistoryMarkdown("History", records, market.Currency())
			return fresp
		},
	}
}

func marketArg(args map[string]any) api.Market {
	if m, ok := args["market"].(string); ok && m == "india" {
		return api.India
	}
	return api.US
}
