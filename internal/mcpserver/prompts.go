package mcpserver

import (
	"context"
	"fmt"

	"github.com/scaryPonens/binance-mcp/internal/symbol"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const executiveSummaryPrompt = `Get the prices of the following crypto asset: btc, eth

Provide me with an executive summary including the
two-sentence summary of the crypto asset, the current price,
the price change in the last 24 hours, and the percentage change
in the last 24 hours.

When using the get_price and get_price_24hr_change tools,
use the symbol as the argument.

Symbols: For bitcoin/btc, the symbol is "BTCUSDT".
Symbols: For ethereum/eth, the symbol is "ETHUSDT".`

const cryptoSummaryTemplate = `Get the current price of the following crypto assets:
%s

If multiple assets are provided (separated by commas), get data for each one.
Provide a summary including the current price and price change in the last 24 hours for each asset.

When using the get_price and get_price_24hr_change tools, use the symbol as the argument.

Symbol mappings:
%s
Format the output as a clean summary for each asset.`

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "executive_summary",
		Description: "Returns an executive summary of Bitcoin and Ethereum",
	}, s.executiveSummary)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "crypto_summary",
		Description: "Return an executive summary of crypto assets (supports multiple assets separated by commas)",
		Arguments: []*mcp.PromptArgument{{
			Name:        "cryptos",
			Description: "Comma-separated crypto asset names",
			Required:    true,
		}},
	}, s.cryptoSummary)
}

func (s *Server) executiveSummary(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: executiveSummaryPrompt},
		}},
	}, nil
}

func (s *Server) cryptoSummary(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	cryptos := req.Params.Arguments["cryptos"]

	mappings := ""
	for _, e := range symbol.Entries() {
		mappings += fmt.Sprintf("For %s, the symbol is %s.\n", e.Alias, e.Symbol)
	}

	text := fmt.Sprintf(cryptoSummaryTemplate, cryptos, mappings)
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}, nil
}
