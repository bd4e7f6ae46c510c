// Package mcpserver wires the quote service, symbol table, and activity log
// into an MCP server: three market-data tools, a log read-back tool, two
// static resources, a parameterized price resource, and two prompts.
package mcpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/scaryPonens/binance-mcp/internal/activity"
	"github.com/scaryPonens/binance-mcp/internal/service"
	"github.com/scaryPonens/binance-mcp/internal/symbol"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "binance-mcp"

type Server struct {
	server   *mcp.Server
	quotes   *service.QuoteService
	symbols  *symbol.Store
	activity activity.Log
}

func New(quotes *service.QuoteService, symbols *symbol.Store, activityLog activity.Log) *Server {
	s := &Server{
		server:   mcp.NewServer(&mcp.Implementation{Name: serverName, Version: "1.0.0"}, nil),
		quotes:   quotes,
		symbols:  symbols,
		activity: activityLog,
	}
	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

// Run serves the MCP protocol over stdio until ctx is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable HTTP transport for mounting on a
// router.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

type getPriceInput struct {
	Symbol string `json:"symbol" jsonschema:"the name or trading symbol of the crypto asset"`
}

type rollingWindowInput struct {
	Symbol string `json:"symbol" jsonschema:"the name or trading symbol of the crypto asset"`
	Window string `json:"window,omitempty" jsonschema:"the window size: 1m-59m, 1h-23h or 1d-7d (default 1d)"`
}

type recentLogsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of log entries to return, 1-100 (default 50)"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_price",
		Description: "Get the current price of a crypto asset from Binance",
	}, s.getPrice)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_price_24hr_change",
		Description: "Get the 24 hour price change of a crypto asset from Binance",
	}, s.getPrice24hrChange)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_rolling_windows_price",
		Description: "Get the rolling windows price change of a crypto asset from Binance",
	}, s.getRollingWindowsPrice)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recent_logs",
		Description: "Get recent activity log entries (limit: 1-100)",
	}, s.getRecentLogs)
}

func (s *Server) getPrice(ctx context.Context, req *mcp.CallToolRequest, in getPriceInput) (*mcp.CallToolResult, any, error) {
	text, err := s.quotes.GetPrice(ctx, in.Symbol)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (s *Server) getPrice24hrChange(ctx context.Context, req *mcp.CallToolRequest, in getPriceInput) (*mcp.CallToolResult, any, error) {
	payload, err := s.quotes.Get24hrChange(ctx, in.Symbol)
	if err != nil {
		return nil, nil, err
	}
	return textResult(payload), nil, nil
}

func (s *Server) getRollingWindowsPrice(ctx context.Context, req *mcp.CallToolRequest, in rollingWindowInput) (*mcp.CallToolResult, any, error) {
	payload, err := s.quotes.GetRollingWindow(ctx, in.Symbol, in.Window)
	if err != nil {
		return nil, nil, err
	}
	return textResult(payload), nil, nil
}

func (s *Server) getRecentLogs(ctx context.Context, req *mcp.CallToolRequest, in recentLogsInput) (*mcp.CallToolResult, any, error) {
	limit := clampLimit(in.Limit)
	return textResult(strings.Join(s.activity.Recent(limit), "\n")), nil, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
