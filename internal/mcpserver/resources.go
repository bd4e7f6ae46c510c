package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	symbolMapURI        = "memory://symbol_map"
	activityLogURI      = "memory://activity_log"
	cryptoPriceTemplate = "resource://crypto_price/{symbol}"
	cryptoPricePrefix   = "resource://crypto_price/"
)

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         symbolMapURI,
		Name:        "symbol_map",
		Description: "Alias to trading-symbol mappings in CSV format",
		MIMEType:    "text/csv",
	}, s.readSymbolMap)

	s.server.AddResource(&mcp.Resource{
		URI:         activityLogURI,
		Name:        "activity_log",
		Description: "Recent activity log entries, one per line",
		MIMEType:    "text/plain",
	}, s.readActivityLog)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: cryptoPriceTemplate,
		Name:        "crypto_price",
		Description: "Current price of a crypto asset from Binance",
		MIMEType:    "text/plain",
	}, s.readCryptoPrice)
}

func (s *Server) readSymbolMap(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/csv",
			Text:     s.symbols.CSV(),
		}},
	}, nil
}

func (s *Server) readActivityLog(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     strings.Join(s.activity.Recent(0), "\n"),
		}},
	}, nil
}

func (s *Server) readCryptoPrice(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sym := strings.TrimPrefix(req.Params.URI, cryptoPricePrefix)
	text, err := s.quotes.GetPrice(ctx, sym)
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}
