package domain

import "encoding/json"

// SymbolEntry is one row of the persisted symbol table: a lowercase
// human-friendly alias mapped to the canonical exchange trading pair.
// Aliases are unique; several aliases may map to the same symbol.
type SymbolEntry struct {
	Alias  string `json:"crypto_name"`
	Symbol string `json:"symbol"`
}

// PriceQuote is the spot-price response from the upstream exchange.
type PriceQuote struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// TickerStats carries the headline fields of a 24hr or rolling-window
// ticker response plus the full upstream payload for verbatim relay.
type TickerStats struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`

	Raw json.RawMessage `json:"-"`
}

// DefaultWindow is the rolling-window size used when the caller omits one.
const DefaultWindow = "1d"
