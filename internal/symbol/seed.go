package symbol

import "github.com/scaryPonens/binance-mcp/internal/domain"

// defaultEntries is the built-in alias table written to disk on first run.
// Order is preserved in the seeded CSV.
var defaultEntries = []domain.SymbolEntry{
	{Alias: "btc", Symbol: "BTCUSDT"},
	{Alias: "bitcoin", Symbol: "BTCUSDT"},
	{Alias: "eth", Symbol: "ETHUSDT"},
	{Alias: "ethereum", Symbol: "ETHUSDT"},
	{Alias: "sol", Symbol: "SOLUSDT"},
	{Alias: "solana", Symbol: "SOLUSDT"},
	{Alias: "doge", Symbol: "DOGEUSDT"},
	{Alias: "shiba", Symbol: "SHIBUSDT"},
	{Alias: "xrp", Symbol: "XRPUSDT"},
	{Alias: "ada", Symbol: "ADAUSDT"},
	{Alias: "dot", Symbol: "DOTUSDT"},
	{Alias: "link", Symbol: "LINKUSDT"},
	{Alias: "ltc", Symbol: "LTCUSDT"},
	{Alias: "xlm", Symbol: "XLMUSDT"},
	{Alias: "eos", Symbol: "EOSUSDT"},
	{Alias: "bnb", Symbol: "BNBUSDT"},
	{Alias: "matic", Symbol: "MATICUSDT"},
	{Alias: "avax", Symbol: "AVAXUSDT"},
	{Alias: "algo", Symbol: "ALGOUSDT"},
	{Alias: "ftt", Symbol: "FTTUSDT"},
	{Alias: "mana", Symbol: "MANAUSDT"},
	{Alias: "uni", Symbol: "UNIUSDT"},
	{Alias: "xmr", Symbol: "XMRUSDT"},
	{Alias: "xem", Symbol: "XEMUSDT"},
}
