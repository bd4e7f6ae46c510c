package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/scaryPonens/binance-mcp/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const binanceBaseURL = "https://api.binance.us/api/v3"

// BinanceProvider fetches spot prices and ticker statistics from the
// Binance.US public REST API. No auth, GET only, single attempt per call.
type BinanceProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewBinanceProvider creates a provider with the given per-request timeout
// and an outbound rate limit of ratePerMin calls per minute. An empty
// baseURL selects the Binance.US production API.
func NewBinanceProvider(tracer trace.Tracer, baseURL string, timeout time.Duration, ratePerMin int) *BinanceProvider {
	if baseURL == "" {
		baseURL = binanceBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if ratePerMin <= 0 {
		ratePerMin = 60
	}
	return &BinanceProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(ratePerMin, time.Minute/time.Duration(ratePerMin)),
	}
}

// FetchPrice returns the current spot price for a canonical symbol.
func (p *BinanceProvider) FetchPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error) {
	ctx, span := p.tracer.Start(ctx, "binance.fetch-price")
	defer span.End()

	body, err := p.doRequest(ctx, symbol, "/ticker/price", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}

	var quote domain.PriceQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, &domain.DecodeError{Symbol: symbol, Cause: err}
	}
	return &quote, nil
}

// Fetch24hrTicker returns 24-hour statistics for a canonical symbol. The
// full upstream payload rides along in Raw for verbatim relay.
func (p *BinanceProvider) Fetch24hrTicker(ctx context.Context, symbol string) (*domain.TickerStats, error) {
	ctx, span := p.tracer.Start(ctx, "binance.fetch-24hr-ticker")
	defer span.End()

	body, err := p.doRequest(ctx, symbol, "/ticker/24hr", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}
	return decodeTicker(symbol, body)
}

// FetchRollingTicker returns windowed statistics for a canonical symbol.
// Window legality (1m-59m, 1h-23h, 1d-7d) is enforced upstream; the value
// is passed through unchanged.
func (p *BinanceProvider) FetchRollingTicker(ctx context.Context, symbol, window string) (*domain.TickerStats, error) {
	ctx, span := p.tracer.Start(ctx, "binance.fetch-rolling-ticker")
	defer span.End()

	if window == "" {
		window = domain.DefaultWindow
	}
	body, err := p.doRequest(ctx, symbol, "/ticker", url.Values{"symbol": {symbol}, "windowSize": {window}})
	if err != nil {
		return nil, err
	}
	return decodeTicker(symbol, body)
}

func decodeTicker(symbol string, body []byte) (*domain.TickerStats, error) {
	var stats domain.TickerStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, &domain.DecodeError{Symbol: symbol, Cause: err}
	}
	stats.Raw = body
	return &stats, nil
}

func (p *BinanceProvider) doRequest(ctx context.Context, symbol, path string, query url.Values) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Symbol: symbol, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &domain.UpstreamError{Symbol: symbol, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Symbol: symbol, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Symbol: symbol, Status: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{Symbol: symbol, Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
