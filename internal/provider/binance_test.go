package provider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/scaryPonens/binance-mcp/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestProvider(rt roundTripFunc) *BinanceProvider {
	p := NewBinanceProvider(trace.NewNoopTracerProvider().Tracer("test"), "http://example", time.Second, 60)
	p.client = &http.Client{Transport: rt}
	p.limiter = NewRateLimiter(100, time.Millisecond)
	return p
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestFetchPrice(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/ticker/price" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if got := req.URL.Query().Get("symbol"); got != "BTCUSDT" {
			t.Fatalf("unexpected symbol param: %s", got)
		}
		return jsonResponse(http.StatusOK, `{"symbol":"BTCUSDT","price":"67000.50"}`), nil
	})

	quote, err := p.FetchPrice(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Price != "67000.50" {
		t.Fatalf("expected price 67000.50, got %s", quote.Price)
	}
}

func TestFetchPriceUpstreamError(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"code":-1121,"msg":"Invalid symbol."}`), nil
	})

	_, err := p.FetchPrice(context.Background(), "DOGEUSDT")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusNotFound || upstream.Symbol != "DOGEUSDT" {
		t.Fatalf("unexpected error detail: %+v", upstream)
	}
	if upstream.Body == "" {
		t.Fatalf("expected body to be carried on the error")
	}
}

func TestFetchPriceTransportError(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := p.FetchPrice(context.Background(), "BTCUSDT")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != 0 {
		t.Fatalf("transport failure should carry no status, got %d", upstream.Status)
	}
}

func TestFetchPriceMalformedBody(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>not json</html>"), nil
	})

	_, err := p.FetchPrice(context.Background(), "BTCUSDT")
	var decode *domain.DecodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetch24hrTicker(t *testing.T) {
	t.Parallel()

	const payload = `{"symbol":"ETHUSDT","priceChange":"-50.10","priceChangePercent":"-1.52","volume":"12345"}`
	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/ticker/24hr" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, payload), nil
	})

	stats, err := p.Fetch24hrTicker(context.Background(), "ETHUSDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PriceChange != "-50.10" || stats.PriceChangePercent != "-1.52" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if string(stats.Raw) != payload {
		t.Fatalf("expected raw payload passthrough, got %s", stats.Raw)
	}
}

func TestFetchRollingTickerDefaultWindow(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/ticker" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if got := req.URL.Query().Get("windowSize"); got != "1d" {
			t.Fatalf("expected default window 1d, got %q", got)
		}
		return jsonResponse(http.StatusOK, `{"symbol":"ETHUSDT","priceChange":"10","priceChangePercent":"0.5"}`), nil
	})

	if _, err := p.FetchRollingTicker(context.Background(), "ETHUSDT", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchRollingTickerPassesWindowThrough(t *testing.T) {
	t.Parallel()

	// Out-of-range windows are not rejected locally; upstream owns validity.
	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		if got := req.URL.Query().Get("windowSize"); got != "99d" {
			t.Fatalf("expected window 99d passed through, got %q", got)
		}
		return jsonResponse(http.StatusBadRequest, `{"code":-1171,"msg":"Bad windowSize."}`), nil
	})

	_, err := p.FetchRollingTicker(context.Background(), "ETHUSDT", "99d")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", upstream.Status)
	}
}

func TestRateLimiterWait(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(2, 10*time.Millisecond)
	ctx := context.Background()
	if err := limiter.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := limiter.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bucket is empty; a cancelled context must abort the wait.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := limiter.Wait(cancelled); err == nil {
		t.Fatalf("expected context error on empty bucket")
	}

	// Tokens come back after the refill interval.
	time.Sleep(25 * time.Millisecond)
	if err := limiter.Wait(ctx); err != nil {
		t.Fatalf("expected token after refill, got %v", err)
	}
}
