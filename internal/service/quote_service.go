package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/scaryPonens/binance-mcp/internal/activity"
	"github.com/scaryPonens/binance-mcp/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Resolver normalizes free-form user input to a canonical trading symbol.
type Resolver interface {
	Resolve(input string) string
}

// MarketDataProvider issues the outbound exchange calls.
type MarketDataProvider interface {
	FetchPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error)
	Fetch24hrTicker(ctx context.Context, symbol string) (*domain.TickerStats, error)
	FetchRollingTicker(ctx context.Context, symbol, window string) (*domain.TickerStats, error)
}

// QuoteService composes symbol resolution, the market-data provider, and
// the activity log into the user-facing query operations. Every operation
// outcome, success or failure, produces exactly one activity-log entry;
// provider errors are logged and then propagated to the protocol layer.
type QuoteService struct {
	tracer   trace.Tracer
	resolver Resolver
	provider MarketDataProvider
	activity activity.Log
}

func NewQuoteService(
	tracer trace.Tracer,
	resolver Resolver,
	provider MarketDataProvider,
	activityLog activity.Log,
) *QuoteService {
	return &QuoteService{
		tracer:   tracer,
		resolver: resolver,
		provider: provider,
		activity: activityLog,
	}
}

// GetPrice returns a one-line spot-price summary for a crypto asset.
func (s *QuoteService) GetPrice(ctx context.Context, input string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "quote-service.get-price")
	defer span.End()

	sym := s.resolver.Resolve(input)
	quote, err := s.provider.FetchPrice(ctx, sym)
	if err != nil {
		s.activity.Record(fmt.Sprintf("Error getting price for %s: %s", sym, describe(err)))
		return "", err
	}

	s.activity.Record(fmt.Sprintf("Successfully got the current price for %s: %s", sym, quote.Price))
	return fmt.Sprintf("The current price of %s is %s", sym, quote.Price), nil
}

// Get24hrChange returns the full 24-hour ticker payload for a crypto asset.
func (s *QuoteService) Get24hrChange(ctx context.Context, input string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "quote-service.get-24hr-change")
	defer span.End()

	sym := s.resolver.Resolve(input)
	stats, err := s.provider.Fetch24hrTicker(ctx, sym)
	if err != nil {
		s.activity.Record(fmt.Sprintf("Error getting price change for %s: %s", sym, describe(err)))
		return "", err
	}

	s.activity.Record(fmt.Sprintf("Successfully got the price change for %s: %s (%s%%)",
		sym, stats.PriceChange, stats.PriceChangePercent))
	return string(stats.Raw), nil
}

// GetRollingWindow returns the rolling-window ticker payload for a crypto
// asset. An empty window defaults to 1d; anything else is passed through
// to the exchange unvalidated.
func (s *QuoteService) GetRollingWindow(ctx context.Context, input, window string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "quote-service.get-rolling-window")
	defer span.End()

	if window == "" {
		window = domain.DefaultWindow
	}

	sym := s.resolver.Resolve(input)
	stats, err := s.provider.FetchRollingTicker(ctx, sym, window)
	if err != nil {
		s.activity.Record(fmt.Sprintf("Error getting the price change for %s in the window %s: %s",
			sym, window, describe(err)))
		return "", err
	}

	s.activity.Record(fmt.Sprintf("Successfully got the price change for %s in the window %s: %s (%s%%)",
		sym, window, stats.PriceChange, stats.PriceChangePercent))
	return string(stats.Raw), nil
}

// describe renders an error for the activity log, keeping the upstream
// status and body on the line when they are known.
func describe(err error) string {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) && upstream.Status != 0 {
		return fmt.Sprintf("%d %s", upstream.Status, upstream.Body)
	}
	return err.Error()
}
