package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scaryPonens/binance-mcp/internal/activity"
	"github.com/scaryPonens/binance-mcp/internal/config"
	"github.com/scaryPonens/binance-mcp/internal/handler"
	"github.com/scaryPonens/binance-mcp/internal/mcpserver"
	"github.com/scaryPonens/binance-mcp/internal/provider"
	"github.com/scaryPonens/binance-mcp/internal/service"
	"github.com/scaryPonens/binance-mcp/internal/symbol"
	"github.com/scaryPonens/binance-mcp/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

var (
	loadEnvFunc     = godotenv.Load
	loadConfigFunc  = config.Load
	initTracerFunc  = tracing.InitTracer
	newProviderFunc = func(tracer trace.Tracer, baseURL string, timeout time.Duration, ratePerMin int) service.MarketDataProvider {
		return provider.NewBinanceProvider(tracer, baseURL, timeout, ratePerMin)
	}
	runStdioFunc           = func(s *mcpserver.Server, ctx context.Context) error { return s.Run(ctx) }
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	var activityLog activity.Log
	if cfg.ActivityLogBackend == "file" {
		activityLog = activity.NewFileLog(cfg.ActivityLogPath)
	} else {
		activityLog = activity.NewMemoryLog(cfg.ActivityLogCapacity)
	}

	symbols := symbol.NewStore(cfg.SymbolTablePath, activityLog)
	if err := symbols.Seed(); err != nil {
		log.Printf("Warning: could not seed symbol table: %v", err)
	}

	binance := newProviderFunc(
		tracer,
		cfg.BinanceBaseURL,
		time.Duration(cfg.MCPRequestTimeoutSecs)*time.Second,
		cfg.MCPRateLimitPerMin,
	)
	quotes := service.NewQuoteService(tracer, symbols, binance, activityLog)
	srv := mcpserver.New(quotes, symbols, activityLog)

	if cfg.MCPTransport == "stdio" {
		log.Println("Starting MCP server on stdio...")
		if err := runStdioFunc(srv, ctx); err != nil {
			log.Fatalf("mcp server error: %v", err)
		}
		return
	}

	r := newRouterFunc()
	r.Use(otelgin.Middleware("binance-mcp"))

	h := handler.New(tracer, srv.HTTPHandler())
	h.RegisterRoutes(r, cfg.MCPAuthToken)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.MCPHTTPBind, cfg.MCPHTTPPort),
		Handler: r,
	}

	go func() {
		log.Printf("Starting MCP server on http://%s/mcp", httpSrv.Addr)
		if err := startHTTPServerFunc(httpSrv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(httpSrv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
