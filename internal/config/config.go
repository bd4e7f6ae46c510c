package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	MCPTransport          string
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPAuthToken          string
	MCPRequestTimeoutSecs int
	MCPRateLimitPerMin    int

	BinanceBaseURL string

	ActivityLogBackend  string
	ActivityLogCapacity int
	ActivityLogPath     string
	SymbolTablePath     string
}

func Load() *Config {
	cfg := &Config{
		MCPAuthToken:   os.Getenv("MCP_AUTH_TOKEN"),
		BinanceBaseURL: strings.TrimSpace(os.Getenv("BINANCE_BASE_URL")),
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = 8897
	if v := strings.TrimSpace(os.Getenv("MCP_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPHTTPPort = n
		}
	}

	cfg.MCPRequestTimeoutSecs = 10
	if v := strings.TrimSpace(os.Getenv("MCP_REQUEST_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRequestTimeoutSecs = n
		}
	}

	cfg.MCPRateLimitPerMin = 60
	if v := strings.TrimSpace(os.Getenv("MCP_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRateLimitPerMin = n
		}
	}

	cfg.ActivityLogBackend = strings.ToLower(strings.TrimSpace(os.Getenv("ACTIVITY_LOG_BACKEND")))
	if cfg.ActivityLogBackend == "" {
		cfg.ActivityLogBackend = "memory"
	}
	if cfg.ActivityLogBackend != "memory" && cfg.ActivityLogBackend != "file" {
		log.Printf("Warning: unsupported ACTIVITY_LOG_BACKEND=%q, defaulting to memory", cfg.ActivityLogBackend)
		cfg.ActivityLogBackend = "memory"
	}

	cfg.ActivityLogCapacity = 1000
	if v := strings.TrimSpace(os.Getenv("ACTIVITY_LOG_CAPACITY")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ActivityLogCapacity = n
		}
	}

	cfg.ActivityLogPath = strings.TrimSpace(os.Getenv("ACTIVITY_LOG_PATH"))
	if cfg.ActivityLogPath == "" {
		cfg.ActivityLogPath = "activity.log"
	}

	cfg.SymbolTablePath = strings.TrimSpace(os.Getenv("SYMBOL_TABLE_PATH"))
	if cfg.SymbolTablePath == "" {
		cfg.SymbolTablePath = "symbol_map.csv"
	}

	return cfg
}
