// Package tavily implements the enrich.SearchProvider contract over the
// Tavily search REST API.
package tavily

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Tavily search client.
type Config struct {
	APIKey      string        // if empty, falls back to env TAVILY_API_KEY
	BaseURL     string        // default https://api.tavily.com
	MaxResults  int           // results per query, default 2
	SearchDepth string        // default "advanced"
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewClient builds a Tavily client with config defaults filled in. Unlike
// the LLM client, a missing API key fails here: enrichment treats it as a
// configuration error before any search runs.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("TAVILY_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("tavily: missing API key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.tavily.com"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 2
	}
	if cfg.SearchDepth == "" {
		cfg.SearchDepth = "advanced"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}
