// Package inference wraps an OpenAI-compatible chat-completions API
// to turn free-text recipient descriptions into catalog tag selections.
package inference

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client calls the external model provider.
// The provider is the only third party outside this system's control, so
// every call carries a timeout and calls are rate limited client-side.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	apiKey      string
	model       string
	maxTags     int
	logger      *slog.Logger
}

// Config holds client construction options.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	MaxTags int
}

// NewClient creates a new inference client.
// Rate limited to 1 request per second with a small burst; completion
// providers throttle aggressively and a recommendation request only ever
// makes one call.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	maxTags := cfg.MaxTags
	if maxTags < 2 {
		maxTags = 3
	}
	if maxTags > 5 {
		maxTags = 5
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 4),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTags:     maxTags,
		logger:      logger,
	}
}

// Close releases resources. Currently a no-op but included for interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}
