package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"veracity/internal/evidence/providers"
	"veracity/pkg/platform/sentinel"
)

// ProviderID names this upstream in errors, logs and metrics.
const ProviderID = "google_factcheck"

const maxResponseBytes = 4 << 20

// Config holds the client's connection settings.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	// RPS paces outbound calls; zero or negative disables pacing.
	RPS   float64
	Retry providers.RetryPolicy
}

// Client queries the Google Fact Check Tools claims:search endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      providers.RetryPolicy
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// New builds a fact-check client.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retry:      cfg.Retry,
	}
	if cfg.RPS > 0 {
		burst := int(cfg.RPS)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether a credential is present. Without one the
// upstream is never contacted.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Search looks up query and returns the selected result, or ok=false when the
// upstream knows no matching claims.
func (c *Client) Search(ctx context.Context, query string) (result Result, ok bool, err error) {
	if !c.Configured() {
		return Result{}, false, sentinel.ErrNotConfigured
	}

	err = c.retry.Do(ctx, func(ctx context.Context) error {
		claims, err := c.search(ctx, query)
		if err != nil {
			return err
		}
		result, ok = SelectResult(claims)
		return nil
	})
	if err != nil {
		return Result{}, false, err
	}
	return result, ok, nil
}

func (c *Client) search(ctx context.Context, query string) ([]Claim, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, providers.FromTransport(ProviderID, err)
		}
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorInternal, ProviderID, "invalid endpoint", err)
	}
	params := endpoint.Query()
	params.Set("query", query)
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorInternal, ProviderID, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.FromTransport(ProviderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, providers.FromStatus(ProviderID, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, fmt.Sprintf("decode response: %v", err), err)
	}
	return payload.Claims, nil
}
