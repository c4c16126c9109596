// Package dblp talks to the DBLP publication search API: a rate-limited
// JSON client, conversion of search hits into entries, bulk search with
// resume support, and journal-mapping discovery.
package dblp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public publication search endpoint.
const DefaultBaseURL = "https://dblp.org/search/publ/api"

// Config configures the search client.
type Config struct {
	// BaseURL is the search endpoint.
	BaseURL string

	// MaxResults is the number of hits requested per query.
	MaxResults int

	// RateLimit is the sustained request rate per second.
	RateLimit float64

	// MaxRetries is the number of attempts per query.
	MaxRetries int

	// RateLimitDelay is the backoff after the first 429 of a query.
	// Subsequent 429s honor the Retry-After header.
	RateLimitDelay time.Duration

	// RetryDelay is the backoff after a 5xx response, also the fallback
	// when a 429 carries no usable Retry-After.
	RetryDelay time.Duration

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string
}

// Client queries the search API with rate limiting and retries. It is
// safe for concurrent use.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	config  Config
}

// NewClient creates a search client, filling config defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 10
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 1
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 9
	}
	if cfg.RateLimitDelay == 0 {
		cfg.RateLimitDelay = 60 * time.Second
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "bibtidy/0.1 (+https://github.com/unibib/bibtidy)"
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		config:  cfg,
	}
}

// RateLimitError reports that the server kept answering 429 until the
// retry budget ran out.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, server asked to retry after %s", e.RetryAfter)
}

var queryNoise = regexp.MustCompile(`[^ 0-9a-zA-Z-]+`)

// Query builds the search string for a publication: the lowercased
// title stripped to words, digits, and dashes, followed by the year.
func Query(title, year string) string {
	return queryNoise.ReplaceAllString(strings.ToLower(title), "") + " " + year
}

// Search runs one publication query and returns the decoded hits. 429
// responses back off RateLimitDelay first and the Retry-After header
// after that; 5xx responses back off RetryDelay. All waits respect the
// context.
func (c *Client) Search(ctx context.Context, query string) ([]Hit, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("h", strconv.Itoa(c.config.MaxResults))
	endpoint := c.config.BaseURL + "?" + params.Encode()

	fastRetry := true
	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.config.UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			hits, err := decodeHits(resp.Body)
			resp.Body.Close()
			return hits, err

		case resp.StatusCode == http.StatusTooManyRequests:
			delay := c.config.RateLimitDelay
			if !fastRetry {
				delay = c.retryAfter(resp)
			}
			fastRetry = false
			drain(resp)
			lastErr = &RateLimitError{RetryAfter: delay}
			slog.Warn("rate limited, backing off", "delay", delay)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}

		case resp.StatusCode >= 500:
			drain(resp)
			lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
			if err := sleep(ctx, c.config.RetryDelay); err != nil {
				return nil, err
			}

		default:
			code := resp.StatusCode
			drain(resp)
			return nil, fmt.Errorf("search returned status %d", code)
		}
	}
	return nil, fmt.Errorf("max retries exhausted after %d attempts: %w", c.config.MaxRetries, lastErr)
}

// retryAfter reads the Retry-After header, in seconds or as an HTTP
// date, falling back to the configured retry delay.
func (c *Client) retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if seconds, err := strconv.ParseInt(header, 10, 64); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}
	return c.config.RetryDelay
}

type searchResponse struct {
	Result struct {
		Hits struct {
			Hit []struct {
				Info Hit `json:"info"`
			} `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

func decodeHits(r io.Reader) ([]Hit, error) {
	var payload searchResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	hits := make([]Hit, 0, len(payload.Result.Hits.Hit))
	for _, h := range payload.Result.Hits.Hit {
		hits = append(hits, h.Info)
	}
	return hits, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
