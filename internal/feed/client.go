package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultUserAgent = "trendwatch/1.0 (+feed ingestion)"
	maxBodyBytes     = 10 << 20
)

type ClientConfig struct {
	UserAgent      string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client downloads feeds and converts item bodies to plain text.
type Client struct {
	httpClient     *http.Client
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// statusError is a non-2xx response.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("failed to fetch feed: %d %s", e.code, http.StatusText(e.code))
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		userAgent:      ua,
		maxAttempts:    attempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "feed_client"),
	}
}

// FetchFeed GETs url with userAgent (or the default one) and parses the body.
// A non-2xx status is an error. Transport errors and 5xx/429 responses are
// retried with exponential backoff; the last attempt's error is returned.
func (c *Client) FetchFeed(ctx context.Context, url, userAgent string) (*Feed, error) {
	if userAgent == "" {
		userAgent = c.userAgent
	}

	var f *Feed
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		f, err = c.fetch(ctx, url, userAgent)
		if err == nil || !retryable(err) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("feed request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return f, err
}

func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	var te *transportError
	return errors.As(err, &te)
}

// transportError is a failure before any response was received.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "execute request: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.maxBackoff > 0 && backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) fetch(ctx context.Context, url, userAgent string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("feed response",
		"url", url,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{code: resp.StatusCode}
	}

	parsed, err := Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	for i := range parsed.Posts {
		parsed.Posts[i].Content = HTMLToText(parsed.Posts[i].Content)
	}
	return parsed, nil
}
