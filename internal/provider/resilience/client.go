// Package resilience wraps outbound dataset and weather provider calls with
// a circuit breaker, timeouts, and exponential retry. Adapters that get an
// upstream URL configured go through here; on failure they fall back to the
// bundled datasets.
package resilience

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

var (
	// ErrCircuitOpen is returned when the circuit breaker rejects a call.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrUpstreamStatus is returned when the upstream answers with a
	// non-2xx status after retries are exhausted.
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")
)

// ClientConfig holds configuration for the resilient HTTP client.
type ClientConfig struct {
	// Name identifies this client for circuit breaker naming and health.
	Name string

	// Timeout is the per-request timeout. Default: 10 seconds.
	Timeout time.Duration

	// MaxRetries is the number of retry attempts after the first call.
	// Default: 3.
	MaxRetries uint64

	// InitialInterval is the first retry backoff interval. Default: 100ms.
	InitialInterval time.Duration

	// MaxInterval caps the retry backoff interval. Default: 5 seconds.
	MaxInterval time.Duration

	// OpenTimeout is how long the breaker stays open before probing.
	// Default: 60 seconds.
	OpenTimeout time.Duration
}

func (c *ClientConfig) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 60 * time.Second
	}
}

// Client is an HTTP client with circuit breaker protection and retries.
// Network errors and 5xx responses count against the breaker and are
// retried with exponential backoff; 4xx responses fail immediately.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	config     ClientConfig
}

// NewClient creates a resilient HTTP client.
func NewClient(cfg ClientConfig) *Client {
	cfg.applyDefaults()

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		config:     cfg,
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code >= 500
}

// Get fetches url and returns the response body. The call is retried on
// network errors and 5xx responses; an open breaker fails fast with
// ErrCircuitOpen.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.InitialInterval
	bo.MaxInterval = c.config.MaxInterval
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.config.MaxRetries), ctx)

	var body []byte

	operation := func() error {
		result, err := c.breaker.Execute(func() ([]byte, error) {
			return c.fetch(ctx, url, header)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrCircuitOpen)
			}
			var se *statusError
			if errors.As(err, &se) && !se.retryable() {
				return backoff.Permanent(fmt.Errorf("%w: %d", ErrUpstreamStatus, se.code))
			}
			return err
		}

		body = result
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, se.code)
		}
		return nil, err
	}

	return body, nil
}

// GetJSON fetches url and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header, out any) error {
	body, err := c.Get(ctx, url, header)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", c.config.Name, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &statusError{code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// BreakerState returns the current circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

// BreakerCounts returns the current circuit breaker counts.
func (c *Client) BreakerCounts() gobreaker.Counts {
	return c.breaker.Counts()
}
