package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/metrics"
)

// BreakerConfig controls when a collaborator's circuit opens.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the circuit.
	// Zero disables tripping.
	MaxFailures uint32
	// OpenTimeout is how long the circuit stays open before a probe is let through.
	OpenTimeout time.Duration
}

// Client performs single-attempt JSON GETs against one collaborator service.
type Client struct {
	service string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewClient creates a Client for the named collaborator.
func NewClient(service string, httpClient *http.Client, breaker BreakerConfig, logger *slog.Logger, m *metrics.Metrics) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        service,
		MaxRequests: 1,
		Timeout:     breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return breaker.MaxFailures > 0 && counts.ConsecutiveFailures >= breaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "service", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		service: service,
		http:    httpClient,
		circuit: cb,
		logger:  logger,
		metrics: m,
	}
}

// Service returns the collaborator name used in errors and metrics.
func (c *Client) Service() string {
	return c.service
}

// GetJSON issues exactly one GET to rawURL and decodes a 2xx body into out.
// Every failure is returned as *Error.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	if c.http == nil {
		return &Error{Service: c.service, Err: errNoHTTPClient}
	}

	start := time.Now()
	_, err := c.circuit.Execute(func() (interface{}, error) {
		return nil, c.do(ctx, rawURL, out)
	})
	c.metrics.UpstreamDuration.WithLabelValues(c.service).Observe(time.Since(start).Seconds())

	if err == nil {
		c.metrics.UpstreamRequests.WithLabelValues(c.service, "success").Inc()
		return nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.metrics.UpstreamRequests.WithLabelValues(c.service, "rejected").Inc()
		return &Error{Service: c.service, Err: fmt.Errorf("%w: %v", ErrCircuitOpen, err)}
	}

	c.metrics.UpstreamRequests.WithLabelValues(c.service, "error").Inc()
	var upErr *Error
	if errors.As(err, &upErr) {
		return upErr
	}
	return &Error{Service: c.service, Err: err}
}

func (c *Client) do(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{Service: c.service, Err: fmt.Errorf("create request: %w", err)}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Service: c.service, Err: fmt.Errorf("request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("upstream returned non-success status",
			"service", c.service, "status", resp.StatusCode, "request_id", reqID, "body", string(body))
		return &Error{Service: c.service, StatusCode: resp.StatusCode, Err: ErrStatus}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Service: c.service, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedBody, err)}
	}
	return nil
}
