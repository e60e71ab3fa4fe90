// Package forecastapi fetches and validates payloads from the external
// gold forecast service.
package forecastapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/lox/goldview/internal/httputil"
	"github.com/lox/goldview/internal/metrics"
	"github.com/lox/goldview/internal/models"
	"github.com/lox/goldview/internal/series"
)

const (
	DefaultURL  = "http://localhost:5001/forecast"
	maxBodySize = 8 << 20
)

// Fetcher retrieves one forecast payload.
type Fetcher interface {
	Fetch(ctx context.Context) (*models.Payload, error)
}

// Client performs exactly one GET per Fetch. It does not retry or cache.
type Client struct {
	httpClient *http.Client
	url        string
	clock      series.Clock
}

func NewClient(url string, timeout time.Duration, clock series.Clock) *Client {
	if url == "" {
		url = DefaultURL
	}
	if clock == nil {
		clock = series.SystemClock
	}
	return &Client{
		httpClient: httputil.NewClient(timeout),
		url:        url,
		clock:      clock,
	}
}

// URL returns the forecast endpoint this client fetches.
func (c *Client) URL() string {
	return c.url
}

// Fetch requests the forecast payload. Transport failures and non-2xx
// statuses return *NetworkError; schema violations return *ShapeError.
func (c *Client) Fetch(ctx context.Context) (*models.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ForecastFetchLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ForecastFetchesTotal.WithLabelValues("transport_error").Inc()
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	metrics.ForecastFetchesTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &NetworkError{
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read body: %w", err)}
	}

	payload, err := Decode(body, c.clock.Now())
	if err != nil {
		metrics.ShapeErrorsTotal.Inc()
		return nil, err
	}
	return payload, nil
}
