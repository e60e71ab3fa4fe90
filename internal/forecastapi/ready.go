package forecastapi

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lox/goldview/internal/httputil"
)

// IndexURL returns the backend's index route for a forecast URL,
// e.g. http://localhost:5001/forecast -> http://localhost:5001/.
func IndexURL(forecastURL string) (string, error) {
	u, err := url.Parse(forecastURL)
	if err != nil {
		return "", fmt.Errorf("parse forecast url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parse forecast url: %q is not absolute", forecastURL)
	}
	u.Path = "/"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// CheckReady makes one request to the backend index route.
func CheckReady(ctx context.Context, client *http.Client, indexURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", http.StatusText(resp.StatusCode))}
	}
	return nil
}

// WaitReady polls the backend index route with exponential backoff until it
// answers 2xx, maxWait elapses or ctx is done. The forecast endpoint itself
// is never retried; this only gates startup on the backend being up.
func WaitReady(ctx context.Context, client *http.Client, indexURL string, maxWait time.Duration) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := CheckReady(ctx, client, indexURL)
		if err != nil {
			log.Printf("forecastapi: backend not ready (attempt %d): %v", attempt, err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = maxWait
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return fmt.Errorf("wait for backend: %w", err)
	}
	return nil
}
