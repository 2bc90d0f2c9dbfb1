package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// fetchTimeout bounds a single download attempt.
const fetchTimeout = 60 * time.Second

// Get downloads the given URL with retries and returns the response body.
// Server-side failures (5xx) and transport errors are retried with
// exponential backoff; client errors (4xx) fail immediately.
func Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	err := RetryWithBackoff(ctx, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return &RetryableError{Err: err}
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= 500 {
			return &RetryableError{Err: fmt.Errorf("GET %s: status %d", url, resp.StatusCode)}
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return &RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
