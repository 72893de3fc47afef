// Package client holds the HTTP clients for the sibling platform services
// this service pulls counters from. Every method applies the same fail-soft
// contract: a network failure, non-2xx status, or undecodable body is logged
// and resolved to a documented zero default. Callers never receive an error
// from this package.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/linguaverse/statistics-service/internal/metrics"
)

// DefaultTimeout bounds every downstream call so a slow sibling service
// cannot stall a composite report indefinitely.
const DefaultTimeout = 5 * time.Second

type countResponse struct {
	Count int `json:"count"`
}

// getJSON issues a GET and decodes the JSON body into out.
func getJSON(ctx context.Context, httpClient *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func observeCall(target, endpoint string, err error) {
	metrics.RemoteCallsTotal.WithLabelValues(target, endpoint).Inc()
	if err != nil {
		metrics.RemoteCallFailures.WithLabelValues(target, endpoint).Inc()
	}
}
