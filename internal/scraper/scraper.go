// Package scraper provides the external ingestion collaborators: HTTP
// retrieval with retry, GOV.UK HTML table extraction and FCDO spreadsheet
// decoding. It produces raw records only; all interpretation happens in
// the normalizer.
package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bfpogen/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// ErrAllURLsFailed indicates every URL for a source was exhausted.
var ErrAllURLsFailed = errors.New("all source URLs failed")

const userAgent = "bfpogen/1.0 (+https://www.gov.uk/bfpo)"

// Scraper handles source retrieval with config-driven retry logic.
type Scraper struct {
	client      *http.Client
	retryPolicy *config.RetryPolicy
}

// NewScraper creates a new scraper instance with default retry policy.
func NewScraper() *Scraper {
	return NewScraperWithConfig(&config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    500,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        30,
	})
}

// NewScraperWithConfig creates a new scraper with a custom retry policy.
func NewScraperWithConfig(retryPolicy *config.RetryPolicy) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: retryPolicy.GetTimeout(),
		},
		retryPolicy: retryPolicy,
	}
}

// Fetch retrieves one URL with retry and exponential backoff.
func (s *Scraper) Fetch(url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= s.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if delay := s.retryPolicy.GetRetryDelay(attempt); delay > 0 {
				time.Sleep(delay)
			}
		}

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/vnd.oasis.opendocument.spreadsheet,*/*;q=0.8")

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, s.retryPolicy.MaxAttempts, err)

			continue
		}

		body, readErr := io.ReadAll(resp.Body)

		if closeErr := resp.Body.Close(); closeErr != nil && readErr == nil {
			readErr = closeErr
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			if !isRetryableStatus(resp.StatusCode) {
				return nil, lastErr
			}

			continue
		}

		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)

			continue
		}

		return body, nil
	}

	return nil, lastErr
}

// FetchSource materializes a configured source: a local file is read
// directly, a remote source tries the primary URL then any backups.
func (s *Scraper) FetchSource(src *config.SourceConfig) ([]byte, error) {
	if src.IsLocalFile() {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read local file %s: %w", src.File, err)
		}

		return data, nil
	}

	var lastErr error

	for _, url := range src.AllURLs() {
		data, err := s.Fetch(url)
		if err == nil {
			return data, nil
		}

		lastErr = err
	}

	if lastErr == nil {
		lastErr = ErrAllURLsFailed
	}

	return nil, fmt.Errorf("%w: %v", ErrAllURLsFailed, lastErr)
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}
