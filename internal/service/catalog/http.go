package catalog

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kapu/undercurrent/internal/constants"
	"github.com/kapu/undercurrent/pkg/errors"
)

// NewHTTPClient returns the client shared by catalog lookups. The timeout
// bounds each call; lookups are never retried.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = constants.CatalogConfig.DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func getJSON(ctx context.Context, httpClient *http.Client, reqURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.NewAPIError("failed to create request", 500, nil).WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, which may carry an API key
		var urlErr *url.Error
		if stderrors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return errors.NewAPIError("request failed", 503, map[string]any{
			"host": req.URL.Host,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.NewAPIError(fmt.Sprintf("unexpected status: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"host": req.URL.Host,
		})
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.NewAPIError("failed to decode response", resp.StatusCode, map[string]any{
			"host": req.URL.Host,
		}).WithCause(err)
	}

	return nil
}
