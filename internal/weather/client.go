// Package weather fetches the info panel weather line from a wttr.in-style
// endpoint returning plain text like "+14°C Partly cloudy".
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Fallback is shown when the fetch fails for any reason. Callers apply it
// themselves; Fetch only reports the error.
const Fallback = "Weather unavailable"

// ErrBadStatus marks a non-200 response, as opposed to a transport error.
var ErrBadStatus = errors.New("unexpected status")

// Client performs a single plain-text GET against the weather endpoint.
// No retry and no backoff; one shot per call.
type Client struct {
	url        string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient builds a client for the given endpoint. The timeout bounds the
// whole request so a hung endpoint cannot stall startup.
func NewClient(url string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch returns the trimmed response body on HTTP 200. Non-200 responses
// yield an error wrapping ErrBadStatus; transport failures are returned
// as-is wrapped with context.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("create weather request: %w", err)
	}

	c.logger.Debug().Str("url", c.url).Msg("fetching weather")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read weather response: %w", err)
	}

	text := strings.TrimSpace(string(body))
	c.logger.Debug().Str("weather", text).Msg("weather fetched")
	return text, nil
}
