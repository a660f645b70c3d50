package fontload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"
)

// maxLoggedBody caps the body excerpt written for failed responses.
const maxLoggedBody = 512

// Client fetches font payloads. It never retries.
type Client struct {
	rhc *retryablehttp.Client
}

// NewClient returns a client on top of hc, or on a fresh http.Client when hc is nil.
func NewClient(hc *http.Client) *Client {
	rhc := retryablehttp.NewClient()
	if hc != nil {
		rhc.HTTPClient = hc
	}
	rhc.RetryMax = 0
	// Failures reach the caller as errors; the hook covers responses.
	rhc.Logger = nil
	rhc.ResponseLogHook = logResponse
	return &Client{rhc: rhc}
}

// Fetch downloads url and returns the body of a 200 response.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch font: %w", err)
	}
	resp, err := c.rhc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch font: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch font %s: %s", url, statusText(resp))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", url, err)
	}
	slog.Info("Font fetched", "url", url, "size", humanize.Bytes(uint64(len(data))))
	return data, nil
}

// logResponse is a callback for retryablehttp.
// It logs all HTTP errors and also the response metadata when log level is DEBUG.
// Font payloads are binary or large, so only failed responses include a body excerpt.
func logResponse(_ retryablehttp.Logger, r *http.Response) {
	isDebug := slog.Default().Enabled(context.Background(), slog.LevelDebug)
	isHTTPError := r.StatusCode >= 400
	if !isDebug && !isHTTPError {
		return
	}

	var level slog.Level
	if isHTTPError {
		level = slog.LevelWarn
	} else {
		level = slog.LevelDebug
	}

	args := []any{
		"method", r.Request.Method,
		"url", r.Request.URL,
		"status", statusText(r),
	}
	if isDebug {
		args = append(args, "header", r.Header)
	}
	if isHTTPError {
		body, err := copyResponseBody(r)
		if err != nil {
			slog.Error("Failed to extract response body", "error", err)
		}
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody]
		}
		args = append(args, "body", string(body))
	}

	slog.Log(context.Background(), level, "HTTP response", args...)
}

// copyResponseBody returns a copy of the response body r. It preserves the body.
func copyResponseBody(r *http.Response) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))
	return body, nil
}

func statusText(r *http.Response) string {
	return fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
}
