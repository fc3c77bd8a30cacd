package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hirebase/hirebase-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout per attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts is the total attempt ceiling for transient errors.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the fixed delay between attempts.
	DefaultRetryDelay = time.Second

	// DefaultRequestsPerSecond is the proactive throttle rate.
	DefaultRequestsPerSecond = 10
)

// Options configures a Client. Zero fields fall back to defaults.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	MaxAttempts       int
	RetryDelay        time.Duration
	RequestsPerSecond float64

	// HTTPClient overrides the underlying client. Useful for testing.
	HTTPClient *http.Client
}

// Client wraps HTTP access to the resume backend with a fixed timeout,
// bounded retry of transient failures, and proactive throttling.
// HTTP error statuses are never retried; only network-class failures are.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	retryDelay  time.Duration
}

// NewClient creates a backend client for the given options.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "http://127.0.0.1:5001/api"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultRequestsPerSecond
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		maxAttempts: opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request performs one logical call with retry. body may be nil; it is
// replayed from the byte slice on each attempt. Returns the response
// body bytes on 2xx, or a typed *APIError for other statuses.
func (c *Client) request(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")

		logger.Debug("%s %s (attempt %d/%d)", method, url, attempt, c.maxAttempts)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !retryable(err) || attempt == c.maxAttempts {
				break
			}
			logger.Warn("request failed: %v, retrying in %s", err, c.retryDelay)
			if err := sleepCtx(ctx, c.retryDelay); err != nil {
				return nil, err
			}
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("read response: %w", readErr)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, newAPIError(resp.StatusCode, resp.Status, url, data)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%s %s: %w", method, url, lastErr)
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.request(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decode(data, out)
}

// postJSON issues a POST with a JSON payload and decodes into out.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	data, err := c.request(ctx, http.MethodPost, path, body, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(data, out)
}

// del issues a DELETE and returns the raw response bytes; call sites
// interpret the acknowledgement shape themselves.
func (c *Client) del(ctx context.Context, path string) ([]byte, error) {
	return c.request(ctx, http.MethodDelete, path, nil, "")
}

// postMultipart uploads files under the given form field along with
// extra string fields, returning the raw response bytes. The multipart
// body is buffered, so transient failures are retried like JSON calls.
func (c *Client) postMultipart(
	ctx context.Context, path, fileField string, paths []string, fields map[string]string,
) ([]byte, error) {
	body, contentType, err := buildMultipart(fileField, paths, fields)
	if err != nil {
		return nil, err
	}
	return c.request(ctx, http.MethodPost, path, body, contentType)
}

// fetch streams raw bytes (file download). The caller must close the
// returned reader. Transport failures are retried like other calls.
func (c *Client) fetch(ctx context.Context, path string) (io.ReadCloser, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !retryable(err) || attempt == c.maxAttempts {
				break
			}
			if err := sleepCtx(ctx, c.retryDelay); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			data, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, newAPIError(resp.StatusCode, resp.Status, url, data)
		}
		return resp.Body, nil
	}

	return nil, fmt.Errorf("GET %s: %w", url, lastErr)
}

// retryable reports whether an error is a transient network-class
// failure worth retrying. The discriminator is explicit by error kind:
// timeouts and net errors qualify, cancellation and HTTP statuses never do.
func retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func buildMultipart(fileField string, paths []string, fields map[string]string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", p, err)
		}
		part, err := w.CreateFormFile(fileField, filepath.Base(p))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return nil, "", fmt.Errorf("add %s: %w", p, err)
		}
	}

	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
