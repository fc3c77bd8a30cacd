package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Options{
		BaseURL:           server.URL,
		MaxAttempts:       3,
		RetryDelay:        time.Millisecond,
		RequestsPerSecond: 1000,
	})
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Options{})

	assert.Equal(t, "http://127.0.0.1:5001/api", c.BaseURL())
	assert.Equal(t, DefaultMaxAttempts, c.maxAttempts)
	assert.Equal(t, DefaultRetryDelay, c.retryDelay)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://example.com/api/"})

	assert.Equal(t, "http://example.com/api", c.BaseURL())
}

func TestRequest_RetriesTransientNetworkFailures(t *testing.T) {
	var attempts atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			// Drop the connection mid-request to simulate a transient
			// network failure.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		fmt.Fprint(w, `{"ok": true}`)
	})

	c := newTestClient(t, handler)
	c.httpClient.Transport = &http.Transport{DisableKeepAlives: true}

	data, err := c.request(context.Background(), "GET", "/cvs", nil, "")

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(data))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestRequest_GivesUpAfterMaxAttempts(t *testing.T) {
	var attempts atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		hj := w.(http.Hijacker)
		conn, _, _ := hj.Hijack()
		conn.Close()
	})

	c := newTestClient(t, handler)
	c.httpClient.Transport = &http.Transport{DisableKeepAlives: true}

	_, err := c.request(context.Background(), "GET", "/cvs", nil, "")

	require.Error(t, err)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestRequest_DoesNotRetryHTTPStatuses(t *testing.T) {
	var attempts atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	})

	c := newTestClient(t, handler)

	_, err := c.request(context.Background(), "GET", "/cvs", nil, "")

	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "HTTP error statuses must not be retried")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestRequest_DoesNotRetryNotFound(t *testing.T) {
	var attempts atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.NotFound(w, r)
	})

	c := newTestClient(t, handler)

	_, err := c.request(context.Background(), "DELETE", "/delete/42", nil, "")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), attempts.Load())
}

type fakeNetError struct{ timeout bool }

func (e *fakeNetError) Error() string   { return "fake net error" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

func TestRetryable_Classification(t *testing.T) {
	assert.False(t, retryable(nil))
	assert.False(t, retryable(context.Canceled))
	assert.False(t, retryable(errors.New("decode response: bad json")))
	assert.True(t, retryable(context.DeadlineExceeded))
	assert.True(t, retryable(&fakeNetError{timeout: true}))

	var _ net.Error = (*fakeNetError)(nil)
}

func TestRequest_ContextCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{}")
	})
	c := newTestClient(t, handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.request(ctx, "GET", "/cvs", nil, "")

	assert.Error(t, err)
}
