package rowstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestClient builds a client against a test server with a short timeout
// and no backoff delays so retry tests run fast.
func newTestClient(baseURL string, timeout time.Duration, retries int) *client {
	return &client{
		http:    &http.Client{},
		baseURL: baseURL,
		timeout: timeout,
		retries: retries,
		delays:  []time.Duration{time.Millisecond, time.Millisecond},
		logger:  zap.NewNop(),
	}
}

func TestFetch_Success(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"collector":"Ana","hours":2}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 2)
	res, err := c.Fetch(context.Background(), Request{
		Action: ActionWorkLogs,
		Params: map[string]string{"collector": "Ana"},
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	rows, err := DecodeRows(res.Data)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].String("collector"))

	assert.Contains(t, gotURL, "action=getWorkLogs")
	assert.Contains(t, gotURL, "collector=Ana")
}

func TestFetch_StripsAntiHijackingPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Some deployments serve JSON as text/plain with the guard prefix.
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(")]}'\n{\"success\":true,\"data\":[]}"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 0)
	res, err := c.Fetch(context.Background(), Request{Action: ActionRoster})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(res.Data))
}

func TestFetch_SemanticFailureNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":"unknown action"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 2)
	_, err := c.Fetch(context.Background(), Request{Action: "bogus"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unknown action", apiErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_RetryableStatusExhaustsAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 2)
	_, err := c.Fetch(context.Background(), Request{Action: ActionWorkLogs})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	// 1 initial + 2 retries
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetch_TerminalStatusFailsImmediately(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 2)
	_, err := c.Fetch(context.Background(), Request{Action: ActionRoster})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.False(t, statusErr.Retryable())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_TimeoutRetryCeiling(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 20*time.Millisecond, 2)
	_, err := c.Fetch(context.Background(), Request{Action: ActionWorkLogs})

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 3, timeoutErr.Attempts)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetch_NetworkErrorClassified(t *testing.T) {
	// Server closed before the request is made.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, time.Second, 0)
	_, err := c.Fetch(context.Background(), Request{Action: ActionRoster})

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestFetch_MalformedResponse(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>maintenance page</html>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 2)
	_, err := c.Fetch(context.Background(), Request{Action: ActionRoster})

	var malformedErr *MalformedError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_WritePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "Ana", payload["collector"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"row appended"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 0)
	res, err := c.Fetch(context.Background(), Request{
		Action: ActionAppendWorkLog,
		Body:   map[string]any{"collector": "Ana", "hours": 2.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "row appended", res.Message)
}

func TestFetch_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second, 2)
	c.delays = []time.Duration{time.Second, time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.Fetch(ctx, Request{Action: ActionRoster})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{}, zap.NewNop())
	assert.Error(t, err)

	c, err := NewClient(Config{BaseURL: "https://example.com/api"}, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, c)
}
