package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExec(client *http.Client) *Executor {
	return New(zap.NewNop(), client, "test", nil)
}

func newGet(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

// ─── Basic success ────────────────────────────────────────────────────────────

func TestDo_SuccessReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	resp, err := newExec(srv.Client()).Do(context.Background(), newGet(t, srv.URL))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"results":[]}`, string(resp.Body))
}

func TestDo_BodyIsNotParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	resp, err := newExec(srv.Client()).Do(context.Background(), newGet(t, srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "not-json", string(resp.Body))
}

// ─── Single attempt only ──────────────────────────────────────────────────────

func TestDo_5xxNotRetried(t *testing.T) {
	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := newExec(srv.Client()).Do(context.Background(), newGet(t, srv.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test returned 503")
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.EqualValues(t, 1, count.Load(), "executor must not retry")
}

func TestDo_4xxNotRetried(t *testing.T) {
	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newExec(srv.Client()).Do(context.Background(), newGet(t, srv.URL))
	require.Error(t, err)
	assert.EqualValues(t, 1, count.Load())
}

// ─── Custom error handler receives body ──────────────────────────────────────

func TestDo_CustomErrorHandlerCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"upstream"}`))
	}))
	defer srv.Close()

	exec := New(zap.NewNop(), srv.Client(), "test", func(status int, body []byte) error {
		return fmt.Errorf("venue %d: %s", status, body)
	})

	_, err := exec.Do(context.Background(), newGet(t, srv.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream")
}

// ─── Transport failures ──────────────────────────────────────────────────────

func TestDo_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	resp, err := newExec(&http.Client{}).Do(context.Background(), newGet(t, url))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "test request failed")
}

func TestDo_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newExec(srv.Client()).Do(ctx, newGet(t, srv.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_NilDefaults(t *testing.T) {
	exec := New(nil, nil, "test", nil)
	assert.NotNil(t, exec.logger)
	assert.Equal(t, http.DefaultClient, exec.http)
}
