package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Executor runs a single HTTP exchange, reads the whole body and hands
// non-2xx responses to a venue-specific error handler. It does not retry.
type Executor struct {
	logger       *zap.Logger
	http         *http.Client
	venueTag     string
	errorHandler func(status int, body []byte) error
}

// New creates an Executor. errorHandler is called on non-2xx responses to produce a
// venue-specific error. If nil, a default error is returned.
func New(
	logger *zap.Logger,
	httpClient *http.Client,
	venueTag string,
	errorHandler func(status int, body []byte) error,
) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Executor{
		logger:       logger,
		http:         httpClient,
		venueTag:     venueTag,
		errorHandler: errorHandler,
	}
}

// Response is the outcome of a completed exchange.
type Response struct {
	StatusCode int
	Body       []byte
	Elapsed    time.Duration
}

// Do executes req once and returns the full response body.
// A non-nil Response is returned whenever the server answered, even on a status error.
func (e *Executor) Do(ctx context.Context, req *http.Request) (*Response, error) {
	start := time.Now()
	resp, err := e.http.Do(req.WithContext(ctx))
	if err != nil {
		e.logger.Warn(e.venueTag+".http_failed",
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%s request failed: %w", e.venueTag, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		e.logger.Warn(e.venueTag+".read_failed",
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return nil, fmt.Errorf("%s read body: %w", e.venueTag, err)
	}

	out := &Response{StatusCode: resp.StatusCode, Body: body, Elapsed: elapsed}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.logger.Warn(e.venueTag+".non_2xx",
			zap.Int("status", resp.StatusCode),
			zap.String("url", req.URL.String()),
			zap.Duration("latency", elapsed))
		if e.errorHandler != nil {
			return out, e.errorHandler(resp.StatusCode, body)
		}
		return out, fmt.Errorf("%s returned %d", e.venueTag, resp.StatusCode)
	}

	e.logger.Debug(e.venueTag+".http_success",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", elapsed))

	return out, nil
}
