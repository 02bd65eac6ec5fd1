package octopus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Checker-Finance/octopus-adapter/internal/httpclient"
	"github.com/Checker-Finance/octopus-adapter/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.octopus.energy"
	ProductsPath   = "/v1/products/"

	userAgent = "octopus-adapter/1.0"
)

// Client wraps low-level HTTP communication with the Octopus Energy public API.
// It holds no state between calls.
type Client struct {
	logger  *zap.Logger
	baseURL string
	exec    *httpclient.Executor
}

// NewClient constructs a new Octopus HTTP client instance.
// A zero timeout leaves the transport defaults in place.
func NewClient(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := &http.Client{Timeout: timeout}
	// the executor already logs octopus.non_2xx before calling the handler
	exec := httpclient.New(logger, httpClient, "octopus", func(status int, body []byte) error {
		return newStatusError(status, body)
	})
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		exec:    exec,
	}
}

// ProductsURL returns the product listing endpoint this client calls.
func (c *Client) ProductsURL() string {
	return c.baseURL + ProductsPath
}

// FetchProducts issues one GET to /v1/products/ and returns the body unparsed.
// Every error wraps ErrFetch; non-2xx answers are *StatusError.
func (c *Client) FetchProducts(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ProductsURL(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.exec.Do(ctx, req)
	metrics.ObserveDuration(metrics.OctopusRequestDuration, start, ProductsPath, http.MethodGet)

	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			metrics.IncOctopusRequest(ProductsPath, http.MethodGet, strconv.Itoa(statusErr.StatusCode))
			return "", statusErr
		}
		metrics.IncOctopusRequest(ProductsPath, http.MethodGet, "transport_error")
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	metrics.IncOctopusRequest(ProductsPath, http.MethodGet, strconv.Itoa(resp.StatusCode))

	if !utf8.Valid(resp.Body) {
		c.logger.Warn("octopus.invalid_encoding",
			zap.String("request_id", requestID),
			zap.Int("bytes", len(resp.Body)))
		return "", fmt.Errorf("%w: response body is not valid UTF-8", ErrFetch)
	}

	c.logger.Debug("octopus.products_fetched",
		zap.String("request_id", requestID),
		zap.Int("bytes", len(resp.Body)),
		zap.Duration("elapsed", resp.Elapsed))

	return string(resp.Body), nil
}
