package statsapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
	"github.com/riskibarqy/football-stats-web/internal/platform/resilience"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL      = "http://localhost:8080"
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBytes    = 4 << 20
)

var errStatsTransient = crerr.New("stats api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the football stats REST backend. Reads share in-flight
// requests and are retried on transient failures; writes are sent once.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.Breaker
	flight       singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger.Named("statsapi"),
		breaker:      resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

// BreakerState is exposed for the health endpoint.
func (c *Client) BreakerState() resilience.CircuitState {
	return c.breaker.State()
}

// getJSON joins an in-flight read of the same path when there is one. The
// shared request is detached from the caller's cancellation, so one session
// leaving the page does not fail the others; each caller still stops
// waiting when its own context is done.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	results := c.flight.DoChan(path, func() (any, error) {
		shared := context.WithoutCancel(ctx)
		var raw []byte
		err := c.breaker.Do(func() error {
			var reqErr error
			raw, reqErr = c.executeGet(shared, fullURL)
			return reqErr
		}, isTransient)
		return raw, err
	})

	var out any
	var err error
	select {
	case <-ctx.Done():
		return fmt.Errorf("get %s: %w", path, ctx.Err())
	case res := <-results:
		out, err = res.Val, res.Err
	}
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "stats api circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: stats backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s", path)
	}
	return nil
}

func (c *Client) executeGet(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errStatsTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: status=%d body=%s", errStatsTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, statusError(resp.StatusCode, raw)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("stats api request failed")
	}
	c.logger.WarnContext(ctx, "stats api request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, lastErr)
}

// postJSON sends payload once. A non-2xx answer becomes a RejectedError
// carrying the response body text.
func (c *Client) postJSON(ctx context.Context, path string, payload any, target any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return crerr.Wrapf(err, "encode %s payload", path)
	}

	var raw []byte
	err := c.breaker.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf.B))
		if err != nil {
			return crerr.Wrap(err, "build request")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: send request: %v", errStatsTransient, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("%w: read response body: %v", errStatsTransient, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &usecase.RejectedError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		raw = body
		return nil
	}, isTransientOrServerRejection)
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			return fmt.Errorf("%w: stats backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		c.logger.WarnContext(ctx, "stats api write failed", "path", path, "error", err)
		return err
	}

	if target == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s response", path)
	}
	return nil
}

func statusError(status int, body []byte) error {
	err := fmt.Errorf("stats api status=%d body=%s", status, abbreviateBody(body))
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", usecase.ErrNotFound, err)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	default:
		return err
	}
}

func isTransient(err error) bool {
	return stderrors.Is(err, errStatsTransient) || stderrors.Is(err, usecase.ErrDependencyUnavailable)
}

func isTransientOrServerRejection(err error) bool {
	var rejected *usecase.RejectedError
	if stderrors.As(err, &rejected) {
		return rejected.StatusCode >= http.StatusInternalServerError
	}
	return isTransient(err)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
