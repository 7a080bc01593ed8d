package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
)

// jitter is the randomization factor applied to every backoff interval.
const jitter = 0.25

// maxRetryAfter caps how long a Retry-After header may hold a retry.
const maxRetryAfter = 30 * time.Second

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

func (p retryPolicy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxInterval = p.maxInterval
	b.Multiplier = p.multiplier
	b.RandomizationFactor = jitter
	b.Reset()
	return b
}

// statusError reports a retryable status. Unwrapping yields the server's
// Retry-After delay, which backoff honors in place of the next interval.
type statusError struct {
	service    string
	status     int
	retryAfter *backoff.RetryAfterError
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.status, e.service)
}

func (e *statusError) Unwrap() error {
	if e.retryAfter == nil {
		return nil
	}
	return e.retryAfter
}

// send runs req through the retry policy. The body is buffered once and
// replayed on every attempt. Retryable responses are drained before the next
// attempt, except the final one, which is handed back with the error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: max_attempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	var last *http.Response
	attempt := 0
	operation := func() (*http.Response, error) {
		if last != nil {
			drain(last)
			last = nil
		}
		attempt++
		rewind(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		last = resp
		serr := &statusError{service: c.name, status: resp.StatusCode}
		if wait, ok := retryAfter(resp); ok {
			serr.retryAfter = &backoff.RetryAfterError{Duration: wait}
		}
		return nil, serr
	}

	notify := func(err error, wait time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("operation", "httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("peer_service", c.name),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retry.maxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.retry.backOff()),
		backoff.WithMaxTries(uint(c.retry.maxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)
	if err != nil {
		var serr *statusError
		if last != nil && errors.As(err, &serr) {
			return last, err
		}
		if last != nil {
			drain(last)
		}
		return nil, err
	}
	return resp, nil
}

// retryAfter reads a delay-seconds Retry-After header from a 429 or 503.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return 0, false
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter), true
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
}

// drain discards the body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryableStatus reports 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
