// Package httpclient is the outbound HTTP client shared by the anti-corruption
// layer clients. Each call passes through, outermost first:
//
//	circuit breaker → rate limiter → client span → retry (backoff) → net/http
//
// The request and correlation identifiers of the inbound request, read with
// requestmeta.From, and the W3C trace context are written onto every
// outbound request.
//
//	client := httpclient.New(&cfg.Auth.Introspection.Client, "identity-provider", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/platform/requestmeta"
	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/recipebox/internal/platform/httpclient"

// Client calls one downstream service. Name identifies it in spans, metrics,
// breaker logs and health reports.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables client-side rate limiting
	retry   retryPolicy
	metrics *telemetry.Metrics
}

// New builds a Client for the downstream service called name. A nil metrics
// disables metric recording.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Do sends req. A non-retryable response is returned with its body open.
// When retries end on a retryable status the last response is returned
// alongside the error, body open; the caller closes it in both cases. A
// rejected call (open breaker, rate limiter, transport failure or context
// end) returns a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s rate limit: %w", c.name, err)
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, r, err)
		return r, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the configured root of the downstream API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the downstream service.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without calling the service: nil
// while closed, an error while probing (half-open) or rejecting (open).
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.Redacted()),
			attribute.String("peer.service", c.name),
		),
	)

	for name, value := range requestmeta.From(ctx).Headers() {
		req.Header.Set(name, value)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, took time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, took.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
