package middleware

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/recipebox/internal/adapters/http"

// OpenTelemetry continues the caller's W3C trace in a server span and records
// request metrics. Once routing has resolved, the span is renamed to
// "METHOD /route/{pattern}"; unrouted requests keep the bare method.
//
// A nil metrics disables metric recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
					semconv.UserAgentOriginal(r.UserAgent()),
				),
			)
			defer span.End()

			inflight := metric.WithAttributes(telemetry.AttrHTTPMethod.String(r.Method))
			if metrics != nil {
				metrics.ServerActiveRequests.Add(ctx, 1, inflight)
				defer metrics.ServerActiveRequests.Add(ctx, -1, inflight)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			ex := exchange{
				method: r.Method,
				route:  routePattern(r),
				status: statusOf(ww.Status()),
				size:   ww.BytesWritten(),
				took:   time.Since(start),
			}
			ex.annotate(span)
			if metrics != nil {
				ex.record(ctx, metrics)
			}
		})
	}
}

// exchange is the outcome of one served request.
type exchange struct {
	method string
	route  string
	status int
	size   int
	took   time.Duration
}

func (e exchange) annotate(span trace.Span) {
	if e.route != unmatchedRoute {
		span.SetName(e.method + " " + e.route)
		span.SetAttributes(semconv.HTTPRoute(e.route))
	}
	span.SetAttributes(semconv.HTTPResponseStatusCode(e.status))
	if e.status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(e.status))
	}
}

func (e exchange) record(ctx context.Context, metrics *telemetry.Metrics) {
	result := "success"
	if e.status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(e.method),
		telemetry.AttrHTTPRoute.String(e.route),
		telemetry.AttrHTTPStatus.Int(e.status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, e.took.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
	metrics.ServerResponseSize.Record(ctx, int64(e.size), attrs)
}
