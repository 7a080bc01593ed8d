package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
	"github.com/jsamuelsen11/recipebox/internal/platform/requestmeta"
)

// Logging returns middleware that derives a request-scoped logger carrying
// the request, correlation and trace identifiers and stores it with
// logging.WithLogger. Completion is logged at INFO, at WARN for 4xx and at
// ERROR for 5xx. Request headers are logged at DEBUG with credentials
// redacted.
//
// Register it after RequestIDs and OpenTelemetry.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			meta := requestmeta.From(ctx)
			attrs := []any{
				slog.String("request_id", meta.RequestID),
				slog.String("correlation_id", meta.CorrelationID),
			}
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}
			reqLogger := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, reqLogger)

			reqLogger.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("headers", headerValue(r.Header)),
			)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			status := statusOf(ww.Status())
			reqLogger.Log(ctx, completionLevel(status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// headerValue renders headers as a sorted group with multi-value headers
// joined by commas and credential headers redacted.
func headerValue(h http.Header) slog.Value {
	attrs := make([]slog.Attr, 0, len(h))
	for name, values := range h {
		value := strings.Join(values, ",")
		if logging.IsCredentialHeader(name) {
			value = logging.Redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	slices.SortFunc(attrs, func(a, b slog.Attr) int { return strings.Compare(a.Key, b.Key) })
	return slog.GroupValue(attrs...)
}
