package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
)

// queryHook traces every statement and logs it at debug level, or at error
// level when it fails for a reason other than an empty result.
type queryHook struct {
	fallback *slog.Logger
	tracer   trace.Tracer
	metrics  *telemetry.Metrics // nil disables metric recording
}

var _ bun.QueryHook = (*queryHook)(nil)

func newQueryHook(logger *slog.Logger) *queryHook {
	return &queryHook{
		fallback: logger,
		tracer:   otel.GetTracerProvider().Tracer("store"),
	}
}

func (h *queryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	op := event.Operation()
	ctx, _ = h.tracer.Start(ctx, "db."+strings.ToLower(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.operation", op)),
	)
	return ctx
}

func (h *queryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	took := time.Since(event.StartTime)
	logger := h.logger(ctx)
	failed := event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows)
	h.record(ctx, event.Operation(), took, failed)

	if failed {
		span.RecordError(event.Err)
		span.SetStatus(codes.Error, event.Err.Error())
		logger.ErrorContext(ctx, "query failed",
			slog.String("type", "db"),
			slog.String("operation", event.Operation()),
			slog.String("query", event.Query),
			slog.Duration("took", took),
			slog.Any("error", event.Err),
		)
		return
	}

	logger.DebugContext(ctx, "query executed",
		slog.String("type", "db"),
		slog.String("operation", event.Operation()),
		slog.String("query", event.Query),
		slog.Duration("took", took),
	)
}

func (h *queryHook) record(ctx context.Context, op string, took time.Duration, failed bool) {
	if h.metrics == nil {
		return
	}
	result := "success"
	if failed {
		result = "error"
	}
	h.metrics.DBQueryDuration.Record(ctx, took.Seconds(), metric.WithAttributes(
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}

// logger prefers the request-scoped logger so queries carry request IDs.
func (h *queryHook) logger(ctx context.Context) *slog.Logger {
	if l := logging.FromContext(ctx); l != slog.Default() {
		return l
	}
	return h.fallback
}
