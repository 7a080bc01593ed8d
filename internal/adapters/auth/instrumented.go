package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// Instrumented counts every verification made through next on
// metrics.AuthVerifyTotal, labeled by mode and outcome. A nil metrics
// returns next unchanged.
func Instrumented(next ports.IdentityVerifier, mode string, metrics *telemetry.Metrics) ports.IdentityVerifier {
	if metrics == nil {
		return next
	}
	return &instrumented{next: next, mode: mode, metrics: metrics}
}

type instrumented struct {
	next    ports.IdentityVerifier
	mode    string
	metrics *telemetry.Metrics
}

func (v *instrumented) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	id, err := v.next.VerifyToken(ctx, token)

	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnauthenticated):
		result = "rejected"
	default:
		result = "error"
	}
	v.metrics.AuthVerifyTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrAuthMode.String(v.mode),
		telemetry.AttrResult.String(result),
	))

	return id, err
}
