package ports

import (
	"context"
	"time"
)

// HealthChecker is a dependency the readiness probe asks about: the store
// and, in introspect mode, the identity provider client.
type HealthChecker interface {
	// Name keys the checker in a HealthReport.
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// CheckResult is one checker's outcome in a HealthReport.
type CheckResult struct {
	Err      error
	Duration time.Duration
}

// HealthReport is the outcome of one readiness probe. Ready is true when no
// check failed, including when nothing is registered.
type HealthReport struct {
	Ready  bool
	Checks map[string]CheckResult
}

// HealthRegistry holds the checkers behind GET /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)

	// Check runs every registered checker and reports the results.
	Check(ctx context.Context) HealthReport
}
