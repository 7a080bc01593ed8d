// Package health runs the readiness checks of the service's dependencies.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/platform/fanout"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds how many checkers run at once.
const maxConcurrentChecks = 8

type entry struct {
	name    string
	checker ports.HealthChecker
}

// Registry implements [ports.HealthRegistry]. Checkers run concurrently,
// each under its own deadline.
type Registry struct {
	timeout time.Duration

	mu      sync.RWMutex
	entries []entry
}

// New returns an empty Registry. A positive timeout bounds every check;
// zero leaves checks bounded only by the probe's context.
func New(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout}
}

// Register adds checker. A checker whose name is already registered
// replaces the earlier one in place.
func (r *Registry) Register(checker ports.HealthChecker) {
	e := entry{name: checker.Name(), checker: checker}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].name == e.name {
			r.entries[i] = e
			return
		}
	}
	r.entries = append(r.entries, e)
}

// Check runs every checker without holding the lock.
func (r *Registry) Check(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, entries, r.run)

	report := ports.HealthReport{Ready: true, Checks: make(map[string]ports.CheckResult, len(entries))}
	for i, e := range entries {
		res := outcomes[i].Value
		if outcomes[i].Err != nil {
			res.Err = outcomes[i].Err
		}
		if res.Err != nil {
			report.Ready = false
		}
		report.Checks[e.name] = res
	}
	return report
}

func (r *Registry) run(ctx context.Context, e entry) (ports.CheckResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := e.checker.HealthCheck(ctx)
	return ports.CheckResult{Err: err, Duration: time.Since(start)}, nil
}
