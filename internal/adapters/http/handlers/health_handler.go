package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

const (
	statusOK       = "ok"
	statusError    = "error"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the probe endpoints. Neither route is behind the
// auth gate.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It touches no dependency.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, http.StatusOK, dto.StatusResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 with the failing checks' errors otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.Check(r.Context())
	logger := logging.FromContext(r.Context())

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]dto.CheckResponse, len(report.Checks)),
	}
	for name, res := range report.Checks {
		check := dto.CheckResponse{Status: statusOK, DurationMS: milliseconds(res.Duration)}
		if res.Err != nil {
			check.Status = statusError
			check.Error = res.Err.Error()
			logger.WarnContext(r.Context(), "readiness check failed",
				slog.String("check", name),
				slog.Duration("duration", res.Duration),
				slog.Any("error", res.Err),
			)
		}
		resp.Checks[name] = check
	}

	code := http.StatusOK
	if !report.Ready {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, code, resp)
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
