package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/recipebox/internal/ports"
	"github.com/jsamuelsen11/recipebox/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
	if resp := decodeJSON[dto.StatusResponse](t, rec); resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	refused := errors.New("introspection endpoint: connection refused")

	tests := []struct {
		name       string
		report     ports.HealthReport
		wantCode   int
		wantStatus string
		wantChecks map[string]dto.CheckResponse
	}{
		{
			name: "all ready",
			report: ports.HealthReport{Ready: true, Checks: map[string]ports.CheckResult{
				"database": {Duration: 1500 * time.Microsecond},
			}},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]dto.CheckResponse{
				"database": {Status: "ok", DurationMS: 1.5},
			},
		},
		{
			name: "identity provider failing",
			report: ports.HealthReport{Ready: false, Checks: map[string]ports.CheckResult{
				"database":          {Duration: time.Millisecond},
				"identity-provider": {Err: refused, Duration: 2 * time.Second},
			}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]dto.CheckResponse{
				"database":          {Status: "ok", DurationMS: 1},
				"identity-provider": {Status: "error", DurationMS: 2000, Error: refused.Error()},
			},
		},
		{
			name:       "nothing registered",
			report:     ports.HealthReport{Ready: true, Checks: map[string]ports.CheckResult{}},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]dto.CheckResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().Check(mock.Anything).Return(tt.report)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.ReadinessResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", resp.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if got := resp.Checks[name]; got != want {
					t.Errorf("checks[%q] = %+v, want %+v", name, got, want)
				}
			}
		})
	}
}
