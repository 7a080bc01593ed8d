package middleware_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/adapters/http/middleware"
)

func TestTimeout_WithinDeadline(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
		w.Header().Set("Location", "/api/recipes/9")
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recipes", http.NoBody))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Header().Get("Location") != "/api/recipes/9" {
		t.Errorf("Location = %q, want /api/recipes/9", rec.Header().Get("Location"))
	}
	if until := time.Until(deadline); until <= 0 || until > time.Second {
		t.Errorf("deadline in %v, want within 1s", until)
	}
}

func TestTimeout_SilentHandlerGets504(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	var problem dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("decoding problem: %v", err)
	}
	if problem.Code != "TIMEOUT" {
		t.Errorf("code = %q, want TIMEOUT", problem.Code)
	}
}

func TestTimeout_KeepsHandlerResponse(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		dto.WriteErrorResponse(w, r, fmt.Errorf("listing recipes: %w", context.DeadlineExceeded))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	var problem dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("decoding problem: %v", err)
	}
	if problem.Detail != "listing recipes: context deadline exceeded" {
		t.Errorf("detail = %q, want the handler's own problem", problem.Detail)
	}
}
