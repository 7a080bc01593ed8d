package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/domain"
)

func TestNewErrorResponse_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantType   string
	}{
		{
			name:       "validation",
			err:        &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.CodeBadUserInput,
			wantType:   "https://recipebox.dev/problems/bad-user-input",
		},
		{
			name:       "missing credentials",
			err:        domain.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantCode:   domain.CodeUnauthenticated,
			wantType:   "https://recipebox.dev/problems/unauthenticated",
		},
		{
			name:       "forbidden",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   domain.CodeForbidden,
			wantType:   "https://recipebox.dev/problems/forbidden",
		},
		{
			name:       "recipe not found",
			err:        domain.NotFound("recipe", 42),
			wantStatus: http.StatusNotFound,
			wantCode:   domain.CodeNotFound,
			wantType:   "https://recipebox.dev/problems/not-found",
		},
		{
			name:       "duplicate ingredient",
			err:        fmt.Errorf("ingredient name taken: %w", domain.ErrConflict),
			wantStatus: http.StatusConflict,
			wantCode:   domain.CodeConflict,
			wantType:   "https://recipebox.dev/problems/conflict",
		},
		{
			name:       "identity provider down",
			err:        fmt.Errorf("introspecting token: %w", domain.ErrUnavailable),
			wantStatus: http.StatusBadGateway,
			wantCode:   domain.CodeUnavailable,
			wantType:   "https://recipebox.dev/problems/unavailable",
		},
		{
			name:       "deadline exceeded",
			err:        fmt.Errorf("listing recipes: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   domain.CodeTimeout,
			wantType:   "https://recipebox.dev/problems/timeout",
		},
		{
			name:       "unclassified",
			err:        errors.New("sql: database is closed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domain.CodeInternal,
			wantType:   "https://recipebox.dev/problems/internal-server-error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/recipes/42", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Instance != "/api/recipes/42" {
				t.Errorf("Instance = %q, want %q", got.Instance, "/api/recipes/42")
			}
		})
	}
}

func TestNewErrorResponse_Detail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/ingredients/7", http.NoBody)

	notFound := domain.NotFound("ingredient", 7)
	if got := dto.NewErrorResponse(r, notFound).Detail; got != notFound.Error() {
		t.Errorf("Detail = %q, want %q", got, notFound.Error())
	}

	internal := errors.New("pq: password authentication failed for user recipebox")
	if got := dto.NewErrorResponse(r, internal).Detail; strings.Contains(got, "password") {
		t.Errorf("Detail = %q, leaks the internal cause", got)
	}
}

func TestNewErrorResponse_ValidationFields(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"unit":     domain.MsgRequired,
		"name":     domain.MsgRequired,
		"quantity": "must be positive, got 0",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/recipes/1/add_ingredient", http.NoBody)
	got := dto.NewErrorResponse(r, verr)

	want := []string{"body.name", "body.quantity", "body.unit"}
	if len(got.Errors) != len(want) {
		t.Fatalf("len(Errors) = %d, want %d", len(got.Errors), len(want))
	}
	for i, loc := range want {
		if got.Errors[i].Location != loc {
			t.Errorf("Errors[%d].Location = %q, want %q", i, got.Errors[i].Location, loc)
		}
	}

	if plain := dto.NewErrorResponse(r, domain.ErrNotFound); plain.Errors != nil {
		t.Errorf("Errors = %v, want nil for a non-validation error", plain.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/ingredients", http.NoBody)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if h := w.Header().Get("WWW-Authenticate"); h != "" {
		t.Errorf("WWW-Authenticate = %q, want none outside 401", h)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Code != domain.CodeBadUserInput || len(resp.Errors) != 1 {
		t.Fatalf("body = %+v, want one BAD_USER_INPUT field error", resp)
	}
	if resp.Errors[0].Message != domain.MsgRequired {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, domain.MsgRequired)
	}
}

func TestWriteErrorResponse_ChallengesUnauthenticated(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/recipes", http.NoBody)

	dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if h := w.Header().Get("WWW-Authenticate"); h != `Bearer realm="recipebox"` {
		t.Errorf("WWW-Authenticate = %q, want bearer challenge", h)
	}
}
