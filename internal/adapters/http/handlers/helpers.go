package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
)

const (
	maxBodyBytes = 1 << 20

	msgNotInteger = "must be a valid integer"
)

// validatable is a request DTO that checks its own fields.
type validatable interface {
	Validate() error
}

func fieldError(field, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// pathID reads the int64 route parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fieldError(name, msgNotInteger)
	}
	return id, nil
}

// listQuery reads the name filter and the limit/offset page from the query
// string. Every malformed parameter is reported at once.
func listQuery(r *http.Request) (string, domain.Page, error) {
	q := r.URL.Query()

	var (
		page   domain.Page
		fields = map[string]string{}
	)
	intParam := func(key string) *int {
		raw := q.Get(key)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[key] = msgNotInteger
			return nil
		}
		return &n
	}
	page.Limit = intParam("limit")
	page.Offset = intParam("offset")

	if len(fields) > 0 {
		return "", domain.Page{}, &domain.ValidationError{Fields: fields}
	}
	if err := page.Validate(); err != nil {
		return "", domain.Page{}, err
	}
	return q.Get("name"), page, nil
}

// subject is the authenticated caller of r.
func subject(r *http.Request) (string, error) {
	if id, ok := domain.IdentityFrom(r.Context()); ok && id.Subject != "" {
		return id.Subject, nil
	}
	return "", domain.ErrUnauthenticated
}

// readBody decodes the JSON body into dst and validates it. On failure the
// problem response is already written and false is returned.
func readBody[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		err = dst.Validate()
	} else {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fieldError("body", "exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
		} else {
			err = fieldError("body", "invalid JSON")
		}
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			"error", err)
	}
}
