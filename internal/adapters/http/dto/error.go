package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// problemTypeBase prefixes the code-derived problem type URIs.
const problemTypeBase = "https://recipebox.dev/problems/"

// detailInternal replaces the detail of 5xx problems whose cause is not a
// domain error, so driver and runtime messages never reach the client.
const detailInternal = "the server encountered an unexpected condition"

// wwwAuthenticate is sent with every 401 problem.
const wwwAuthenticate = `Bearer realm="recipebox"`

// statusByCode maps a domain.Code to the HTTP status of its problem document.
var statusByCode = map[string]int{
	domain.CodeBadUserInput:    http.StatusBadRequest,
	domain.CodeUnauthenticated: http.StatusUnauthorized,
	domain.CodeForbidden:       http.StatusForbidden,
	domain.CodeNotFound:        http.StatusNotFound,
	domain.CodeConflict:        http.StatusConflict,
	domain.CodeUnavailable:     http.StatusBadGateway,
	domain.CodeTimeout:         http.StatusGatewayTimeout,
	domain.CodeInternal:        http.StatusInternalServerError,
}

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// carrying the same value GraphQL reports under extensions.code.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse builds the problem document for err. The instance member
// is the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	code := domain.Code(err)
	status := statusByCode[code]

	detail := err.Error()
	if code == domain.CodeInternal {
		detail = detailInternal
	}

	resp := ErrorResponse{
		Type:     problemTypeBase + problemSlug(code),
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
// Unauthenticated problems also carry a WWW-Authenticate challenge.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", wwwAuthenticate)
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// problemSlug turns BAD_USER_INPUT into bad-user-input.
func problemSlug(code string) string {
	b := []byte(code)
	for i, c := range b {
		switch {
		case c == '_':
			b[i] = '-'
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// fieldDetails converts validation fields to body locations, sorted so the
// document is stable.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
