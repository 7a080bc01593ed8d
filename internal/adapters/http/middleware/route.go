package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route accepted, so span names and metric
// labels never carry raw paths.
const unmatchedRoute = "unmatched"

// routePattern returns the chi pattern that served r, such as
// "/api/recipes/{id}". It is only populated once the router has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}

// statusOf reports the status a wrapped writer sent. Handlers that never
// write get the implicit 200 net/http sends for them.
func statusOf(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}
