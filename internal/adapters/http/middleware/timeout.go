package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request with a context
// deadline. Store queries, identity provider calls and GraphQL execution all
// observe that context. A handler that returns after the deadline without
// writing a response gets a 504 problem document; one that already wrote
// keeps its response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			if ww.Status() == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				dto.WriteErrorResponse(ww, r, fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}
