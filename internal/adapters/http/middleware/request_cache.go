package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/recipebox/internal/app/context"
)

// RequestCache installs a fresh appctx.RequestContext per request for the
// graph resolvers. Mount it after Authenticate: fetches run with the
// request's context, so they see the caller and its logger.
func RequestCache() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}
