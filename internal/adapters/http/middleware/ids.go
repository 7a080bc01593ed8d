package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/recipebox/internal/platform/requestmeta"
)

// maxInboundIDLen bounds caller-supplied identifiers before they are echoed
// into response headers and logs.
const maxInboundIDLen = 128

// RequestIDs returns middleware that assigns the request and correlation
// identifiers. A well-formed inbound X-Request-ID is reused, otherwise a
// UUID v4 is generated. X-Correlation-ID falls back to the request ID. Both
// are echoed as response headers and stored with requestmeta.With.
func RequestIDs() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := requestmeta.Meta{RequestID: inboundID(r, requestmeta.HeaderRequestID)}
			if meta.RequestID == "" {
				meta.RequestID = uuid.NewString()
			}
			meta.CorrelationID = inboundID(r, requestmeta.HeaderCorrelationID)
			if meta.CorrelationID == "" {
				meta.CorrelationID = meta.RequestID
			}

			for name, value := range meta.Headers() {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r.WithContext(requestmeta.With(r.Context(), meta)))
		})
	}
}

// inboundID returns the header value when it is short printable ASCII, or
// the empty string.
func inboundID(r *http.Request, header string) string {
	id := r.Header.Get(header)
	if len(id) > maxInboundIDLen {
		return ""
	}
	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return ""
		}
	}
	return id
}
