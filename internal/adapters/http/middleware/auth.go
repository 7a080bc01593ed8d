package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "bearer "
)

var (
	errMissingCredentials = fmt.Errorf("authentication credentials were not provided: %w", domain.ErrUnauthenticated)
	errMalformedHeader    = fmt.Errorf("authorization header must be \"Bearer <token>\": %w", domain.ErrUnauthenticated)
)

// Authenticate returns middleware that requires a bearer token on every
// request. The token is resolved through verifier; on success the caller's
// domain.Identity is stored in the request context and the request-scoped
// logger gains a "subject" attribute. Requests without a valid credential
// receive a 401 problem document and never reach next.
//
// Register it after Logging so rejections are logged with request metadata.
func Authenticate(verifier ports.IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.FromContext(ctx)

			token, err := bearerToken(r.Header.Get(headerAuthorization))
			if err != nil {
				reject(w, r, logger, err)
				return
			}

			id, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				reject(w, r, logger, err)
				return
			}

			ctx = domain.WithIdentity(ctx, id)
			ctx = logging.WithLogger(ctx, logger.With(slog.String("subject", id.Subject)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingCredentials
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", errMalformedHeader
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", errMalformedHeader
	}
	return token, nil
}

func reject(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) {
		logger.WarnContext(r.Context(), "request rejected",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	} else {
		logger.ErrorContext(r.Context(), "identity verification failed",
			slog.String("operation", "Authenticate"),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	dto.WriteErrorResponse(w, r, err)
}
