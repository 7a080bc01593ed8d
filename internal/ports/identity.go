package ports

import (
	"context"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// IdentityVerifier resolves a bearer credential to a caller identity.
// Implemented by the local JWT verifier and by the identity-provider
// introspection client; called by the authentication gate.
type IdentityVerifier interface {
	// VerifyToken returns the identity the token was issued to.
	// Returns domain.ErrUnauthenticated if the token is malformed, expired
	// or revoked, and domain.ErrUnavailable if the provider cannot be reached.
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
}
