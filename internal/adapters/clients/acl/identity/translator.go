package identity

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// accessTokenHint is the token_type_hint sent with every introspection call.
const accessTokenHint = "access_token"

// ToIntrospectionForm builds the form-encoded introspection request body.
func ToIntrospectionForm(token string) url.Values {
	return url.Values{
		"token":           {token},
		"token_type_hint": {accessTokenHint},
	}
}

// ToIdentity converts an introspection response to a domain Identity.
// Inactive tokens, tokens without a subject and tokens whose exp has passed
// at now all yield domain.ErrUnauthenticated.
func ToIdentity(dto *IntrospectionResponseDTO, now time.Time) (*domain.Identity, error) {
	if !dto.Active {
		return nil, fmt.Errorf("token is not active: %w", domain.ErrUnauthenticated)
	}
	if dto.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrUnauthenticated)
	}
	if dto.ExpiresAt > 0 && !now.Before(time.Unix(dto.ExpiresAt, 0)) {
		return nil, fmt.Errorf("token expired: %w", domain.ErrUnauthenticated)
	}

	username := dto.Username
	if username == "" {
		username = dto.Subject
	}
	return &domain.Identity{Subject: dto.Subject, Username: username}, nil
}
