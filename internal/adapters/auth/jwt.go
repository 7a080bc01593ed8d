// Package auth verifies bearer credentials locally, without a round trip to
// the identity provider.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

var _ ports.IdentityVerifier = (*JWTVerifier)(nil)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier checks HS256-signed access tokens against a shared secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier from cfg. Issuer and Audience are only
// enforced when configured; an exp claim is always required.
func NewJWTVerifier(cfg config.JWTConfig) *JWTVerifier {
	return newJWTVerifier(cfg, time.Now)
}

func newJWTVerifier(cfg config.JWTConfig, now func() time.Time) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &JWTVerifier{secret: []byte(cfg.Secret), parser: jwt.NewParser(opts...)}
}

// VerifyToken validates the signature and registered claims of token.
// Every failure is reported as domain.ErrUnauthenticated.
func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (*domain.Identity, error) {
	var claims Claims
	if _, err := v.parser.ParseWithClaims(token, &claims, v.key); err != nil {
		return nil, fmt.Errorf("invalid token: %v: %w", err, domain.ErrUnauthenticated)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrUnauthenticated)
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	return &domain.Identity{Subject: claims.Subject, Username: username}, nil
}

func (v *JWTVerifier) key(*jwt.Token) (any, error) {
	return v.secret, nil
}

// Sign issues an HS256 token for subject with the secret in cfg. It backs the
// devtoken command.
func Sign(cfg config.JWTConfig, subject, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
