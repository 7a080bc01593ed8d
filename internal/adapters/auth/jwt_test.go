package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
)

var testCfg = config.JWTConfig{
	Secret:   "test-secret",
	Issuer:   "https://id.example.com",
	Audience: "recipebox",
	Leeway:   5 * time.Second,
}

func mustSign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return token
}

func validClaims() Claims {
	now := time.Now()
	return Claims{
		Username: "julia",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			Issuer:    testCfg.Issuer,
			Audience:  jwt.ClaimStrings{testCfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	t.Parallel()

	token := mustSign(t, jwt.SigningMethodHS256, []byte(testCfg.Secret), validClaims())

	id, err := NewJWTVerifier(testCfg).VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if id.Subject != "user-42" {
		t.Errorf("Subject = %q, want %q", id.Subject, "user-42")
	}
	if id.Username != "julia" {
		t.Errorf("Username = %q, want %q", id.Username, "julia")
	}
}

func TestJWTVerifier_SignRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := Sign(testCfg, "user-9", "", time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	id, err := NewJWTVerifier(testCfg).VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if id.Subject != "user-9" || id.Username != "user-9" {
		t.Errorf("identity = %+v, want subject and username user-9", id)
	}
}

func TestJWTVerifier_LeewayAcceptsRecentExpiry(t *testing.T) {
	t.Parallel()

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Second))
	token := mustSign(t, jwt.SigningMethodHS256, []byte(testCfg.Secret), claims)

	if _, err := NewJWTVerifier(testCfg).VerifyToken(context.Background(), token); err != nil {
		t.Errorf("VerifyToken() error = %v, want nil within leeway", err)
	}
}

func TestJWTVerifier_Rejections(t *testing.T) {
	t.Parallel()

	secret := []byte(testCfg.Secret)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-jwt" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return mustSign(t, jwt.SigningMethodHS256, []byte("other"), validClaims())
			},
		},
		{
			name: "unexpected algorithm",
			token: func(t *testing.T) string {
				return mustSign(t, jwt.SigningMethodHS512, secret, validClaims())
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return mustSign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = nil
				return mustSign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Issuer = "https://evil.example.com"
				return mustSign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Audience = jwt.ClaimStrings{"someone-else"}
				return mustSign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Subject = ""
				return mustSign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
	}

	verifier := NewJWTVerifier(testCfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := verifier.VerifyToken(context.Background(), tt.token(t))
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Errorf("VerifyToken() error = %v, want %v", err, domain.ErrUnauthenticated)
			}
			if id != nil {
				t.Errorf("VerifyToken() = %+v, want nil", id)
			}
		})
	}
}

func TestJWTVerifier_OptionalIssuerAndAudience(t *testing.T) {
	t.Parallel()

	cfg := config.JWTConfig{Secret: "s"}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "anyone",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}}
	token := mustSign(t, jwt.SigningMethodHS256, []byte("s"), claims)

	verifier := newJWTVerifier(cfg, func() time.Time { return now })
	if _, err := verifier.VerifyToken(context.Background(), token); err != nil {
		t.Errorf("VerifyToken() error = %v, want nil", err)
	}
}
