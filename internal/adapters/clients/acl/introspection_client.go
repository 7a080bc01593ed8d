package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/platform/httpclient"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.IdentityVerifier = (*IntrospectionClient)(nil)
	_ ports.HealthChecker    = (*IntrospectionClient)(nil)
)

// IntrospectionClient is the outbound adapter for the identity provider. It
// implements [ports.IdentityVerifier] by posting each bearer token to the
// provider's RFC 7662 introspection endpoint and translating the answer via
// [identity.ToIdentity].
//
// The underlying [httpclient.Client] provides circuit breaking, retry,
// tracing and the breaker-based health check this type delegates to.
type IntrospectionClient struct {
	client       *httpclient.Client
	req          *Requester
	path         string
	clientID     string
	clientSecret string
	now          func() time.Time
}

// NewIntrospectionClient creates an IntrospectionClient that sends requests
// through client. The client's BaseURL should point at the provider root;
// cfg.Path is appended to it for every call.
func NewIntrospectionClient(
	client *httpclient.Client,
	cfg config.IntrospectionConfig,
	logger *slog.Logger,
) *IntrospectionClient {
	return &IntrospectionClient{
		client:       client,
		req:          NewRequester(client, logger),
		path:         cfg.Path,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		now:          time.Now,
	}
}

// VerifyToken introspects token and returns the identity it was issued to.
// Returns [domain.ErrUnauthenticated] if the provider reports the token as
// inactive, and [domain.ErrUnavailable] for every other provider failure.
func (c *IntrospectionClient) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	var dto identity.IntrospectionResponseDTO
	err := c.req.Do(ctx, http.MethodPost, c.path, http.StatusOK,
		identity.ToIntrospectionForm(token), &dto,
		WithBasicAuth(c.clientID, c.clientSecret),
	)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("introspecting token: %v: %w", err, domain.ErrUnavailable)
	}
	return identity.ToIdentity(&dto, c.now())
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client].
func (c *IntrospectionClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the identity provider's availability from the circuit
// breaker state. No network call is made.
func (c *IntrospectionClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
