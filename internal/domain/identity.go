package domain

import "context"

// Identity is the authenticated caller, as resolved by the identity provider.
type Identity struct {
	// Subject is the stable user reference recorded as a recipe's owner.
	Subject  string
	Username string
}

type identityKey struct{}

// WithIdentity returns a child context carrying the caller identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller identity stored in ctx, if any.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
