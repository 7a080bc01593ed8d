// Package requestmeta carries the identifiers of an inbound request through
// its context so that log lines and outbound calls can repeat them.
package requestmeta

import "context"

// Header names under which the identifiers travel.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// Meta identifies one inbound request. RequestID is unique per hop;
// CorrelationID is shared by every hop of a single user action.
type Meta struct {
	RequestID     string
	CorrelationID string
}

type metaKey struct{}

// With returns a copy of ctx carrying m.
func With(ctx context.Context, m Meta) context.Context {
	return context.WithValue(ctx, metaKey{}, m)
}

// From returns the Meta stored in ctx, or the zero Meta.
func From(ctx context.Context) Meta {
	m, _ := ctx.Value(metaKey{}).(Meta)
	return m
}

// Headers returns the non-empty identifiers keyed by header name.
func (m Meta) Headers() map[string]string {
	h := make(map[string]string, 2)
	if m.RequestID != "" {
		h[HeaderRequestID] = m.RequestID
	}
	if m.CorrelationID != "" {
		h[HeaderCorrelationID] = m.CorrelationID
	}
	return h
}
