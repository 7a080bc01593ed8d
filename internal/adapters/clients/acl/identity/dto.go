// Package identity implements the Anti-Corruption Layer translators for the
// identity provider's RFC 7662 token introspection resource.
package identity

// IntrospectionResponseDTO matches the provider's introspection response.
// Only Active is guaranteed; every other member is optional.
type IntrospectionResponseDTO struct {
	Active    bool   `json:"active"`
	Subject   string `json:"sub,omitempty"`
	Username  string `json:"username,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	Scope     string `json:"scope,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	Issuer    string `json:"iss,omitempty"`
}
