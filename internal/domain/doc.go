// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/ingredient, domain/recipe).
// This root package holds sentinel errors, validation types, pagination and the
// caller identity that are shared across all entities.
package domain
