// Package ports holds the interfaces the layers meet at. The REST and GraphQL
// facades call the service ports; the app services drive the Store port; the
// authentication gate calls IdentityVerifier; the readiness probe reads the
// HealthRegistry.
package ports
