package config

const (
	defaultServerPort = 8080

	defaultDBMaxOpenConns = 10
	defaultDBMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":              "0.0.0.0",
		"server.port":              defaultServerPort,
		"server.read_timeout":      "5s",
		"server.write_timeout":     "10s",
		"server.idle_timeout":      "120s",
		"server.request_timeout":   "30s",
		"server.readiness_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            "sqlite",
		"database.dsn":               "recipebox.db",
		"database.max_open_conns":    defaultDBMaxOpenConns,
		"database.max_idle_conns":    defaultDBMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,

		"auth.mode":         "jwt",
		"auth.jwt.secret":   "",
		"auth.jwt.issuer":   "",
		"auth.jwt.audience": "",
		"auth.jwt.leeway":   "30s",

		"auth.introspection.path":                                   "/oauth/introspect",
		"auth.introspection.client_id":                              "",
		"auth.introspection.client_secret":                          "",
		"auth.introspection.client.base_url":                        "http://localhost:9000",
		"auth.introspection.client.timeout":                         "5s",
		"auth.introspection.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"auth.introspection.client.retry.initial_interval":          "100ms",
		"auth.introspection.client.retry.max_interval":              "2s",
		"auth.introspection.client.retry.multiplier":                defaultRetryMultiplier,
		"auth.introspection.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"auth.introspection.client.circuit_breaker.timeout":         "30s",
		"auth.introspection.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"auth.introspection.client.rate_limit.requests_per_second":  0,
		"auth.introspection.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "recipebox",
		"telemetry.sample_ratio": 1.0,
	}
}
