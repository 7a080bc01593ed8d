// Package config provides configuration loading and validation for the service.
// Configuration is loaded from built-in defaults, YAML files and environment
// variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ReadinessTimeout bounds each dependency check behind /health/ready.
	ReadinessTimeout time.Duration `koanf:"readiness_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig selects the relational store and tunes its connection pool.
//
// Driver is one of "postgres" (bun pgdriver), "pgx" (jackc/pgx stdlib) or
// "sqlite" (modernc.org/sqlite). For sqlite the DSN is a file path or
// ":memory:".
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// AuthConfig selects how bearer credentials are verified.
// Mode is "jwt" (local signature check) or "introspect" (ask the identity provider).
type AuthConfig struct {
	Mode          string              `koanf:"mode"`
	JWT           JWTConfig           `koanf:"jwt"`
	Introspection IntrospectionConfig `koanf:"introspection"`
}

// JWTConfig holds settings for locally verified HMAC-signed tokens.
type JWTConfig struct {
	Secret   string        `koanf:"secret"`
	Issuer   string        `koanf:"issuer"`
	Audience string        `koanf:"audience"`
	Leeway   time.Duration `koanf:"leeway"`
}

// IntrospectionConfig holds settings for the identity provider's token
// introspection endpoint.
type IntrospectionConfig struct {
	Client       ClientConfig `koanf:"client"`
	Path         string       `koanf:"path"`
	ClientID     string       `koanf:"client_id"`
	ClientSecret string       `koanf:"client_secret"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. Zero RequestsPerSecond disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`

	// SampleRatio is the fraction of new traces sampled, 0 through 1.
	// Requests continuing a remote trace follow the caller's decision.
	SampleRatio float64 `koanf:"sample_ratio"`
}
