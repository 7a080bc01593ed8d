package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Database.validate(&p)
	c.Auth.validate(&p)
	c.Telemetry.validate(&p)
	return p.err()
}

// problems collects validation failures in the order they were found.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got),
		"%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p *problems) err() error {
	return errors.Join(*p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.RequestTimeout >= 0, "server.request_timeout must not be negative")
	p.check(s.ReadinessTimeout >= 0, "server.readiness_timeout must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (d *DatabaseConfig) validate(p *problems) {
	p.oneOf("database.driver", d.Driver, "postgres", "pgx", "sqlite")
	p.check(d.DSN != "", "database.dsn must not be empty")
	p.check(d.MaxOpenConns >= 0, "database.max_open_conns must not be negative, got %d", d.MaxOpenConns)
	p.check(d.MaxIdleConns >= 0, "database.max_idle_conns must not be negative, got %d", d.MaxIdleConns)
}

func (a *AuthConfig) validate(p *problems) {
	switch a.Mode {
	case "jwt":
		p.check(a.JWT.Secret != "", "auth.jwt.secret must not be empty when auth.mode is jwt")
	case "introspect":
		a.Introspection.Client.validate(p, "auth.introspection.client")
		p.check(a.Introspection.Path != "", "auth.introspection.path must not be empty")
	default:
		p.oneOf("auth.mode", a.Mode, "jwt", "introspect")
	}
}

func (cl *ClientConfig) validate(p *problems, prefix string) {
	p.check(cl.BaseURL != "", "%s.base_url must not be empty", prefix)
	p.check(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.check(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", prefix)
	p.check(rl.RequestsPerSecond <= 0 || rl.BurstSize >= 1,
		"%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", prefix)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	p.check(t.SampleRatio >= 0 && t.SampleRatio <= 1,
		"telemetry.sample_ratio must be between 0 and 1, got %v", t.SampleRatio)
}
