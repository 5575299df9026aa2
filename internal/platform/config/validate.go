package config

import (
	"errors"
	"fmt"
	"slices"
)

// Accepted enumerations.
var (
	logLevels      = []string{"debug", "info", "warn", "error"}
	logFormats     = []string{"json", "text"}
	exporters      = []string{"stdout", "otlp"}
	authProviders  = []string{AuthProviderHeader, AuthProviderSession}
	deletePolicies = []string{"cascade", "unfile"}
)

// problems collects every violation so one failed start reports them all.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate reports every invalid setting joined into one error.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	cl := c.Client
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.check(t.Exporter != "otlp" || t.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	p.check(c.Database.Path != "", "database.path must not be empty")
	p.check(c.Database.BusyTimeout >= 0, "database.busy_timeout must not be negative")

	p.oneOf("auth.provider", c.Auth.Provider, authProviders)
	switch c.Auth.Provider {
	case AuthProviderHeader:
		p.check(c.Auth.Header != "", "auth.header must not be empty when provider is header")
	case AuthProviderSession:
		p.check(c.Auth.SessionPath != "", "auth.session_path must not be empty when provider is session")
		// A lookup that outlives the request timeout can never succeed.
		p.check(cl.Timeout < s.WriteTimeout,
			"client.timeout (%s) must be shorter than server.write_timeout (%s) when provider is session",
			cl.Timeout, s.WriteTimeout)
	}

	p.oneOf("board.column_delete_policy", c.Board.ColumnDeletePolicy, deletePolicies)

	return errors.Join(p...)
}
