package ports

import "context"

// HealthChecker is a dependency the readiness probe consults, such as the
// board store or the session service client.
type HealthChecker interface {
	// Name labels the checker in readiness output.
	Name() string
	// HealthCheck returns nil when the dependency is usable. It must honour
	// ctx, since the registry bounds every check with a deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness probe.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)
	// CheckAll returns each checker's result keyed by name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
