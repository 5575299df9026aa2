// Package main is the entry point for the noteboard service. It wires the
// board store, services and HTTP adapter using samber/do v2, starts the
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/noteboard/internal/adapters/http"
	"github.com/jsamuelsen11/noteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/noteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/noteboard/internal/adapters/identity"
	"github.com/jsamuelsen11/noteboard/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/noteboard/internal/app"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/platform/config"
	"github.com/jsamuelsen11/noteboard/internal/platform/health"
	"github.com/jsamuelsen11/noteboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/noteboard/internal/platform/logging"
	"github.com/jsamuelsen11/noteboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, config.WithOverrideFile(os.Getenv("APP_CONFIG_FILE")))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[*sqlite.Store](injector)

	// Register health checkers after the graph is wired. The session
	// service is only a dependency when it resolves identities.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	if cfg.Auth.Provider == config.AuthProviderSession {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}

	logger.Info("board store ready",
		slog.String("path", cfg.Database.Path),
		slog.String("auth_provider", cfg.Auth.Provider),
		slog.String("column_delete_policy", cfg.Board.ColumnDeletePolicy),
	)

	if err := server.Listen(); err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := store.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := providers.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(ctx, sqlite.Options{
			Path:        cfg.Database.Path,
			BusyTimeout: cfg.Database.BusyTimeout,
		})
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardStore, error) {
		return do.MustInvoke[*sqlite.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ColumnService, error) {
		policy, err := column.ParseDeletePolicy(cfg.Board.ColumnDeletePolicy)
		if err != nil {
			return nil, err
		}
		store := do.MustInvoke[ports.BoardStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewColumnService(store, policy, positionRecorder(metrics), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NoteService, error) {
		store := do.MustInvoke[ports.BoardStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewNoteService(store, positionRecorder(metrics), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		store := do.MustInvoke[ports.BoardStore](i)
		return app.NewBoardService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "session-service", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.IdentityProvider, error) {
		switch cfg.Auth.Provider {
		case config.AuthProviderSession:
			client := do.MustInvoke[*httpclient.Client](i)
			return identity.NewSessionProvider(client, cfg.Auth.SessionPath, logger), nil
		default:
			return identity.NewHeaderProvider(cfg.Auth.Header), nil
		}
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ColumnHandler, error) {
		return handlers.NewColumnHandler(do.MustInvoke[ports.ColumnService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.NoteHandler, error) {
		return handlers.NewNoteHandler(do.MustInvoke[ports.NoteService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		return handlers.NewBoardHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Handlers{
			Column: do.MustInvoke[*handlers.ColumnHandler](i),
			Note:   do.MustInvoke[*handlers.NoteHandler](i),
			Board:  do.MustInvoke[*handlers.BoardHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
		}
		provider := do.MustInvoke[ports.IdentityProvider](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var trusted []string
		if hp, ok := provider.(*identity.HeaderProvider); ok {
			trusted = append(trusted, hp.Header())
		}

		return adapthttp.NewRouter(routes, middleware.Authenticate(provider),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger, trusted...),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// positionRecorder keeps a nil *telemetry.Metrics from becoming a non-nil
// interface value.
func positionRecorder(m *telemetry.Metrics) app.PositionRecorder {
	if m == nil {
		return nil
	}
	return m
}
