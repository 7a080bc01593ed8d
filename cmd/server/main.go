// Command server runs the recipebox HTTP service: the REST API under /api,
// GraphQL at /graphql and the health probes. APP_PROFILE selects the
// configuration profile. SIGINT or SIGTERM drains in-flight requests before
// the store and telemetry are closed.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/recipebox/internal/adapters/http"
	"github.com/jsamuelsen11/recipebox/internal/adapters/store"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log, os.Stderr)

	providers, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flush(logger, providers)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	wire(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	st := do.MustInvoke[*store.Store](injector)
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("recipebox started",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
		slog.String("auth_mode", cfg.Auth.Mode),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Serve() }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-signals:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serveErr

	logger.Info("shutdown complete")
	return nil
}

func flush(logger *slog.Logger, providers *telemetry.Providers) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
