package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/recipebox/internal/adapters/auth"
	"github.com/jsamuelsen11/recipebox/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/recipebox/internal/adapters/http"
	"github.com/jsamuelsen11/recipebox/internal/adapters/http/graph"
	"github.com/jsamuelsen11/recipebox/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/recipebox/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/recipebox/internal/adapters/store"
	"github.com/jsamuelsen11/recipebox/internal/app"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/platform/health"
	"github.com/jsamuelsen11/recipebox/internal/platform/httpclient"
	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

const identityProvider = "identity-provider"

// wire registers every provider on injector. Nothing is constructed until
// the server is invoked.
func wire(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	provideStorage(injector, cfg, logger)
	provideAuth(injector, cfg, logger)
	provideHTTP(injector, cfg, logger)
}

func provideStorage(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*store.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return store.Open(context.Background(), &cfg.Database, logger, store.WithMetrics(metrics))
	})
	do.Provide(injector, func(i do.Injector) (ports.IngredientService, error) {
		return app.NewIngredientService(do.MustInvoke[*store.Store](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.RecipeService, error) {
		return app.NewRecipeService(do.MustInvoke[*store.Store](i), logger), nil
	})
}

func provideAuth(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*acl.IntrospectionClient, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Auth.Introspection.Client, identityProvider, metrics, logger)
		return acl.NewIntrospectionClient(client, cfg.Auth.Introspection, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.IdentityVerifier, error) {
		var verifier ports.IdentityVerifier
		switch cfg.Auth.Mode {
		case "introspect":
			verifier = do.MustInvoke[*acl.IntrospectionClient](i)
		case "jwt":
			verifier = auth.NewJWTVerifier(cfg.Auth.JWT)
		default:
			return nil, fmt.Errorf("unsupported auth mode %q", cfg.Auth.Mode)
		}
		return auth.Instrumented(verifier, cfg.Auth.Mode, do.MustInvoke[*telemetry.Metrics](i)), nil
	})
}

func provideHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(cfg.Server.ReadinessTimeout)
		registry.Register(do.MustInvoke[*store.Store](i))
		if cfg.Auth.Mode == "introspect" {
			registry.Register(do.MustInvoke[*acl.IntrospectionClient](i))
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*graph.Handler, error) {
		schema, err := graph.NewSchema(
			do.MustInvoke[ports.IngredientService](i),
			do.MustInvoke[ports.RecipeService](i),
		)
		if err != nil {
			return nil, fmt.Errorf("building graphql schema: %w", err)
		}
		return graph.NewHandler(schema), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewIngredientHandler(do.MustInvoke[ports.IngredientService](i)),
			handlers.NewRecipeHandler(do.MustInvoke[ports.RecipeService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			do.MustInvoke[*graph.Handler](i),
			middleware.Authenticate(do.MustInvoke[ports.IdentityVerifier](i)),
			middleware.Recovery(logger),
			middleware.RequestIDs(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
