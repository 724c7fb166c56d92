package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vyrodovalexey/avarouter/internal/config"
	"github.com/vyrodovalexey/avarouter/internal/dispatch"
	"github.com/vyrodovalexey/avarouter/internal/middleware"
	"github.com/vyrodovalexey/avarouter/internal/observability"
	"github.com/vyrodovalexey/avarouter/internal/router"
)

// application holds all application components.
type application struct {
	store         *router.Store
	dispatcher    *dispatch.Dispatcher
	server        *http.Server
	metricsServer *http.Server
	metrics       *observability.Metrics
	config        *config.Config
	logger        observability.Logger
}

// initApplication initializes all application components.
func initApplication(cfg *config.Config, logger observability.Logger) *application {
	metrics := observability.NewMetrics("avarouter")
	metrics.SetBuildInfo(version, gitCommit, buildTime)

	store := router.NewStore(
		router.WithCacheLimit(cfg.Router.CacheLimit),
		router.WithLogger(logger.With(observability.String("component", "router"))),
	)

	if err := store.SetRoutesOrdered(defaultRoutes()); err != nil {
		logger.Fatal("failed to register routes", observability.Error(err))
	}

	dispatcher := dispatch.New(store,
		dispatch.WithLogger(logger.With(observability.String("component", "dispatch"))),
		dispatch.WithMetrics(metrics),
	)

	handler := buildHandlerChain(dispatcher, cfg, logger)

	app := &application{
		store:      store,
		dispatcher: dispatcher,
		metrics:    metrics,
		config:     cfg,
		logger:     logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout.Duration(),
			WriteTimeout: cfg.Server.WriteTimeout.Duration(),
			IdleTimeout:  cfg.Server.IdleTimeout.Duration(),
		},
	}

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		app.metricsServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return app
}

// buildHandlerChain wraps the dispatcher in the transport middleware.
// Order matters: request ID first so recovery and logging can report
// it, rate limiting last so rejected requests are still logged.
func buildHandlerChain(dispatcher http.Handler, cfg *config.Config, logger observability.Logger) http.Handler {
	handler := dispatcher

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.PerClient, logger)
		handler = limiter.Middleware()(handler)
	}

	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID()(handler)

	return handler
}

// applyConfig applies a reloaded configuration to the running
// application. Only runtime tunables are applied; listener addresses
// require a restart.
func (app *application) applyConfig(cfg *config.Config) {
	if cfg.Router.CacheLimit != app.config.Router.CacheLimit {
		app.store.SetCacheLimit(cfg.Router.CacheLimit)
	}
	app.config = cfg
}
