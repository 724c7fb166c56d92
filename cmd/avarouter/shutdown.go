package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vyrodovalexey/avarouter/internal/config"
	"github.com/vyrodovalexey/avarouter/internal/observability"
)

// run starts the HTTP listeners and the config watcher, then blocks
// until a termination signal arrives and shuts everything down.
func run(app *application, configPath string, logger observability.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server listening",
			observability.String("addr", app.server.Addr))
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if app.metricsServer != nil {
		go func() {
			logger.Info("metrics server listening",
				observability.String("addr", app.metricsServer.Addr))
			if err := app.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	watcher := startConfigWatcher(ctx, app, configPath, logger)
	if watcher != nil {
		defer func() { _ = watcher.Stop() }()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal",
			observability.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", observability.Error(err))
	}

	shutdown(app, logger)
}

// startConfigWatcher begins watching the config file for runtime
// tunables. A watcher failure is not fatal; the service keeps running
// with the configuration it started with.
func startConfigWatcher(ctx context.Context, app *application, configPath string, logger observability.Logger) *config.Watcher {
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}

	watcher, err := config.NewWatcher(configPath, app.applyConfig,
		config.WithWatcherLogger(logger.With(observability.String("component", "config-watcher"))),
		config.WithErrorCallback(func(err error) {
			logger.Warn("config reload rejected", observability.Error(err))
		}),
	)
	if err != nil {
		logger.Warn("failed to create config watcher", observability.Error(err))
		return nil
	}

	if err := watcher.Start(ctx); err != nil {
		logger.Warn("failed to start config watcher", observability.Error(err))
		return nil
	}

	return watcher
}

// shutdown gracefully stops the HTTP listeners.
func shutdown(app *application, logger observability.Logger) {
	timeout := app.config.Server.ShutdownTimeout.Duration()
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger.Info("shutting down",
		observability.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", observability.Error(err))
	}

	if app.metricsServer != nil {
		if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", observability.Error(err))
		}
	}

	logger.Info("shutdown complete")
}
