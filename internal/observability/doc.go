// Package observability provides logging and metrics for the router.
//
// # Logging
//
// Structured logging is backed by zap behind a small Logger interface
// so that components can be tested with NopLogger and so the binding
// to zap stays in one place:
//
//	logger, err := observability.NewLogger(observability.LogConfig{Level: "info"})
//	logger.Info("routes installed", observability.Int("count", n))
//
// # Metrics
//
// Request metrics live on a dedicated Prometheus registry served by a
// separate metrics listener:
//
//	m := observability.NewMetrics("avarouter")
//	m.RecordRequest("/users/:id", 200, duration)
//	http.Handle("/metrics", m.Handler())
package observability
