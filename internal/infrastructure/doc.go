// Package infrastructure provides the logging and telemetry plumbing shared by
// the watchlist commands.
//
// Logging is structured JSON through log/slog. Every run carries a UUID trace
// ID in its context and the handler copies it onto each record:
//
//	logger, err := infrastructure.InitializeLogger(cfg.Logging)
//	ctx := infrastructure.ContextWithTraceID(context.Background())
//	logger.InfoContext(ctx, "Converting watchlist")
//
// Telemetry is opt-in. Tracing exports spans to stderr; metrics are collected
// through OpenTelemetry into a Prometheus registry and written as a
// node_exporter textfile when the run ends.
package infrastructure
