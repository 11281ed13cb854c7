package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"watchlistcli/internal/config"
)

// contextKey is a type for context keys
type contextKey string

// TraceIDContextKey is the key for storing the run's trace ID in context
const TraceIDContextKey contextKey = "trace_id"

// processLog is the logger of the running command and the log file it owns
var processLog struct {
	mu       sync.Mutex
	logger   *slog.Logger
	file     *os.File
	fallback *slog.Logger
}

func init() {
	processLog.fallback = slog.Default()
}

// InitializeLogger builds the process logger from cfg and installs it as the
// slog default. Later calls return the first logger unchanged.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	processLog.mu.Lock()
	defer processLog.mu.Unlock()

	if processLog.logger != nil {
		return processLog.logger, nil
	}

	out, file, err := logDestination(cfg)
	if err != nil {
		return nil, err
	}

	processLog.logger = NewLogger(out, &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     parseLogLevel(cfg.Level),
	})
	processLog.file = file
	slog.SetDefault(processLog.logger)
	return processLog.logger, nil
}

// GetLogger returns the process logger, or the slog default before
// InitializeLogger has run.
func GetLogger() *slog.Logger {
	processLog.mu.Lock()
	defer processLog.mu.Unlock()
	if processLog.logger == nil {
		return slog.Default()
	}
	return processLog.logger
}

// logDestination resolves cfg.Output. stdout only carries logs when asked
// for; it is otherwise left to user-facing messages.
func logDestination(cfg config.LoggingConfig) (io.Writer, *os.File, error) {
	output := strings.ToLower(cfg.Output)
	if output != "file" && output != "both" {
		if output == "stdout" {
			return os.Stdout, nil, nil
		}
		return os.Stderr, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if output == "both" {
		return io.MultiWriter(os.Stderr, file), file, nil
	}
	return file, file, nil
}

// NewLogger builds a JSON logger on w that carries the context trace ID.
func NewLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	return slog.New(traceHandler{slog.NewJSONHandler(w, opts)})
}

// traceHandler copies the context trace ID onto every record
type traceHandler struct {
	slog.Handler
}

func (h traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID := GetTraceID(ctx); traceID != "" {
		r.AddAttrs(slog.String("trace_id", traceID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceHandler{h.Handler.WithAttrs(attrs)}
}

func (h traceHandler) WithGroup(name string) slog.Handler {
	return traceHandler{h.Handler.WithGroup(name)}
}

// parseLogLevel maps a config level to slog; unknown values mean info.
func parseLogLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithTraceID adds a trace ID to the context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDContextKey, traceID)
}

// GetTraceID retrieves the trace ID from context
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDContextKey).(string)
	return traceID
}

// CloseLogFile closes the log file opened by InitializeLogger, if any.
func CloseLogFile() error {
	processLog.mu.Lock()
	defer processLog.mu.Unlock()
	return closeLogFileLocked()
}

func closeLogFileLocked() error {
	if processLog.file == nil {
		return nil
	}
	err := processLog.file.Close()
	processLog.file = nil
	return err
}

// ResetLoggerForTesting forgets the process logger and restores the slog
// default that was in place at startup.
func ResetLoggerForTesting() {
	processLog.mu.Lock()
	defer processLog.mu.Unlock()
	closeLogFileLocked()
	processLog.logger = nil
	slog.SetDefault(processLog.fallback)
}
