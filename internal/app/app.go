package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"watchlistcli/internal/config"
	apperrors "watchlistcli/internal/errors"
	"watchlistcli/internal/exporter"
	"watchlistcli/internal/infrastructure"
)

// shutdownTimeout bounds the telemetry flush at the end of a run
const shutdownTimeout = 5 * time.Second

// Invocation is a parsed command line
type Invocation struct {
	ConfigFile      string
	Format          string
	MetricsTextfile string
	ShowVersion     bool
	InputPath       string
	OutputPath      string
}

// App is one configured run of the watchlist command
type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Option configures an App
type Option func(*App)

// WithLogger makes the app log to logger instead of initializing the
// process logger from configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// New creates an app printing user messages to stdout and diagnostics to stderr
func New(stdout, stderr io.Writer, opts ...Option) *App {
	a := &App{stdout: stdout, stderr: stderr}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command with args (without the program name) and returns
// the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	return New(stdout, stderr, opts...).Run(ctx, args)
}

// Run executes the command with args and returns the process exit status
func (a *App) Run(ctx context.Context, args []string) int {
	inv, err := a.parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		return apperrors.ExitOK
	}
	if err != nil {
		return apperrors.ExitCode(err)
	}
	if inv.ShowVersion {
		fmt.Fprintf(a.stdout, "%s %s\n", config.AppName, config.AppVersion)
		return apperrors.ExitOK
	}

	cfg, err := a.loadConfig(inv)
	if err != nil {
		a.printError(err)
		return apperrors.ExitCode(err)
	}

	logger := a.logger
	if logger == nil {
		logger, err = infrastructure.InitializeLogger(cfg.Logging)
		if err != nil {
			cerr := apperrors.NewConfigError("failed to initialize logger", err)
			a.printError(cerr)
			return apperrors.ExitCode(cerr)
		}
		defer infrastructure.CloseLogFile()
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	logger.InfoContext(ctx, "Starting watchlist conversion",
		slog.String("version", config.AppVersion),
		slog.String("config_file", inv.ConfigFile),
		slog.String("format", cfg.Export.Format))

	telemetry, err := infrastructure.InitializeTelemetry(cfg.Telemetry, logger)
	if err != nil {
		logger.WarnContext(ctx, "Telemetry disabled", slog.String("error", err.Error()))
		telemetry, _ = infrastructure.InitializeTelemetry(config.TelemetryConfig{}, logger)
	}
	defer a.shutdownTelemetry(ctx, telemetry, logger)

	result, err := a.convert(ctx, inv, cfg, telemetry, logger)
	if err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Conversion failed",
			slog.String("input", inv.InputPath),
			slog.String("output", inv.OutputPath),
			slog.String("error_type", string(apperrors.TypeOf(err))))
		a.printError(err)
		return apperrors.ExitCode(err)
	}

	fmt.Fprintf(a.stdout, "Wrote %d rows to %s\n", result.Rows, result.OutputPath)
	return apperrors.ExitOK
}

func (a *App) convert(ctx context.Context, inv *Invocation, cfg *config.Config, telemetry *infrastructure.Telemetry, logger *slog.Logger) (*Result, error) {
	input, err := config.ExpandPath(inv.InputPath)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to resolve input path", err)
	}
	output, err := config.ExpandPath(inv.OutputPath)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to resolve output path", err)
	}

	return NewConverter(cfg.Export, telemetry, logger).Convert(ctx, input, output)
}

// loadConfig loads configuration and applies flag overrides on top of it
func (a *App) loadConfig(inv *Invocation) (*config.Config, error) {
	cfg, err := config.Load(config.ResolveConfigFile(inv.ConfigFile))
	if err != nil {
		return nil, apperrors.NewConfigError("invalid configuration", err)
	}

	if inv.Format != "" {
		cfg.Export.Format = inv.Format
	}
	if inv.MetricsTextfile != "" {
		cfg.Telemetry.MetricsTextfile = inv.MetricsTextfile
	}

	// Flag values bypass config validation
	if _, err := exporter.ResolveFormat(inv.OutputPath, cfg.Export.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (a *App) shutdownTelemetry(ctx context.Context, telemetry *infrastructure.Telemetry, logger *slog.Logger) {
	if telemetry == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := telemetry.Shutdown(ctx); err != nil {
		logger.WarnContext(ctx, "Telemetry shutdown failed", slog.String("error", err.Error()))
	}
}

func (a *App) printError(err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintln(a.stderr, appErr.UserMessage())
		return
	}
	fmt.Fprintln(a.stderr, err)
}
