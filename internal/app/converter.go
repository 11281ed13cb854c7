package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"watchlistcli/internal/config"
	"watchlistcli/internal/exporter"
	"watchlistcli/internal/files"
	"watchlistcli/internal/infrastructure"
	"watchlistcli/internal/validation"
	"watchlistcli/internal/watchlist"
)

// Result describes one finished conversion
type Result struct {
	InputPath  string
	OutputPath string
	InputKind  files.SourceKind
	Format     string
	InputBytes int64
	Stats      watchlist.Stats
	Rows       int
	Duration   time.Duration
}

// Converter runs the read, normalize, extract and write pipeline
type Converter struct {
	export    config.ExportConfig
	files     *files.Manager
	validator *validation.FileValidator
	telemetry *infrastructure.Telemetry
	logger    *slog.Logger
}

// NewConverter creates a converter writing with the given export settings
func NewConverter(export config.ExportConfig, telemetry *infrastructure.Telemetry, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		export:    export,
		files:     files.NewManager(logger),
		validator: validation.NewFileValidator(logger),
		telemetry: telemetry,
		logger:    infrastructure.WithComponent(logger, "converter"),
	}
}

func (c *Converter) tracer() trace.Tracer {
	if c.telemetry == nil || c.telemetry.Tracer == nil {
		return tracenoop.NewTracerProvider().Tracer(infrastructure.InstrumentationName)
	}
	return c.telemetry.Tracer
}

// Convert reads inputPath and writes its pairs to outputPath
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string) (result *Result, err error) {
	start := time.Now()
	result = &Result{InputPath: inputPath, OutputPath: outputPath}

	ctx, span := c.tracer().Start(ctx, "watchlist.convert",
		trace.WithAttributes(
			attribute.String("watchlist.input", inputPath),
			attribute.String("watchlist.output", outputPath),
		))
	defer func() {
		result.Duration = time.Since(start)
		if err != nil {
			infrastructure.RecordError(ctx, err)
		}
		span.SetAttributes(attribute.Int("watchlist.rows", result.Rows))
		span.End()

		if c.telemetry != nil {
			c.telemetry.Metrics.Record(ctx, infrastructure.ConversionObservation{
				Format:            result.Format,
				InputBytes:        result.InputBytes,
				Lines:             result.Stats.Lines,
				Rows:              result.Rows,
				SegmentsDiscarded: result.Stats.Discarded,
				Duration:          result.Duration,
				Err:               err,
			})
		}
	}()

	if err := c.validator.ValidateInputFile(inputPath); err != nil {
		return result, err
	}

	out, err := exporter.New(outputPath, c.export, c.files, c.logger)
	if err != nil {
		return result, err
	}
	result.Format = out.Format()

	if err := c.validator.ValidateOutputFile(outputPath); err != nil {
		return result, err
	}

	src, err := c.read(ctx, inputPath)
	if err != nil {
		return result, err
	}
	result.InputKind = src.Kind
	result.InputBytes = src.Size

	pairs, stats := c.transform(ctx, src.Text)
	result.Stats = stats

	c.logger.InfoContext(ctx, "Watchlist parsed",
		slog.String("input", inputPath),
		slog.String("kind", string(src.Kind)),
		slog.Int("lines", stats.Lines),
		slog.Int("segments", stats.Segments),
		slog.Int("discarded", stats.Discarded),
		slog.Int("pairs", len(pairs)))

	rows, err := c.write(ctx, out, outputPath, pairs)
	if err != nil {
		return result, err
	}
	result.Rows = rows

	c.logger.InfoContext(ctx, "Conversion completed",
		slog.String("output", outputPath),
		slog.String("format", result.Format),
		slog.Int("rows", rows),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

func (c *Converter) read(ctx context.Context, path string) (*files.Source, error) {
	_, span := c.tracer().Start(ctx, "watchlist.read")
	defer span.End()

	src, err := c.files.ReadWatchlist(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("watchlist.kind", string(src.Kind)),
		attribute.Int64("watchlist.bytes", src.Size))
	return src, nil
}

func (c *Converter) transform(ctx context.Context, text string) ([]watchlist.Pair, watchlist.Stats) {
	_, span := c.tracer().Start(ctx, "watchlist.normalize")
	lines := watchlist.Normalize(text)
	span.SetAttributes(
		attribute.Int("watchlist.lines", len(lines)),
		attribute.Bool("watchlist.comma_list", watchlist.IsCommaList(watchlist.UnifyLineEndings(text))))
	span.End()

	_, span = c.tracer().Start(ctx, "watchlist.extract")
	pairs, stats := watchlist.ExtractWithStats(lines)
	span.SetAttributes(
		attribute.Int("watchlist.segments", stats.Segments),
		attribute.Int("watchlist.discarded", stats.Discarded))
	span.End()

	return pairs, stats
}

func (c *Converter) write(ctx context.Context, out exporter.Exporter, path string, pairs []watchlist.Pair) (int, error) {
	_, span := c.tracer().Start(ctx, "watchlist.write",
		trace.WithAttributes(attribute.String("watchlist.format", out.Format())))
	defer span.End()

	rows, err := out.Export(path, pairs)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return rows, nil
}
