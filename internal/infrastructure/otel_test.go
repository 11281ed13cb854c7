package infrastructure

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchlistcli/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestInitializeTelemetry_Disabled(t *testing.T) {
	tel, err := InitializeTelemetry(config.Default().Telemetry, testLogger())
	require.NoError(t, err)

	assert.Nil(t, tel.TracerProvider)
	assert.Nil(t, tel.MeterProvider)
	require.NotNil(t, tel.Tracer)
	require.NotNil(t, tel.Metrics)

	ctx, span := tel.Tracer.Start(context.Background(), "noop")
	assert.False(t, span.IsRecording())
	tel.Metrics.Record(ctx, ConversionObservation{Rows: 3})
	span.End()

	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestInitializeTelemetry_Tracing(t *testing.T) {
	cfg := config.Default().Telemetry
	cfg.Tracing = true

	tel, err := InitializeTelemetry(cfg, testLogger())
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)

	ctx, span := tel.Tracer.Start(context.Background(), "convert")
	assert.True(t, span.IsRecording())
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	RecordError(ctx, errors.New("boom"))
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, tel.Shutdown(ctx))
}

func TestInitializeTelemetry_TracingExporterNone(t *testing.T) {
	cfg := config.Default().Telemetry
	cfg.Tracing = true
	cfg.TraceExporter = "none"

	tel, err := InitializeTelemetry(cfg, testLogger())
	require.NoError(t, err)
	assert.Nil(t, tel.TracerProvider)
}

func TestInitializeTelemetry_MetricsTextfile(t *testing.T) {
	textfile := filepath.Join(t.TempDir(), "textfile", "watchlist.prom")
	cfg := config.Default().Telemetry
	cfg.MetricsTextfile = textfile

	tel, err := InitializeTelemetry(cfg, testLogger())
	require.NoError(t, err)
	require.NotNil(t, tel.MeterProvider)

	tel.Metrics.Record(context.Background(), ConversionObservation{
		Format:            "csv",
		InputBytes:        42,
		Lines:             4,
		Rows:              5,
		SegmentsDiscarded: 1,
		Duration:          15 * time.Millisecond,
	})

	require.NoError(t, tel.Shutdown(context.Background()))

	content, err := os.ReadFile(textfile)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "watchlist_input_bytes_total")
	assert.Contains(t, text, "watchlist_lines_total")
	assert.Contains(t, text, "watchlist_rows_written_total")
	assert.Contains(t, text, "watchlist_segments_discarded_total")
	assert.Contains(t, text, "watchlist_conversion_duration_seconds_bucket")
	assert.Contains(t, text, `format="csv"`)
	assert.NotContains(t, text, `"watchlist.`)
}

func TestRecordError_NoSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordError(context.Background(), errors.New("no span"))
	})
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestConversionMetrics_NilSafe(t *testing.T) {
	var m *ConversionMetrics
	assert.NotPanics(t, func() {
		m.Record(context.Background(), ConversionObservation{})
	})
}
