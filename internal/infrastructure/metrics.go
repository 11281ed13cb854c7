package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ConversionMetrics holds the instruments recorded once per conversion
type ConversionMetrics struct {
	InputBytes        metric.Int64Counter
	Lines             metric.Int64Counter
	RowsWritten       metric.Int64Counter
	SegmentsDiscarded metric.Int64Counter
	Duration          metric.Float64Histogram
}

// ConversionObservation is what a finished conversion reports
type ConversionObservation struct {
	Format            string
	InputBytes        int64
	Lines             int
	Rows              int
	SegmentsDiscarded int
	Duration          time.Duration
	Err               error
}

// NewConversionMetrics creates the conversion instruments on meter
func NewConversionMetrics(meter metric.Meter) (*ConversionMetrics, error) {
	inputBytes, err := meter.Int64Counter(
		"watchlist_input_bytes",
		metric.WithDescription("Bytes of watchlist input read"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	lines, err := meter.Int64Counter(
		"watchlist_lines",
		metric.WithDescription("Non-empty lines after normalization"),
	)
	if err != nil {
		return nil, err
	}

	rows, err := meter.Int64Counter(
		"watchlist_rows_written",
		metric.WithDescription("Exchange/ticker rows written"),
	)
	if err != nil {
		return nil, err
	}

	discarded, err := meter.Int64Counter(
		"watchlist_segments_discarded",
		metric.WithDescription("Line segments that produced no row"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"watchlist_conversion_duration_seconds",
		metric.WithDescription("Conversion duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ConversionMetrics{
		InputBytes:        inputBytes,
		Lines:             lines,
		RowsWritten:       rows,
		SegmentsDiscarded: discarded,
		Duration:          duration,
	}, nil
}

// Record adds one conversion to the instruments
func (m *ConversionMetrics) Record(ctx context.Context, obs ConversionObservation) {
	if m == nil {
		return
	}

	status := "success"
	if obs.Err != nil {
		status = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("format", obs.Format),
		attribute.String("status", status),
	)

	m.InputBytes.Add(ctx, obs.InputBytes, attrs)
	m.Lines.Add(ctx, int64(obs.Lines), attrs)
	m.RowsWritten.Add(ctx, int64(obs.Rows), attrs)
	m.SegmentsDiscarded.Add(ctx, int64(obs.SegmentsDiscarded), attrs)
	m.Duration.Record(ctx, obs.Duration.Seconds(), attrs)
}
