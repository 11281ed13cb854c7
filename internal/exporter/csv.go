package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"watchlistcli/internal/config"
	apperrors "watchlistcli/internal/errors"
	"watchlistcli/internal/files"
	"watchlistcli/internal/watchlist"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	options WriteOptions
	files   *files.Manager
	logger  *slog.Logger
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	UseCRLF   bool
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(cfg config.ExportConfig, manager *files.Manager, logger *slog.Logger) *CSVWriter {
	return &CSVWriter{
		options: WriteOptions{
			UseCRLF:   cfg.UseCRLF(),
			BOMPrefix: cfg.BOMPrefix,
		},
		files:  manager,
		logger: logger,
	}
}

// Format returns the format name
func (w *CSVWriter) Format() string {
	return config.FormatCSV
}

// Export writes the header and one row per pair to outputPath, replacing any
// existing file.
func (w *CSVWriter) Export(outputPath string, pairs []watchlist.Pair) (written int, err error) {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", outputPath),
		slog.Int("record_count", len(pairs)),
		slog.Bool("crlf", w.options.UseCRLF))

	if err := w.files.EnsureParentDir(outputPath); err != nil {
		return 0, apperrors.NewStorageError("failed to create output directory", err).
			WithContext("path", outputPath)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, apperrors.NewStorageError("failed to create output file", err).
			WithContext("path", outputPath)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = apperrors.NewStorageError("failed to close output file", cerr).
				WithContext("path", outputPath)
		}
	}()

	if err := WriteRows(file, records(pairs), w.options); err != nil {
		return 0, apperrors.NewStorageError("failed to write output file", err).
			WithContext("path", outputPath)
	}

	return len(pairs), nil
}

// WriteRows writes rows to out as CSV with the configured line terminator
func WriteRows(out io.Writer, rows [][]string, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	writer.UseCRLF = options.UseCRLF

	for i, record := range rows {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
