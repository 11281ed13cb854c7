package exporter

import (
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"watchlistcli/internal/config"
	apperrors "watchlistcli/internal/errors"
	"watchlistcli/internal/files"
	"watchlistcli/internal/watchlist"
)

// XLSXWriter writes pairs to a single-sheet workbook
type XLSXWriter struct {
	sheet  string
	files  *files.Manager
	logger *slog.Logger
}

// NewXLSXWriter creates a new workbook writer
func NewXLSXWriter(cfg config.ExportConfig, manager *files.Manager, logger *slog.Logger) *XLSXWriter {
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = config.DefaultSheetName
	}
	return &XLSXWriter{sheet: sheet, files: manager, logger: logger}
}

// Format returns the format name
func (w *XLSXWriter) Format() string {
	return config.FormatXLSX
}

// Export writes the header on row 1 and one pair per following row
func (w *XLSXWriter) Export(outputPath string, pairs []watchlist.Pair) (written int, err error) {
	w.logger.Info("Writing workbook",
		slog.String("file_path", outputPath),
		slog.String("sheet", w.sheet),
		slog.Int("record_count", len(pairs)))

	if err := w.files.EnsureParentDir(outputPath); err != nil {
		return 0, apperrors.NewStorageError("failed to create output directory", err).
			WithContext("path", outputPath)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.NewStorageError("failed to close workbook", cerr).
				WithContext("path", outputPath)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), w.sheet); err != nil {
		return 0, apperrors.NewStorageError("failed to name sheet", err).
			WithContext("sheet", w.sheet)
	}

	sw, err := f.NewStreamWriter(w.sheet)
	if err != nil {
		return 0, apperrors.NewStorageError("failed to open sheet writer", err)
	}

	for i, record := range records(pairs) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return 0, apperrors.NewStorageError("failed to address row", err)
		}
		values := make([]interface{}, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := sw.SetRow(cell, values); err != nil {
			return 0, apperrors.NewStorageError("failed to write row", err).
				WithContext("row", i+1)
		}
	}
	if err := sw.Flush(); err != nil {
		return 0, apperrors.NewStorageError("failed to flush sheet", err)
	}

	// SaveAs insists on a workbook extension; an explicit format may not have one
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

	if err := f.Write(file); err != nil {
		return 0, apperrors.NewStorageError("failed to write workbook", err).
			WithContext("path", outputPath)
	}

	return len(pairs), nil
}
