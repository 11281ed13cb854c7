package exporter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"watchlistcli/internal/config"
	apperrors "watchlistcli/internal/errors"
	"watchlistcli/internal/files"
	"watchlistcli/internal/watchlist"
)

// Header is the first row of every export
var Header = []string{"Exchange", "Ticker"}

// Exporter writes pairs to outputPath and returns the number of data rows written
type Exporter interface {
	Export(outputPath string, pairs []watchlist.Pair) (int, error)
	Format() string
}

// ResolveFormat picks the output format. An explicit csv or xlsx setting wins;
// otherwise an .xlsx extension selects xlsx and anything else csv.
func ResolveFormat(outputPath, configured string) (string, error) {
	switch strings.ToLower(configured) {
	case config.FormatCSV:
		return config.FormatCSV, nil
	case config.FormatXLSX:
		return config.FormatXLSX, nil
	case "", config.FormatAuto:
		if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
			return config.FormatXLSX, nil
		}
		return config.FormatCSV, nil
	default:
		return "", apperrors.NewConfigError(fmt.Sprintf("unknown output format %q", configured), nil)
	}
}

// New returns the exporter for outputPath under cfg
func New(outputPath string, cfg config.ExportConfig, manager *files.Manager, logger *slog.Logger) (Exporter, error) {
	format, err := ResolveFormat(outputPath, cfg.Format)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if manager == nil {
		manager = files.NewManager(logger)
	}

	switch format {
	case config.FormatXLSX:
		return NewXLSXWriter(cfg, manager, logger), nil
	default:
		return NewCSVWriter(cfg, manager, logger), nil
	}
}

// records converts pairs into CSV-style rows, header first
func records(pairs []watchlist.Pair) [][]string {
	rows := make([][]string, 0, len(pairs)+1)
	rows = append(rows, Header)
	for _, p := range pairs {
		rows = append(rows, p.Record())
	}
	return rows
}
