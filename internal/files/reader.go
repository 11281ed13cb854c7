package files

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "watchlistcli/internal/errors"
)

// SourceKind tells how an input file was interpreted
type SourceKind string

const (
	SourceText     SourceKind = "text"
	SourceWorkbook SourceKind = "xlsx"
)

// Source is a watchlist input decoded to text
type Source struct {
	Path string
	Kind SourceKind
	Text string
	Size int64
}

// KindFor picks the reader for path by its extension
func KindFor(path string) SourceKind {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return SourceWorkbook
	}
	return SourceText
}

// ReadWatchlist reads path fully and returns its text.
func (m *Manager) ReadWatchlist(path string) (*Source, error) {
	kind := KindFor(path)

	data, err := m.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read input file", err).
			WithContext("path", path)
	}

	src := &Source{Path: path, Kind: kind, Size: int64(len(data))}

	switch kind {
	case SourceWorkbook:
		text, err := workbookText(path, data)
		if err != nil {
			return nil, err
		}
		src.Text = text
	default:
		src.Text = DecodeText(data)
	}

	m.logger.Debug("Input decoded",
		slog.String("path", path),
		slog.String("kind", string(kind)),
		slog.Int64("size_bytes", src.Size),
		slog.Int("text_length", len(src.Text)))

	return src, nil
}

// DecodeText converts raw bytes to a valid UTF-8 string. A byte order mark
// selects UTF-8 or UTF-16 and is removed; undecodable bytes are dropped.
func DecodeText(data []byte) string {
	decoder := unicode.BOMOverride(transform.Nop)
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		decoded = data
	}
	return strings.ToValidUTF8(string(decoded), "")
}

// workbookText returns every non-empty cell of the first sheet, row by row,
// one cell per line.
func workbookText(path string, data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", apperrors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err).
			WithContext("path", path)
	}

	var b strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			if cell = strings.TrimSpace(cell); cell != "" {
				b.WriteString(cell)
				b.WriteByte('\n')
			}
		}
	}
	return b.String(), nil
}
