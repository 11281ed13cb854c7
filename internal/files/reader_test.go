package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "watchlistcli/internal/errors"
	"watchlistcli/internal/shared/testutil"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "plain utf-8",
			input:    []byte("NASDAQ:AAPL\nTSE:7203\n"),
			expected: "NASDAQ:AAPL\nTSE:7203\n",
		},
		{
			name:     "utf-8 bom is removed",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("AMEX:SPY")...),
			expected: "AMEX:SPY",
		},
		{
			name:     "invalid bytes are dropped",
			input:    []byte{'A', 'A', 0xff, 'P', 'L', 0xc3, '\n', 'K', 'O'},
			expected: "AAPL\nKO",
		},
		{
			name:     "multibyte characters survive",
			input:    []byte("BIST:THYAO\nKRX:삼성전자\n"),
			expected: "BIST:THYAO\nKRX:삼성전자\n",
		},
		{
			name:     "utf-16 little endian with bom",
			input:    []byte{0xFF, 0xFE, 'K', 0, 'O', 0, '\n', 0, 'I', 0, 'B', 0, 'M', 0},
			expected: "KO\nIBM",
		},
		{
			name:     "utf-16 big endian with bom",
			input:    []byte{0xFE, 0xFF, 0, 'K', 0, 'O'},
			expected: "KO",
		},
		{
			name:     "empty input",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeText(tt.input))
		})
	}
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, SourceWorkbook, KindFor("list.xlsx"))
	assert.Equal(t, SourceWorkbook, KindFor("/tmp/LIST.XLSX"))
	assert.Equal(t, SourceText, KindFor("list.txt"))
	assert.Equal(t, SourceText, KindFor("list.csv"))
	assert.Equal(t, SourceText, KindFor("list"))
}

func TestManager_ReadWatchlist_Text(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	manager := NewManager(logger)

	path := filepath.Join(t.TempDir(), "tv.txt")
	require.NoError(t, os.WriteFile(path, []byte("AMEX:AAPL\r\nNASDAQ:TSLA\xff\r\n"), 0644))

	src, err := manager.ReadWatchlist(path)
	require.NoError(t, err)

	assert.Equal(t, path, src.Path)
	assert.Equal(t, SourceText, src.Kind)
	assert.Equal(t, int64(25), src.Size)
	assert.Equal(t, "AMEX:AAPL\r\nNASDAQ:TSLA\r\n", src.Text)
}

func TestManager_ReadWatchlist_Workbook(t *testing.T) {
	manager := NewManager(nil)
	path := filepath.Join(t.TempDir(), "tv.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "NASDAQ:AAPL"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "  "))
	require.NoError(t, f.SetCellValue(sheet, "C1", "CRYPTOCAP:ETH-AMEX:USD"))
	require.NoError(t, f.SetCellValue(sheet, "A3", " NYSE:IBM "))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src, err := manager.ReadWatchlist(path)
	require.NoError(t, err)

	assert.Equal(t, SourceWorkbook, src.Kind)
	assert.Equal(t, "NASDAQ:AAPL\nCRYPTOCAP:ETH-AMEX:USD\nNYSE:IBM\n", src.Text)
}

func TestManager_ReadWatchlist_Errors(t *testing.T) {
	manager := NewManager(nil)
	dir := t.TempDir()

	_, err := manager.ReadWatchlist(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))

	broken := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(broken, []byte("not a zip archive"), 0644))

	_, err = manager.ReadWatchlist(broken)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestManager_EnsureParentDir(t *testing.T) {
	manager := NewManager(nil)
	target := filepath.Join(t.TempDir(), "a", "b", "rows.csv")

	require.NoError(t, manager.EnsureParentDir(target))

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, manager.FileExists(filepath.Dir(target)))
	assert.False(t, manager.FileExists(target))
}

func TestManager_EnsureParentDir_BlockedByFile(t *testing.T) {
	manager := NewManager(nil)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := manager.EnsureParentDir(filepath.Join(blocker, "rows.csv"))
	assert.Error(t, err)
}
