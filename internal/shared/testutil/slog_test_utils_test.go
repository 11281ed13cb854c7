package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("test message", slog.String("key", "value"))
		logger.Error("error message", slog.Int("code", 500))

		require.Len(t, handler.GetRecords(), 2)
		assert.True(t, handler.ContainsMessage("test message"))
		assert.True(t, handler.ContainsAttr("key", "value"))
		assert.True(t, handler.ContainsAttr("code", 500))
		assert.False(t, handler.ContainsAttr("code", 404))
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelInfo), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 1)
		assert.Equal(t, 4, handler.Count())
	})

	t.Run("keeps attributes from With and groups", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With("component", "converter").WithGroup("input").Info("read", slog.String("path", "tv.txt"))
		logger.Info("grouped", slog.Group("output", slog.Int("rows", 2)))

		record, ok := handler.FindMessage("read")
		require.True(t, ok)
		assert.Equal(t, "converter", record.Attrs["component"])
		assert.Equal(t, "tv.txt", record.Attrs["input.path"])
		assert.True(t, handler.ContainsAttr("output.rows", 2))
	})

	t.Run("derived loggers share records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With("a", 1).Info("one")
		logger.Info("two")

		assert.Equal(t, 2, handler.Count())
		handler.Clear()
		assert.Equal(t, 0, handler.Count())
	})

	t.Run("assertion helpers", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("important message", slog.String("component", "test"))
		logger.Warn("warning message", slog.Int("retry", 3))

		AssertLogContains(t, handler, slog.LevelInfo, "important")
		AssertLogAttr(t, handler, "retry", 3)
		AssertNoErrors(t, handler)
	})
}
