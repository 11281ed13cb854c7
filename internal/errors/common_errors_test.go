package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	assert.Equal(t, "USAGE", string(ErrTypeUsage))
	assert.Equal(t, "NOT_FOUND", string(ErrTypeNotFound))
	assert.Equal(t, "PARSING", string(ErrTypeParsing))
	assert.Equal(t, "STORAGE", string(ErrTypeStorage))
	assert.Equal(t, "CONFIG", string(ErrTypeConfig))
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    &AppError{Type: ErrTypeUsage, Message: "missing arguments"},
			wantMessage: "[USAGE] missing arguments",
		},
		{
			name:        "error with cause",
			appError:    &AppError{Type: ErrTypeStorage, Message: "failed to write output", Cause: fmt.Errorf("disk full")},
			wantMessage: "[STORAGE] failed to write output: disk full",
		},
		{
			name:        "error with empty message",
			appError:    &AppError{Type: ErrTypeConfig},
			wantMessage: "[CONFIG] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_UserMessage(t *testing.T) {
	assert.Equal(t, "File not found: in.txt", NewInputNotFoundError("in.txt").UserMessage())
	assert.Equal(t, "failed to write output: disk full",
		NewStorageError("failed to write output", errors.New("disk full")).UserMessage())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageError("failed to create output directory", cause)

	assert.Same(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, NewUsageError("usage").Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeParsing, Message: "bad sheet"}

	got := err.WithContext("sheet", "Sheet1").WithContext("row", 3)

	require.Same(t, err, got)
	assert.Equal(t, "Sheet1", err.Context["sheet"])
	assert.Equal(t, 3, err.Context["row"])
}

func TestNewInputNotFoundError(t *testing.T) {
	err := NewInputNotFoundError("/data/tv.txt")

	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Equal(t, "File not found: /data/tv.txt", err.Message)
	assert.Equal(t, "/data/tv.txt", err.Context["path"])
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("convert: %w", NewParsingError("cannot open workbook", nil))

	assert.Equal(t, ErrTypeParsing, TypeOf(wrapped))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
	assert.True(t, IsType(wrapped, ErrTypeParsing))
	assert.False(t, IsType(nil, ErrTypeParsing))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "usage", err: NewUsageError("usage"), want: ExitFailure},
		{name: "not found", err: NewInputNotFoundError("x"), want: ExitFailure},
		{name: "storage", err: NewStorageError("write", errors.New("eio")), want: ExitFailure},
		{name: "config", err: NewConfigError("bad level", nil), want: ExitConfig},
		{name: "wrapped config", err: fmt.Errorf("load: %w", NewConfigError("bad", nil)), want: ExitConfig},
		{name: "plain error", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
