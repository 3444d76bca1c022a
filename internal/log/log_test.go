package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cpre/internal/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in   string
		want slog.Level
		err  error
	}{
		"error":   {in: "error", want: slog.LevelError},
		"warning": {in: "WARNING", want: slog.LevelWarn},
		"info":    {in: "info", want: slog.LevelInfo},
		"debug":   {in: "Debug", want: slog.LevelDebug},
		"unknown": {in: "trace", err: log.ErrUnknownLogLevel},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	t.Run("json writes records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		h, err := log.CreateHandlerWithStrings(&buf, "info", "json")
		require.NoError(t, err)

		slog.New(h).Info("filtered", slog.String("path", "a.h"))
		assert.Contains(t, buf.String(), `"path":"a.h"`)
	})

	t.Run("text respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		h, err := log.CreateHandlerWithStrings(&buf, "warn", "text")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, "info", "xml")
		require.ErrorIs(t, err, log.ErrInvalidArgument)
		require.ErrorIs(t, err, log.ErrUnknownLogFormat)
	})
}

func TestCreateHandler_UnknownFormat(t *testing.T) {
	t.Parallel()

	h, err := log.CreateHandler(&bytes.Buffer{}, slog.LevelInfo, log.Format("xml"))
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
	assert.Nil(t, h)
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	got, err := log.GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, log.FormatJSON, got)

	_, err = log.GetFormat("yaml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
	assert.Contains(t, err.Error(), `"yaml"`)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("trace forces debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger, err := log.NewLogger(&buf, "error", "logfmt", true)
		require.NoError(t, err)

		logger.Debug("line", slog.Int("line", 1))
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := log.NewLogger(&bytes.Buffer{}, "loud", "text", false)
		require.ErrorIs(t, err, log.ErrInvalidArgument)
		require.ErrorIs(t, err, log.ErrUnknownLogLevel)
	})
}
