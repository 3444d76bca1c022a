// Package log builds the [slog.Handler] used by the cpre CLI.
//
// Three output formats are supported: "text" renders colored, human-oriented
// lines through charmbracelet/log, while "json" and "logfmt" use the slog
// handlers for machine consumption.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

type (
	Format string
	Level  string
)

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"

	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")

	AllFormats = []string{
		string(FormatJSON),
		string(FormatLogfmt),
		string(FormatText),
	}
	AllLevels = []string{
		string(LevelError),
		string(LevelWarn),
		string(LevelInfo),
		string(LevelDebug),
	}
)

var slogLevels = map[Level]slog.Level{
	LevelError: slog.LevelError,
	LevelWarn:  slog.LevelWarn,
	"warning":  slog.LevelWarn,
	LevelInfo:  slog.LevelInfo,
	LevelDebug: slog.LevelDebug,
}

// NewLogger returns a logger writing to w. Trace output is logged at debug
// level, so trace overrides logLevel.
func NewLogger(w io.Writer, logLevel, logFormat string, trace bool) (*slog.Logger, error) {
	if trace {
		logLevel = string(LevelDebug)
	}

	h, err := CreateHandlerWithStrings(w, logLevel, logFormat)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}

// CreateHandlerWithStrings creates a [slog.Handler] from flag values.
// Both errors wrap [ErrInvalidArgument].
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, err := GetLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := GetFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return CreateHandler(w, lvl, format)
}

// CreateHandler creates a [slog.Handler] for an already parsed level and
// format. An unknown format returns [ErrUnknownLogFormat].
func CreateHandler(w io.Writer, lvl slog.Level, format Format) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts), nil
	case FormatText:
		return newTextHandler(w, lvl), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// GetLevel parses a level name, case-insensitively. "warning" is accepted
// as an alias for "warn".
func GetLevel(level string) (slog.Level, error) {
	if lvl, ok := slogLevels[Level(strings.ToLower(level))]; ok {
		return lvl, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// GetFormat parses a format name, case-insensitively.
func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

func newTextHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		//nolint:gosec // G115: slog levels are small constants.
		Level:           charmlog.Level(int32(lvl)),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "cpre",
	})
}
