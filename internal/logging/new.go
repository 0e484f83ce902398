package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported values of the log_format setting.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

var ErrUnknownFormat = errors.New("unknown log format")

// New builds a Logger writing to w. level is one of debug, info, warn, error;
// format selects the backend (see FormatText, FormatJSON, FormatZap).
func New(level, format string, w io.Writer) (Logger, error) {
	switch format {
	case "", FormatText, FormatJSON:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		opts := &slog.HandlerOptions{Level: lvl}
		var h slog.Handler = slog.NewTextHandler(w, opts)
		if format == FormatJSON {
			h = slog.NewJSONHandler(w, opts)
		}
		return NewSlogLogger(slog.New(h)), nil

	case FormatZap:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
		return NewZapLogger(zap.New(core)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
