package logging

import (
	"context"
	"log/slog"
)

// SlogLogger routes every level through a single slog.Logger. Records are
// dropped before argument processing when the handler filters the level out.
type SlogLogger struct {
	base *slog.Logger
}

func NewSlogLogger(base *slog.Logger) *SlogLogger {
	return &SlogLogger{base: base}
}

func (s *SlogLogger) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.base.Enabled(ctx, level) {
		return
	}
	s.base.Log(ctx, level, msg, args...)
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelDebug, msg, args)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelInfo, msg, args)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelWarn, msg, args)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelError, msg, args)
}

func (s *SlogLogger) With(args ...any) Logger {
	return NewSlogLogger(s.base.With(args...))
}
