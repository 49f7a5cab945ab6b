package infrastructure

import (
	"log/slog"

	"citycast.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps l; a nil logger writes through the slog default
func NewSlogLoggerAdapter(l *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: l}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.target().Debug(msg, slogArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.target().Info(msg, slogArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.target().Warn(msg, slogArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.target().Error(msg, slogArgs(fields)...)
}

func (l *SlogLoggerAdapter) target() *slog.Logger {
	if l == nil || l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

func slogArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}

// MultiLogger fans every entry out to several loggers
type MultiLogger []ports.Logger

func (m MultiLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Debug(msg, fields...)
	}
}

func (m MultiLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Info(msg, fields...)
	}
}

func (m MultiLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Warn(msg, fields...)
	}
}

func (m MultiLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Error(msg, fields...)
	}
}

var (
	_ ports.Logger = (*SlogLoggerAdapter)(nil)
	_ ports.Logger = MultiLogger(nil)
)
