package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"citycast.app/internal/ports"
)

// FileLoggerAdapter writes JSON lines to a file. It is used for outbound
// provider diagnostics, which are too chatty for the main log.
type FileLoggerAdapter struct {
	out   io.WriteCloser
	mutex sync.Mutex
	now   func() time.Time
}

// NewFileLoggerAdapter opens (or creates) logPath for appending
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{out: file, now: time.Now}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

// Close closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.out.Close()
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	entry := map[string]interface{}{
		"timestamp": f.now().UTC().Format(time.RFC3339),
		"level":     level,
		"message":   msg,
	}
	for _, field := range fields {
		value := field.Value
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		entry[field.Key] = value
	}

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, err := f.out.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)
