package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request id and role when present
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if reqID, ok := ctx.Value("request_id").(string); ok && reqID != "" {
		logger.Entry = logger.Entry.WithField("request_id", reqID)
	}
	if role, ok := ctx.Value("role").(string); ok && role != "" {
		logger.Entry = logger.Entry.WithField("role", role)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
