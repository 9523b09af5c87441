package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithScope creates a logger carrying the break-scope fields so every engine
// log line can be correlated back to one (date, shift, location) window.
func WithScope(date, shift, location string) *Logger {
	return &Logger{
		Entry: logrus.StandardLogger().WithFields(logrus.Fields{
			"date":     date,
			"shift":    shift,
			"location": location,
		}),
	}
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
