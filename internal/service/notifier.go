package service

import (
	"github.com/sirupsen/logrus"
)

// LogNotifier surfaces user-facing notifications through structured logs. The
// engine never renders UI; handlers additionally return the same messages in
// their responses.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Success records a success notification
func (n *LogNotifier) Success(message string) {
	logrus.WithField("kind", "success").Info(message)
}

// Warning records a warning notification
func (n *LogNotifier) Warning(message string) {
	logrus.WithField("kind", "warning").Warn(message)
}

// Error records an error notification
func (n *LogNotifier) Error(message string) {
	logrus.WithField("kind", "error").Error(message)
}
