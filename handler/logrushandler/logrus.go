// Package logrushandler forwards nslog messages to a logrus logger.
package logrushandler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/nslog/core"
)

// Handler is a sink backed by logrus
type Handler struct {
	logger logrus.FieldLogger
}

// New creates a logrus-backed sink. A nil logger falls back to
// logrus.StandardLogger().
func New(logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{logger: logger}
}

// timeSetter is implemented by *logrus.Logger and *logrus.Entry
type timeSetter interface {
	WithTime(t time.Time) *logrus.Entry
}

// Handle writes the message at the matching logrus level. Untagged
// messages go through Print, which logrus records at info level.
func (h *Handler) Handle(entry *core.Entry) error {
	logger := h.logger
	if ts, ok := logger.(timeSetter); ok && !entry.Time.IsZero() {
		logger = ts.WithTime(entry.Time)
	}

	switch entry.Level {
	case core.DebugLevel:
		logger.Debug(entry.Message)
	case core.InfoLevel:
		logger.Info(entry.Message)
	case core.WarnLevel:
		logger.Warn(entry.Message)
	case core.ErrorLevel:
		logger.Error(entry.Message)
	default:
		logger.Print(entry.Message)
	}
	return nil
}

// Close is a no-op
func (h *Handler) Close() error {
	return nil
}
