// Package zerologhandler forwards nslog messages to a zerolog.Logger.
// Untagged Log calls are written without a level, using zerolog's
// Log() event.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/nslog/core"
)

// Handler is a sink backed by zerolog
type Handler struct {
	logger zerolog.Logger
}

// New creates a zerolog-backed sink
func New(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) event(level core.Level) *zerolog.Event {
	switch level {
	case core.DebugLevel:
		return h.logger.Debug()
	case core.InfoLevel:
		return h.logger.Info()
	case core.WarnLevel:
		return h.logger.Warn()
	case core.ErrorLevel:
		return h.logger.Error()
	default:
		return h.logger.Log()
	}
}

// Handle writes the message as a zerolog event. Events disabled by the
// zerolog level are nil and silently skipped by zerolog itself.
func (h *Handler) Handle(entry *core.Entry) error {
	h.event(entry.Level).Msg(entry.Message)
	return nil
}

// Close is a no-op; zerolog writes synchronously
func (h *Handler) Close() error {
	return nil
}
