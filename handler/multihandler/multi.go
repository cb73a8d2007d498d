package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]handler.Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle sends the entry to every handler, even when an earlier one
// fails, and returns the combined errors.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
