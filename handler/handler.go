package handler

import (
	"github.com/philipp01105/nslog/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Handle writes an assembled entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// SinkFunc adapts a plain func(msg string) into a Handler. The function
// receives the formatted message only.
type SinkFunc func(msg string)

// Handle calls f with the entry message
func (f SinkFunc) Handle(entry *core.Entry) error {
	f(entry.Message)
	return nil
}

// Close is a no-op
func (f SinkFunc) Close() error {
	return nil
}

// Noop discards every entry. It is the last fallback when no sink is
// configured for a level.
var Noop Handler = noop{}

type noop struct{}

func (noop) Handle(*core.Entry) error { return nil }
func (noop) Close() error             { return nil }
