package benchmark

import (
	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
)

// noopHandler touches the message so the work of building it is kept
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
