// Package zaphandler forwards nslog messages to a *zap.Logger, so a
// program that already configured zap keeps a single output pipeline.
package zaphandler

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nslog/core"
)

// Option configures a Handler
type Option func(*Handler)

// WithPlainLevel sets the zap level used for untagged Log calls
// (default: zapcore.InfoLevel).
func WithPlainLevel(level zapcore.Level) Option {
	return func(h *Handler) {
		h.plain = level
	}
}

// WithTokens attaches the resolved tokens as a "tokens" field
func WithTokens() Option {
	return func(h *Handler) {
		h.tokens = true
	}
}

// Handler is a sink backed by zap
type Handler struct {
	logger *zap.Logger
	plain  zapcore.Level
	tokens bool
}

// New creates a zap-backed sink. A nil logger falls back to zap.NewNop.
func New(logger *zap.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{logger: logger, plain: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// zapLevel maps a nslog level to its zap counterpart
func (h *Handler) zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return h.plain
	}
}

// Handle writes the message at the mapped zap level, stamped with the
// time the entry was created.
func (h *Handler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(h.zapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	if !entry.Time.IsZero() {
		ce.Time = entry.Time
	}
	if h.tokens {
		ce.Write(zap.Strings("tokens", append([]string(nil), entry.Tokens...)))
		return nil
	}
	ce.Write()
	return nil
}

// Close flushes the zap logger
func (h *Handler) Close() error {
	return errors.Wrap(h.logger.Sync(), "zaphandler: sync")
}
