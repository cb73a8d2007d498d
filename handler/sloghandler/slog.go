package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/logger"
)

// Options configures a Handler
type Options struct {
	// Level is the minimum slog level handled (default: slog.LevelDebug)
	Level slog.Leveler
}

// Handler is a slog.Handler that emits records through a nslog Logger.
// The record message and every attribute ("key=value") become separate
// tokens, so nslog filters can match them exactly.
type Handler struct {
	logger *logger.Logger
	level  slog.Leveler
	attrs  []string
	group  string
}

// New creates a slog.Handler backed by l. A nil l uses logger.Root().
func New(l *logger.Logger, opts *Options) *Handler {
	if l == nil {
		l = logger.Root()
	}
	h := &Handler{logger: l, level: slog.LevelDebug}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the record would be emitted. The nslog
// filter is applied later, once the tokens are known.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.logger.Enabled()
}

// Handle emits the record at the matching nslog level
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	args := make([]interface{}, 0, 1+len(h.attrs)+record.NumAttrs())
	args = append(args, record.Message)
	for _, a := range h.attrs {
		args = append(args, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		args = appendAttr(args, h.group, a)
		return true
	})

	h.logger.Emit(slogLevelToCore(record.Level), args...)
	return nil
}

// WithAttrs returns a new Handler with additional attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	rendered := make([]interface{}, 0, len(attrs))
	for _, a := range attrs {
		rendered = appendAttr(rendered, h.group, a)
	}

	newAttrs := make([]string, len(h.attrs), len(h.attrs)+len(rendered))
	copy(newAttrs, h.attrs)
	for _, r := range rendered {
		newAttrs = append(newAttrs, r.(string))
	}
	return &Handler{
		logger: h.logger,
		level:  h.level,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler whose logger is namespaced with name.
// Attributes added afterwards are qualified with the group path.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	newAttrs := make([]string, len(h.attrs))
	copy(newAttrs, h.attrs)
	return &Handler{
		logger: h.logger.Ns(name),
		level:  h.level,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr renders a as "key=value" tokens, flattening groups into
// dotted keys. Empty attributes are skipped, as slog requires.
func appendAttr(dst []interface{}, group string, a slog.Attr) []interface{} {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, key+"="+a.Value.String())
}
