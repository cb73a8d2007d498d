package logger

import (
	"fmt"
	"strings"

	"github.com/philipp01105/nslog/core"
)

// Logger prefixes messages and routes them to the sinks of its Config.
// A Logger is immutable: Ns returns a new Logger and never changes the
// receiver. Loggers derived from one another share the same Config, so
// Enable and Disable affect all of them at once.
type Logger struct {
	cfg      *Config
	prefixes []core.Prefix
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg       *Config
	prefixes  []core.Prefix
	timestamp bool
}

// NewBuilder creates a new logger builder. By default the Logger uses
// the global Config and starts with a timestamp prefix.
func NewBuilder() *Builder {
	return &Builder{timestamp: true}
}

// WithConfig sets the shared Config
func (b *Builder) WithConfig(cfg *Config) *Builder {
	b.cfg = cfg
	return b
}

// WithPrefixes appends prefixes, accepted in the same forms as Ns
func (b *Builder) WithPrefixes(prefixes ...interface{}) *Builder {
	for _, p := range prefixes {
		b.prefixes = append(b.prefixes, core.ToPrefix(p))
	}
	return b
}

// WithTimestamp controls the trailing timestamp prefix
func (b *Builder) WithTimestamp(enabled bool) *Builder {
	b.timestamp = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	cfg := b.cfg
	if cfg == nil {
		cfg = Global()
	}

	prefixes := make([]core.Prefix, 0, len(b.prefixes)+1)
	prefixes = append(prefixes, b.prefixes...)
	if b.timestamp {
		prefixes = append(prefixes, core.Computed(cfg.Timestamp))
	}
	return &Logger{cfg: cfg, prefixes: prefixes}
}

// Ns returns a new Logger whose prefixes are the given ones followed by
// the receiver's. Strings become literal prefixes and func() string
// values are evaluated on every message.
func (l *Logger) Ns(prefixes ...interface{}) *Logger {
	newPrefixes := make([]core.Prefix, 0, len(prefixes)+len(l.prefixes))
	for _, p := range prefixes {
		newPrefixes = append(newPrefixes, core.ToPrefix(p))
	}
	newPrefixes = append(newPrefixes, l.prefixes...)
	return &Logger{cfg: l.cfg, prefixes: newPrefixes}
}

// Prefixes returns a copy of the prefix list
func (l *Logger) Prefixes() []core.Prefix {
	out := make([]core.Prefix, len(l.prefixes))
	copy(out, l.prefixes)
	return out
}

// Config returns the shared configuration
func (l *Logger) Config() *Config {
	return l.cfg
}

// Enable turns logging on for every Logger sharing this Config. The
// filter keywords are taken from spec split on whitespace; with no
// keywords every message is emitted.
func (l *Logger) Enable(spec ...string) {
	l.cfg.Enable(strings.Join(spec, " "))
}

// Disable turns logging off for every Logger sharing this Config
func (l *Logger) Disable() {
	l.cfg.Disable()
}

// Enabled reports whether logging is on
func (l *Logger) Enabled() bool {
	return l.cfg.Enabled()
}

// Emit logs args at level. It is what Log, Debug, Info, Warn and Error
// call; NoLevel produces an untagged message.
func (l *Logger) Emit(level core.Level, args ...interface{}) {
	l.emit(level, args)
}

// emit assembles the tokens, applies the filter and hands the entry to
// the sink. It never panics.
func (l *Logger) emit(level core.Level, args []interface{}) {
	snap, ok := l.cfg.load(level)
	if !ok {
		return
	}

	entry := core.GetEntry()
	defer func() {
		// sink panics are dropped
		_ = recover()
		core.PutEntry(entry)
	}()

	entry.Level = level
	if tag := level.Tag(); tag != "" {
		entry.Tokens = append(entry.Tokens, tag)
	}
	for _, p := range l.prefixes {
		entry.Tokens = append(entry.Tokens, p.Resolve())
	}
	for _, a := range args {
		entry.Tokens = append(entry.Tokens, core.ResolveArg(a))
	}

	if !snap.filter.Match(entry.Tokens) {
		return
	}

	entry.Message = snap.formatter.Format(entry)
	_ = snap.sink.Handle(entry)
}

// Log logs an untagged message through the default sink
func (l *Logger) Log(args ...interface{}) {
	l.emit(core.NoLevel, args)
}

// Debug logs a message tagged [debug]
func (l *Logger) Debug(args ...interface{}) {
	l.emit(core.DebugLevel, args)
}

// Info logs a message tagged [info]
func (l *Logger) Info(args ...interface{}) {
	l.emit(core.InfoLevel, args)
}

// Warn logs a message tagged [warn]
func (l *Logger) Warn(args ...interface{}) {
	l.emit(core.WarnLevel, args)
}

// Error logs a message tagged [error]
func (l *Logger) Error(args ...interface{}) {
	l.emit(core.ErrorLevel, args)
}

// sprintf defers formatting until the message is actually emitted
func sprintf(format string, args []interface{}) []interface{} {
	return []interface{}{func() string { return fmt.Sprintf(format, args...) }}
}

// Logf logs an untagged formatted message. The formatted text is a
// single token.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.emit(core.NoLevel, sprintf(format, args))
}

// Debugf logs a formatted message tagged [debug]
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(core.DebugLevel, sprintf(format, args))
}

// Infof logs a formatted message tagged [info]
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(core.InfoLevel, sprintf(format, args))
}

// Warnf logs a formatted message tagged [warn]
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit(core.WarnLevel, sprintf(format, args))
}

// Errorf logs a formatted message tagged [error]
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(core.ErrorLevel, sprintf(format, args))
}
