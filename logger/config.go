package logger

import (
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/filter"
	"github.com/philipp01105/nslog/formatter"
	"github.com/philipp01105/nslog/handler"
	"github.com/philipp01105/nslog/handler/consolehandler"
)

// EnvFilter is the environment variable read by EnableFromEnv
const EnvFilter = "NSLOG"

// Config is the state shared by every Logger derived from the same
// root: the enabled flag, the filter, the sinks and the timestamp
// producer. All methods are safe for concurrent use.
//
// The zero value is a disabled Config without sinks; messages emitted
// through it go to handler.Noop until a sink is set.
type Config struct {
	mu          sync.RWMutex
	enabled     bool
	filter      filter.Filter
	sinks       map[core.Level]handler.Handler
	defaultSink handler.Handler
	timestamp   func() string
	formatter   formatter.Formatter
	coarse      bool
	opts        []Option
}

// Option configures a Config
type Option func(*Config)

// WithSink sets the sink for a level. core.NoLevel sets the default sink.
func WithSink(level core.Level, h handler.Handler) Option {
	return func(c *Config) {
		c.setSink(level, h)
	}
}

// WithDefaultSink sets the sink used for plain Log calls and for levels
// without a sink of their own.
func WithDefaultSink(h handler.Handler) Option {
	return func(c *Config) {
		c.defaultSink = h
	}
}

// WithTimestampFunc replaces the timestamp producer
func WithTimestampFunc(fn func() string) Option {
	return func(c *Config) {
		c.timestamp = fn
	}
}

// WithFormatter replaces the message formatter
func WithFormatter(f formatter.Formatter) Option {
	return func(c *Config) {
		c.formatter = f
	}
}

// WithCoarseClock makes the default timestamp producer read the cached
// coarse clock instead of calling time.Now on every message.
func WithCoarseClock() Option {
	return func(c *Config) {
		core.StartCoarseClock()
		c.coarse = true
	}
}

// NewConfig creates a disabled Config with console sinks: plain, debug
// and info messages go to stdout, warn and error to stderr.
func NewConfig(opts ...Option) *Config {
	c := &Config{opts: opts}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	stdout := consolehandler.NewStdout()
	stderr := consolehandler.NewStderr()

	c.enabled = false
	c.filter = nil
	c.coarse = false
	c.defaultSink = stdout
	c.sinks = map[core.Level]handler.Handler{
		core.DebugLevel: stdout,
		core.InfoLevel:  stdout,
		core.WarnLevel:  stderr,
		core.ErrorLevel: stderr,
	}
	c.timestamp = nil
	c.formatter = formatter.NewTextFormatter(formatter.Config{})

	for _, opt := range c.opts {
		opt(c)
	}
}

// Reset restores the state NewConfig produced: disabled, empty filter,
// default sinks and timestamp producer. Options given to NewConfig are
// applied again.
func (c *Config) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyDefaults()
}

// Enabled reports whether logging is on
func (c *Config) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// SetEnabled turns logging on or off without touching the filter
func (c *Config) SetEnabled(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()
}

// Filter returns a copy of the current filter
func (c *Config) Filter() filter.Filter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter.Clone()
}

// SetFilter replaces the filter. An empty filter matches everything.
func (c *Config) SetFilter(f filter.Filter) {
	f = f.Clone()
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

// Enable turns logging on and replaces the filter with the keywords in
// spec. A blank spec clears the filter.
func (c *Config) Enable(spec string) {
	f := filter.Parse(spec)
	c.mu.Lock()
	c.enabled = true
	c.filter = f
	c.mu.Unlock()
}

// Disable turns logging off. The filter is kept.
func (c *Config) Disable() {
	c.SetEnabled(false)
}

// EnableFromEnv calls Enable with the value of the environment variable
// key, if it is set. It reports whether the variable was present.
func (c *Config) EnableFromEnv(key string) bool {
	spec, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	c.Enable(strings.TrimSpace(spec))
	return true
}

// Sink returns the handler for level, falling back to the default sink
// and finally to handler.Noop.
func (c *Config) Sink(level core.Level) handler.Handler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sinkLocked(level)
}

func (c *Config) sinkLocked(level core.Level) handler.Handler {
	if h := c.sinks[level]; h != nil {
		return h
	}
	if c.defaultSink != nil {
		return c.defaultSink
	}
	return handler.Noop
}

// SetSink sets the sink for level. A nil handler removes it, so the
// level falls back to the default sink. core.NoLevel sets the default
// sink itself.
func (c *Config) SetSink(level core.Level, h handler.Handler) {
	c.mu.Lock()
	c.setSink(level, h)
	c.mu.Unlock()
}

func (c *Config) setSink(level core.Level, h handler.Handler) {
	if level == core.NoLevel {
		c.defaultSink = h
		return
	}
	if h == nil {
		delete(c.sinks, level)
		return
	}
	if c.sinks == nil {
		c.sinks = make(map[core.Level]handler.Handler, len(core.Levels))
	}
	c.sinks[level] = h
}

// DefaultSink returns the default sink, or handler.Noop when unset
func (c *Config) DefaultSink() handler.Handler {
	return c.Sink(core.NoLevel)
}

// SetDefaultSink replaces the default sink. Nil makes it a no-op.
func (c *Config) SetDefaultSink(h handler.Handler) {
	c.SetSink(core.NoLevel, h)
}

// SetSinks routes every level, tagged or not, to h
func (c *Config) SetSinks(h handler.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultSink = h
	for _, level := range core.Levels {
		c.setSink(level, h)
	}
}

// Timestamp invokes the current timestamp producer. The producer is
// called outside the lock so it may use the Config itself.
func (c *Config) Timestamp() string {
	c.mu.RLock()
	fn, coarse := c.timestamp, c.coarse
	c.mu.RUnlock()

	if fn != nil {
		return fn()
	}
	now := time.Now()
	if coarse {
		now = core.CoarseNow()
	}
	return now.UTC().Format(time.RFC3339)
}

// SetTimestamp replaces the timestamp producer. Nil restores the default.
func (c *Config) SetTimestamp(fn func() string) {
	c.mu.Lock()
	c.timestamp = fn
	c.mu.Unlock()
}

// SetFormatter replaces the message formatter. Nil restores the default.
func (c *Config) SetFormatter(f formatter.Formatter) {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	c.mu.Lock()
	c.formatter = f
	c.mu.Unlock()
}

// Close closes every distinct sink and combines their errors
func (c *Config) Close() error {
	var err error
	for _, h := range c.distinctSinks() {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// Stats sums the statistics of every distinct sink that keeps them.
// A handler routed to several levels is counted once.
func (c *Config) Stats() handler.Snapshot {
	var total handler.Snapshot
	for _, h := range c.distinctSinks() {
		if sp, ok := h.(handler.StatsProvider); ok {
			total.Add(sp.Stats())
		}
	}
	return total
}

// distinctSinks returns the default sink and the level sinks, without
// nils and duplicates.
func (c *Config) distinctSinks() []handler.Handler {
	c.mu.RLock()
	all := make([]handler.Handler, 0, len(core.Levels)+1)
	all = append(all, c.defaultSink)
	for _, level := range core.Levels {
		all = append(all, c.sinks[level])
	}
	c.mu.RUnlock()

	hs := make([]handler.Handler, 0, len(all))
	for i, h := range all {
		if h == nil || seenBefore(all[:i], h) {
			continue
		}
		hs = append(hs, h)
	}
	return hs
}

// seenBefore reports whether h already appears in hs. Handlers of
// non-comparable types, such as SinkFunc, are never considered equal.
func seenBefore(hs []handler.Handler, h handler.Handler) bool {
	if !reflect.TypeOf(h).Comparable() {
		return false
	}
	for _, prev := range hs {
		if prev != nil && reflect.TypeOf(prev) == reflect.TypeOf(h) && prev == h {
			return true
		}
	}
	return false
}

// snapshot is the state one emission needs, read under a single lock
type snapshot struct {
	filter    filter.Filter
	sink      handler.Handler
	formatter formatter.Formatter
}

// load returns the emission snapshot for level, or false when logging
// is disabled.
func (c *Config) load(level core.Level) (snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.enabled {
		return snapshot{}, false
	}
	f := c.formatter
	if f == nil {
		f = defaultFormatter
	}
	return snapshot{
		filter:    c.filter,
		sink:      c.sinkLocked(level),
		formatter: f,
	}, true
}

// defaultFormatter serves Configs that were not built by NewConfig
var defaultFormatter formatter.Formatter = formatter.NewTextFormatter(formatter.Config{})
