package consolehandler

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
)

// ColorMode controls whether severity tags are coloured
type ColorMode int

const (
	// ColorAuto colours only when the writer is a terminal and NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways colours regardless of the writer
	ColorAlways
	// ColorNever disables colour
	ColorNever
)

// ColorEnv is the environment variable read by ColorModeFromEnv
const ColorEnv = "NSLOG_COLOR"

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
// Unknown values yield ColorAuto.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "on", "true", "1":
		return ColorAlways
	case "never", "off", "false", "0":
		return ColorNever
	default:
		return ColorAuto
	}
}

// ColorModeFromEnv returns the mode configured in NSLOG_COLOR
func ColorModeFromEnv() ColorMode {
	return ParseColorMode(os.Getenv(ColorEnv))
}

var levelColors = map[core.Level]color.Attribute{
	core.DebugLevel: color.FgHiBlack,
	core.InfoLevel:  color.FgCyan,
	core.WarnLevel:  color.FgYellow,
	core.ErrorLevel: color.FgRed,
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Color controls severity tag colouring (default: ColorAuto)
	Color ColorMode
}

// ConsoleHandler writes one message per line to a writer. Writes are
// serialised, so a single handler can be shared by many loggers.
type ConsoleHandler struct {
	writer io.Writer
	tags   map[core.Level]string
	stats  *handler.Stats
	mu     sync.Mutex // protects buf and writer
	buf    bytes.Buffer
	closed bool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	h := &ConsoleHandler{
		writer: cfg.Writer,
		stats:  handler.NewStats(),
	}
	h.buf.Grow(256)

	if useColor(cfg.Color, cfg.Writer) {
		h.tags = make(map[core.Level]string, len(levelColors))
		for level, attr := range levelColors {
			c := color.New(attr, color.Bold)
			c.EnableColor()
			h.tags[level] = c.Sprint(level.Tag())
		}
	}
	return h
}

// NewStdout creates a handler writing to os.Stdout
func NewStdout() *ConsoleHandler {
	return NewConsoleHandler(ConsoleConfig{Writer: os.Stdout, Color: ColorModeFromEnv()})
}

// NewStderr creates a handler writing to os.Stderr
func NewStderr() *ConsoleHandler {
	return NewConsoleHandler(ConsoleConfig{Writer: os.Stderr, Color: ColorModeFromEnv()})
}

func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Handle writes the entry message followed by a newline
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return errors.New("consolehandler: handler closed")
	}

	h.buf.Reset()
	h.writeMessage(entry)
	h.buf.WriteByte('\n')

	if _, err := h.writer.Write(h.buf.Bytes()); err != nil {
		h.stats.IncrementFailed(entry.Level)
		return errors.Wrap(err, "consolehandler: write")
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// writeMessage swaps the plain severity tag for its coloured form when
// colour is on and the message still starts with the tag.
func (h *ConsoleHandler) writeMessage(entry *core.Entry) {
	if h.tags != nil {
		if colored, ok := h.tags[entry.Level]; ok {
			plain := entry.Level.Tag()
			if strings.HasPrefix(entry.Message, plain) {
				h.buf.WriteString(colored)
				h.buf.WriteString(entry.Message[len(plain):])
				return
			}
		}
	}
	h.buf.WriteString(entry.Message)
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. Standard streams are left open; other
// writers implementing io.Closer are closed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.writer == os.Stdout || h.writer == os.Stderr {
		return nil
	}
	if c, ok := h.writer.(io.Closer); ok {
		return errors.Wrap(c.Close(), "consolehandler: close")
	}
	return nil
}
