package consolehandler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"

	"github.com/philipp01105/nslog/core"
)

func TestConsoleHandler_Write(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "[info] test message"
	defer core.PutEntry(entry)

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if buf.String() != "[info] test message\n" {
		t.Errorf("Expected one line, got: %q", buf.String())
	}
	if got := h.Stats().Processed[core.InfoLevel]; got != 1 {
		t.Errorf("Processed[Info] = %d, want 1", got)
	}
}

func TestConsoleHandler_AutoColorOffForBuffers(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorAuto})

	_ = h.Handle(&core.Entry{Level: core.ErrorLevel, Message: "[error] boom"})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Expected no ANSI codes for a non-terminal writer, got: %q", buf.String())
	}
}

func TestConsoleHandler_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorAlways})

	_ = h.Handle(&core.Entry{Level: core.ErrorLevel, Message: "[error] boom"})

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("Expected ANSI codes, got: %q", out)
	}
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	if !strings.HasPrefix(out, c.Sprint("[error]")) {
		t.Errorf("Expected coloured tag prefix, got: %q", out)
	}
	if !strings.HasSuffix(out, " boom\n") {
		t.Errorf("Expected message body after the tag, got: %q", out)
	}
}

func TestConsoleHandler_ColorSkipsUntagged(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorAlways})

	_ = h.Handle(&core.Entry{Level: core.NoLevel, Message: "plain"})
	if buf.String() != "plain\n" {
		t.Errorf("Expected untouched plain message, got: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleHandler_WriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{}})

	err := h.Handle(&core.Entry{Level: core.WarnLevel, Message: "x"})
	if err == nil {
		t.Fatal("Expected write error")
	}
	if !strings.Contains(err.Error(), "consolehandler: write: disk full") {
		t.Errorf("Unexpected error text: %v", err)
	}
	if got := h.Stats().Failed[core.WarnLevel]; got != 1 {
		t.Errorf("Failed[Warn] = %d, want 1", got)
	}
}

func TestConsoleHandler_Closed(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := h.Handle(&core.Entry{Message: "late"}); err == nil {
		t.Error("Expected error when writing to a closed handler")
	}
	if buf.Len() != 0 {
		t.Errorf("Closed handler wrote %q", buf.String())
	}
}

func TestConsoleHandler_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = h.Handle(&core.Entry{Level: core.DebugLevel, Message: "[debug] line"})
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 800 {
		t.Fatalf("Expected 800 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l != "[debug] line" {
			t.Fatalf("Interleaved write: %q", l)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"always": ColorAlways,
		"ALWAYS": ColorAlways,
		"never":  ColorNever,
		"off":    ColorNever,
		"bogus":  ColorAuto,
	}
	for in, want := range tests {
		if got := ParseColorMode(in); got != want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestColorModeFromEnv(t *testing.T) {
	t.Setenv(ColorEnv, "never")
	if got := ColorModeFromEnv(); got != ColorNever {
		t.Errorf("ColorModeFromEnv() = %v, want ColorNever", got)
	}
}
