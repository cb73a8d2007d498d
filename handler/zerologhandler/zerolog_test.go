package zerologhandler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/philipp01105/nslog/core"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("Invalid zerolog output %q: %v", buf.String(), err)
	}
	return m
}

func TestHandler_Levels(t *testing.T) {
	tests := []struct {
		level core.Level
		want  string
	}{
		{core.DebugLevel, "debug"},
		{core.InfoLevel, "info"},
		{core.WarnLevel, "warn"},
		{core.ErrorLevel, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			h := New(zerolog.New(&buf))

			msg := tt.level.Tag() + " yo"
			if err := h.Handle(&core.Entry{Level: tt.level, Message: msg}); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			m := decode(t, &buf)
			if m["level"] != tt.want {
				t.Errorf("level = %v, want %v", m["level"], tt.want)
			}
			if m["message"] != msg {
				t.Errorf("message = %v, want %v", m["message"], msg)
			}
		})
	}
}

func TestHandler_NoLevel(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf))

	_ = h.Handle(&core.Entry{Message: "hello"})

	m := decode(t, &buf)
	if _, ok := m["level"]; ok {
		t.Errorf("Expected no level field for plain log, got %v", m["level"])
	}
	if m["message"] != "hello" {
		t.Errorf("message = %v, want hello", m["message"])
	}
}

func TestHandler_RespectsZerologLevel(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf).Level(zerolog.WarnLevel))

	_ = h.Handle(&core.Entry{Level: core.DebugLevel, Message: "[debug] quiet"})
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got %q", buf.String())
	}
}
