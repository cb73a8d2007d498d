package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		tag   string
	}{
		{NoLevel, "log", ""},
		{DebugLevel, "debug", "[debug]"},
		{InfoLevel, "info", "[info]"},
		{WarnLevel, "warn", "[warn]"},
		{ErrorLevel, "error", "[error]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
			if got := tt.level.Tag(); got != tt.tag {
				t.Errorf("Level.Tag() = %v, want %v", got, tt.tag)
			}
		})
	}
}

func TestLevel_TagUnknown(t *testing.T) {
	if got := Level(42).Tag(); got != "[unknown]" {
		t.Errorf("Level(42).Tag() = %q, want [unknown]", got)
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	if len(e1.Tokens) != 0 {
		t.Errorf("Expected empty tokens, got %d", len(e1.Tokens))
	}

	e1.Level = ErrorLevel
	e1.Message = "test"
	e1.Tokens = append(e1.Tokens, "[error]", "test")

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if len(e2.Tokens) != 0 {
		t.Errorf("Expected empty tokens after pool reset, got %d", len(e2.Tokens))
	}
	if e2.Level != NoLevel {
		t.Errorf("Expected NoLevel after pool reset, got %v", e2.Level)
	}
}

func TestPutEntryNil(t *testing.T) {
	// Must not panic
	PutEntry(nil)
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
