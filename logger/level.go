package logger

import (
	"strings"

	"github.com/philipp01105/nslog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoLevel    = core.NoLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a level name to a Level. Names are
// case-insensitive and may be bracketed ("[warn]"); unknown names map
// to NoLevel.
func ParseLevel(s string) Level {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error", "err":
		return ErrorLevel
	default:
		return NoLevel
	}
}
