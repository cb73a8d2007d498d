package core

import (
	"sync"
	"time"
)

// Level is the severity a message is logged with. NoLevel is used by
// plain Log calls, which carry no severity tag.
type Level int8

const (
	// NoLevel marks an untagged message routed to the default sink
	NoLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// Levels lists every tagged level, in ascending severity.
var Levels = [...]Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// String returns the level name as it appears inside the severity tag
func (l Level) String() string {
	switch l {
	case NoLevel:
		return "log"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// pre-formatted tags so the hot path does not concatenate
var levelTags = [...]string{
	NoLevel:    "",
	DebugLevel: "[debug]",
	InfoLevel:  "[info]",
	WarnLevel:  "[warn]",
	ErrorLevel: "[error]",
}

// Tag returns the bracketed severity token, or "" for NoLevel.
func (l Level) Tag() string {
	if l >= 0 && int(l) < len(levelTags) {
		return levelTags[l]
	}
	return "[" + l.String() + "]"
}

// Entry is one assembled log message. Tokens holds the resolved
// severity tag, prefixes and arguments in emission order; Message is
// the formatted form handed to sinks.
type Entry struct {
	Time    time.Time
	Level   Level
	Tokens  []string
	Message string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Tokens: make([]string, 0, 8),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Level = NoLevel
	e.Tokens = e.Tokens[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Entries that grew unusually large are left to the GC
	if cap(e.Tokens) > 64 {
		return
	}
	for i := range e.Tokens {
		e.Tokens[i] = ""
	}
	e.Tokens = e.Tokens[:0]
	e.Message = ""
	entryPool.Put(e)
}
