package formatter

import (
	"bytes"

	"github.com/philipp01105/nslog/core"
)

// TextFormatter joins tokens with a separator
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
	return &TextFormatter{Config: cfg}
}

// Format joins the entry tokens into one message
func (f *TextFormatter) Format(entry *core.Entry) string {
	switch len(entry.Tokens) {
	case 0:
		return ""
	case 1:
		return entry.Tokens[0]
	}

	buf := getBuffer()
	f.FormatEntry(entry, buf)
	msg := buf.String()
	putBuffer(buf)
	return msg
}

// FormatEntry writes the joined tokens into buf
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	for i, tok := range entry.Tokens {
		if i > 0 {
			buf.WriteString(f.Separator)
		}
		buf.WriteString(tok)
	}
}
