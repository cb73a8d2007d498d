package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/nslog/core"
)

// Formatter turns the resolved tokens of an entry into the message
// string handed to sinks.
type Formatter interface {
	// Format returns the message for entry
	Format(entry *core.Entry) string
}

// Config holds common formatter configuration
type Config struct {
	// Separator placed between tokens (default: a single space)
	Separator string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
