// Package formatter defines how the resolved tokens of an entry are
// turned into the single message string that sinks receive.
//
// TextFormatter joins tokens with a separator, a single space by
// default, so "[debug]", "api", "hello" becomes "[debug] api hello".
// It uses a pooled bytes.Buffer internally; buffers larger than 64 KiB
// are not returned to the pool to prevent one huge message from
// permanently inflating memory usage. FormatEntry writes the same
// output into a caller-owned buffer.
package formatter
