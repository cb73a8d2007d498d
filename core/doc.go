// Package core defines the shared types used across nslog.
//
// Level names the severity of a message and renders the bracketed tag
// ("[debug]", "[error]", ...) that is placed first in a tagged message.
// NoLevel is reserved for plain Log calls, which carry no tag.
//
// Prefix is a tagged union of a literal string and a producer function.
// Producers run at emission time, never when the prefix is created, so
// a timestamp prefix always reflects the moment a message is written.
// A producer that panics is replaced by a "%!v(PANIC=...)" placeholder,
// matching what fmt prints for a panicking String method.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has consumed
// it.
package core
