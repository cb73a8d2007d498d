// Package logger is the public API of nslog. Most users only need to
// import this package.
//
// A Logger is an ordered list of prefixes plus a pointer to a shared
// Config. Messages are built from the severity tag, the prefixes and
// the call arguments, joined with single spaces:
//
//	log := logger.Ns("api/login")
//	logger.Enable()
//	log.Error("omgbbq")
//	// [error] api/login 2026-10-18T12:00:00Z omgbbq
//
// The root Logger carries one prefix, a timestamp produced at emission
// time. Ns derives a new Logger whose prefixes come first, followed by
// the parent's; the parent is never modified.
//
// Logging is disabled until Enable is called. Enable takes an optional
// space-separated filter: a message is emitted when any keyword equals
// one of its tokens exactly (severity tag, prefix or argument), or when
// the filter contains "*". No filter means everything is emitted.
//
//	logger.Enable("api/login [error]")
//
// Enable, Disable and the filter live in the Config shared by every
// Logger derived from the same root, so one call affects all of them.
// The global Config is reachable through Global for configuring sinks
// and the timestamp producer, and tests can create private ones with
// NewConfig and NewBuilder().WithConfig.
//
// Logging calls never panic and never return errors. A prefix or
// argument whose producer panics is replaced by a "%!v(PANIC=...)"
// placeholder; a sink that panics or fails drops the message.
package logger
