// Package handler provides the Handler interface used for sinks and
// the small helpers shared by its implementations.
//
// A sink receives a fully assembled core.Entry: the resolved tokens
// and the formatted message. Plain callbacks are adapted with SinkFunc,
// which is also the way tests stub output:
//
//	cfg.SetSink(core.DebugLevel, handler.SinkFunc(func(msg string) {
//	    got = msg
//	}))
//
// Noop is the final fallback when neither a level sink nor a default
// sink is configured.
//
// Built-in handlers live in subpackages:
//
//   - consolehandler writes messages to any io.Writer (stdout/stderr by
//     default) and can colour the severity tag.
//   - multihandler fans out a single entry to multiple child handlers.
//   - zaphandler, zerologhandler and logrushandler forward messages to
//     an existing zap, zerolog or logrus logger.
//   - sloghandler goes the other way and exposes a nslog Logger as a
//     log/slog.Handler.
//
// Handlers that write to an io.Writer track processed and failed
// counts per level via the Stats type.
package handler
