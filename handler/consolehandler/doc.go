// Package consolehandler provides a sink that writes each message as
// one line to an io.Writer (default: os.Stdout).
//
// The default nslog configuration uses two of these: one on stdout for
// plain, debug and info messages, and one on stderr for warn and error.
//
// Severity tags can be coloured with ConsoleConfig.Color. In ColorAuto
// mode colour is used only when the writer is a terminal and NO_COLOR
// is not set; NSLOG_COLOR=always|never overrides detection for the
// handlers built by NewStdout and NewStderr.
package consolehandler
