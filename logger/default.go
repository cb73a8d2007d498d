package logger

import (
	"github.com/philipp01105/nslog/core"
)

var (
	globalConfig = NewConfig()
	root         = NewBuilder().WithConfig(globalConfig).Build()
)

// Global returns the process-wide Config behind Root
func Global() *Config {
	return globalConfig
}

// Root returns the root Logger. It has a single prefix, the timestamp
// produced by the global Config.
func Root() *Logger {
	return root
}

// EnableFromEnv enables the global Config from the NSLOG environment
// variable, when set. NSLOG="" enables everything; NSLOG="api [error]"
// enables with that filter.
func EnableFromEnv() bool {
	return globalConfig.EnableFromEnv(EnvFilter)
}

// Package-level convenience functions using the root logger

// Log logs an untagged message using the root logger
func Log(args ...interface{}) {
	root.emit(core.NoLevel, args)
}

// Debug logs a debug message using the root logger
func Debug(args ...interface{}) {
	root.emit(core.DebugLevel, args)
}

// Info logs an info message using the root logger
func Info(args ...interface{}) {
	root.emit(core.InfoLevel, args)
}

// Warn logs a warning message using the root logger
func Warn(args ...interface{}) {
	root.emit(core.WarnLevel, args)
}

// Error logs an error message using the root logger
func Error(args ...interface{}) {
	root.emit(core.ErrorLevel, args)
}

// Logf logs a formatted untagged message using the root logger
func Logf(format string, args ...interface{}) {
	root.emit(core.NoLevel, sprintf(format, args))
}

// Debugf logs a formatted debug message using the root logger
func Debugf(format string, args ...interface{}) {
	root.emit(core.DebugLevel, sprintf(format, args))
}

// Infof logs a formatted info message using the root logger
func Infof(format string, args ...interface{}) {
	root.emit(core.InfoLevel, sprintf(format, args))
}

// Warnf logs a formatted warning message using the root logger
func Warnf(format string, args ...interface{}) {
	root.emit(core.WarnLevel, sprintf(format, args))
}

// Errorf logs a formatted error message using the root logger
func Errorf(format string, args ...interface{}) {
	root.emit(core.ErrorLevel, sprintf(format, args))
}

// Ns derives a namespaced logger from the root logger
func Ns(prefixes ...interface{}) *Logger {
	return root.Ns(prefixes...)
}

// Enable turns on logging globally
func Enable(spec ...string) {
	root.Enable(spec...)
}

// Disable turns off logging globally
func Disable() {
	root.Disable()
}
