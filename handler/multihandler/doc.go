// Package multihandler fans out a single entry to several sinks, for
// example a console handler and a zap logger at once. Errors from all
// children are combined with go.uber.org/multierr.
package multihandler
