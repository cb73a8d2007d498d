// Package sloghandler exposes a nslog Logger as a log/slog.Handler, so
// code written against the standard library's structured logging API
// ends up in the same prefixed, filtered output.
//
//	slog.SetDefault(slog.New(sloghandler.New(logger.Ns("api"), nil)))
//	slog.Info("request", "status", 200)
//	// [info] api 2026-10-18T12:00:00Z request status=200
//
// WithGroup maps to namespace derivation: the group name is added as a
// prefix and later attribute keys are qualified with it.
package sloghandler
