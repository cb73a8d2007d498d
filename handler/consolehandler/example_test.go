package consolehandler_test

import (
	"os"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler/consolehandler"
)

// Write plain lines to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Color:  consolehandler.ColorNever,
	})
	defer h.Close()

	_ = h.Handle(&core.Entry{Level: core.InfoLevel, Message: "[info] ready"})
	// Output:
	// [info] ready
}
