package formatter_test

import (
	"fmt"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Level:  core.ErrorLevel,
		Tokens: []string{"[error]", "api/login", "omgbbq"},
	}

	fmt.Println(f.Format(entry))
	// Output:
	// [error] api/login omgbbq
}
