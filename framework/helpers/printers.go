package helpers

import (
	"fmt"
	"io"
)

// MustFprintln and MustFprintf are for console output where a write error means the output
// stream is gone and there is nothing sensible left to do.

func MustFprintln(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		panic(err)
	}
}

func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
