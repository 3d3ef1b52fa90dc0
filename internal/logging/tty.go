package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is satisfied by writers backed by a file descriptor, such as
// os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether the writer is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escapes should be written to w. Color
// is off for non-terminals, when NO_COLOR is set (https://no-color.org), and
// when TERM=dumb.
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

// supportsColor keeps the environment checks separate from terminal
// detection so they stay testable without a real TTY.
func supportsColor(_ io.Writer, isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
