// Package termcap answers whether an output stream is an interactive
// terminal that understands ANSI colors.
package termcap

import (
	"os"
)

// fder is implemented by *os.File
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a terminal. Writers that are not files
// are never terminals.
func IsTerminal(w any) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}

// ColorEnabled reports whether w should receive colored output when the
// color mode is "auto": it must be a terminal, NO_COLOR must be unset and
// TERM must not be "dumb".
func ColorEnabled(w any) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(w)
}
