package lexer

import (
	"errors"
	"fmt"
	"strings"
)

// Dialect selects the set of recognizers the scanner dispatches to
type Dialect int

const (
	// DialectLiterals recognizes whitespace, double-quoted strings,
	// decimal and $-hexadecimal integers and identifiers.
	DialectLiterals Dialect = iota

	// DialectKeywords recognizes whitespace, single-quoted character
	// literals and identifiers or reserved words.
	DialectKeywords
)

// ErrUnknownDialect is returned by ParseDialect for unrecognized names
var ErrUnknownDialect = errors.New("unknown dialect")

var dialectNames = map[Dialect]string{
	DialectLiterals: "literals",
	DialectKeywords: "keywords",
}

// String returns the configuration name of the dialect
func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// ParseDialect maps a configuration name to a Dialect
func ParseDialect(name string) (Dialect, error) {
	for d, n := range dialectNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// Options configures a Scanner
type Options struct {
	Dialect Dialect

	// RetainWhitespace yields Whitespace tokens instead of discarding them.
	RetainWhitespace bool

	// SkipErrors drops unrecognized characters silently instead of
	// yielding ErrorChar tokens.
	SkipErrors bool

	// EmitEndOfInput yields one EndOfInput token when the input is
	// exhausted.
	EmitEndOfInput bool
}

// DefaultOptions returns the literals dialect with whitespace discarded,
// errors reported and the end of input marked.
func DefaultOptions() Options {
	return Options{
		Dialect:        DialectLiterals,
		EmitEndOfInput: true,
	}
}
