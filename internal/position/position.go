// Package position provides source position tracking for the scanner.
// Positions are character based: a column counts decoded characters,
// not bytes.
package position

import (
	"fmt"
	"strings"
)

// Position represents a single point in source code
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
}

// Start is the position of the first character of any input.
var Start = Position{Line: 1, Column: 1}

// IsValid returns true if the position is valid
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before returns true if this position comes before other
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// After returns true if this position comes after other
func (p Position) After(other Position) bool {
	return other.Before(p)
}

// Advance returns the position following the character ch.
func (p Position) Advance(ch rune) Position {
	if ch == '\n' {
		return Position{Line: p.Line + 1, Column: 1}
	}
	return Position{Line: p.Line, Column: p.Column + 1}
}

// Span represents a range of source code between two positions.
// Both endpoints are inclusive: To is the position of the last
// character that belongs to the span.
type Span struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// IsValid returns true if the span is valid
func (s Span) IsValid() bool {
	return s.From.IsValid() && s.To.IsValid() && !s.To.Before(s.From)
}

// IsEmpty reports whether both endpoints coincide.
func (s Span) IsEmpty() bool {
	return s.From == s.To
}

// String returns a string representation of the span
func (s Span) String() string {
	if s.From.Line == s.To.Line {
		return fmt.Sprintf("%d:%d-%d", s.From.Line, s.From.Column, s.To.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.From.Line, s.From.Column, s.To.Line, s.To.Column)
}

// Contains returns true if the span contains the given position
func (s Span) Contains(pos Position) bool {
	if !s.IsValid() || !pos.IsValid() {
		return false
	}
	return !pos.Before(s.From) && !pos.After(s.To)
}

// Source holds the text of one input split into lines, for mapping
// positions back to characters.
type Source struct {
	Content string
	lines   [][]rune // each line keeps its trailing newline
}

// NewSource creates a new source from content
func NewSource(content string) *Source {
	parts := strings.SplitAfter(content, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, []rune(part))
	}
	return &Source{Content: content, lines: lines}
}

// Line returns the specified line (1-based) without its newline, or an
// empty string if the line does not exist.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return strings.TrimSuffix(string(s.lines[n-1]), "\n")
}

// At returns the character at pos.
func (s *Source) At(pos Position) (rune, bool) {
	if pos.Line < 1 || pos.Line > len(s.lines) {
		return 0, false
	}
	line := s.lines[pos.Line-1]
	if pos.Column < 1 || pos.Column > len(line) {
		return 0, false
	}
	return line[pos.Column-1], true
}

// Text returns the characters covered by span, endpoints included.
// Invalid spans and spans reaching outside the source yield "".
func (s *Source) Text(span Span) string {
	if !span.IsValid() {
		return ""
	}
	var b strings.Builder
	for pos := span.From; ; {
		ch, ok := s.At(pos)
		if !ok {
			return ""
		}
		b.WriteRune(ch)
		if pos == span.To {
			break
		}
		pos = pos.Advance(ch)
	}
	return b.String()
}
