package position

import (
	"fmt"
	"strings"
)

// Highlight renders the lines covered by span with a gutter of line
// numbers and a row of carets under the covered characters:
//
//	   2 | x2 = 007
//	     |    ^
//
// Tabs before the highlight are kept so the carets line up. An invalid
// span or one starting past the last line yields "".
func (s *Source) Highlight(span Span) string {
	if !span.IsValid() || span.From.Line > len(s.lines) {
		return ""
	}

	var b strings.Builder
	last := min(span.To.Line, len(s.lines))
	for n := span.From.Line; n <= last; n++ {
		line := []rune(s.Line(n))
		fmt.Fprintf(&b, "%4d | %s\n", n, string(line))

		from, to := 1, len(line)
		if n == span.From.Line {
			from = span.From.Column
		}
		if n == span.To.Line {
			to = span.To.Column
		}
		b.WriteString("     | ")
		writeMarker(&b, line, from, to)
		b.WriteString("\n")
	}
	return b.String()
}

// writeMarker pads up to column from and draws carets through column to
func writeMarker(b *strings.Builder, line []rune, from, to int) {
	for i := 1; i < from; i++ {
		if i <= len(line) && line[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	if to >= from {
		b.WriteString(strings.Repeat("^", to-from+1))
	}
}
