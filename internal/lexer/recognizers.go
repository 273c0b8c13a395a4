package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Every recognizer consumes characters through the scanner's cursor and
// returns false when its input is malformed. The caller owns the rollback.

// maxIdentifierLength caps the identifier/keyword lookahead, in characters
const maxIdentifierLength = 10

// keywords is the reserved word set of the keywords dialect
var keywords = map[string]bool{
	"z":       true,
	"for":     true,
	"forward": true,
}

// scanWhitespace reads a run of spaces, tabs and newlines
func (s *Scanner) scanWhitespace() (Value, bool) {
	var b strings.Builder
	for {
		ch, ok := s.cur.Peek()
		if !ok || !isSpace(ch) {
			break
		}
		b.WriteRune(ch)
		s.cur.Advance()
	}
	return Whitespace{Text: b.String()}, true
}

// scanString reads a double-quoted string. A doubled quote stands for one
// quote; a backslash before a newline stands for the newline and any other
// backslash is kept as is.
func (s *Scanner) scanString() (Value, bool) {
	if ch, ok := s.cur.Advance(); !ok || ch != '"' {
		return nil, false
	}

	var b strings.Builder
	for {
		ch, ok := s.cur.Advance()
		if !ok || ch == '\n' {
			return nil, false
		}

		switch ch {
		case '"':
			if next, ok := s.cur.Peek(); ok && next == '"' {
				b.WriteRune('"')
				s.cur.Advance()
				continue
			}
			return StringLiteral{Text: b.String()}, true
		case '\\':
			if next, ok := s.cur.Peek(); ok && next == '\n' {
				b.WriteRune('\n')
				s.cur.Advance()
				continue
			}
			b.WriteRune('\\')
		default:
			b.WriteRune(ch)
		}
	}
}

// scanChar reads a single-quoted character literal
func (s *Scanner) scanChar() (Value, bool) {
	if ch, ok := s.cur.Advance(); !ok || ch != '\'' {
		return nil, false
	}

	ch, ok := s.cur.Advance()
	if !ok || ch == '\'' || ch == '\n' {
		return nil, false
	}
	if ch == '\\' {
		if ch, ok = s.scanEscape(); !ok {
			return nil, false
		}
	}

	if closing, ok := s.cur.Advance(); !ok || closing != '\'' {
		return nil, false
	}
	return CharLiteral{Char: ch}, true
}

// scanEscape decodes the part of an escape sequence after the backslash:
// n, ' and \ stand for themselves, anything else must start four hex
// digits naming a code point.
func (s *Scanner) scanEscape() (rune, bool) {
	ch, ok := s.cur.Advance()
	if !ok {
		return 0, false
	}

	switch ch {
	case 'n':
		return '\n', true
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	}

	code, ok := hexValue(ch)
	if !ok {
		return 0, false
	}
	for i := 0; i < 3; i++ {
		ch, ok := s.cur.Advance()
		if !ok {
			return 0, false
		}
		d, ok := hexValue(ch)
		if !ok {
			return 0, false
		}
		code = code*16 + d
	}

	r := rune(code)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// scanDecimal reads a run of decimal digits. It accepts an empty run and
// yields 0, so it must only be dispatched when the next character is a
// digit; that guard is what keeps zero-width numbers out of the stream.
func (s *Scanner) scanDecimal() (Value, bool) {
	var n int64
	for {
		ch, ok := s.cur.Peek()
		if !ok || !isDigit(ch) {
			break
		}
		n = n*10 + int64(ch-'0')
		s.cur.Advance()
	}
	return IntegerLiteral{Value: n}, true
}

// scanHex reads a $-prefixed hexadecimal integer with at least one digit
func (s *Scanner) scanHex() (Value, bool) {
	if ch, ok := s.cur.Advance(); !ok || ch != '$' {
		return nil, false
	}

	var n int64
	digits := 0
	for {
		ch, ok := s.cur.Peek()
		if !ok {
			break
		}
		d, ok := hexValue(ch)
		if !ok {
			break
		}
		n = n*16 + d
		digits++
		s.cur.Advance()
	}

	if digits == 0 {
		return nil, false
	}
	return IntegerLiteral{Value: n}, true
}

// scanIdentifier reads an alphabetic character followed by any run of
// alphabetic characters, digits and dollar signs.
func (s *Scanner) scanIdentifier() (Value, bool) {
	ch, ok := s.cur.Advance()
	if !ok || !isAlpha(ch) {
		return nil, false
	}

	var b strings.Builder
	b.WriteRune(ch)
	for {
		ch, ok := s.cur.Peek()
		if !ok || !(isAlpha(ch) || isDigit(ch) || ch == '$') {
			break
		}
		b.WriteRune(ch)
		s.cur.Advance()
	}
	return Identifier{Text: b.String()}, true
}

// scanIdentOrKeyword reads at most maxIdentifierLength alphanumeric
// characters, then backs up to just after the last alphabetic one. A
// reserved word at that stopping point is a keyword; any other word of
// two or more characters is an identifier.
func (s *Scanner) scanIdentOrKeyword() (Value, bool) {
	ch, ok := s.cur.Advance()
	if !ok || !isAlpha(ch) {
		return nil, false
	}

	text := []rune{ch}
	stop, stopLen := s.cur.Mark(), len(text)
	for len(text) < maxIdentifierLength {
		ch, ok := s.cur.Peek()
		if !ok || !(isAlpha(ch) || isDigit(ch)) {
			break
		}
		s.cur.Advance()
		text = append(text, ch)
		if isAlpha(ch) {
			stop, stopLen = s.cur.Mark(), len(text)
		}
	}

	s.cur.Restore(stop)
	word := string(text[:stopLen])
	switch {
	case keywords[word]:
		return Keyword{Text: word}, true
	case stopLen >= 2:
		return Identifier{Text: word}, true
	default:
		return nil, false
	}
}

// isSpace checks for the whitespace characters of the language
func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

// isDigit checks if character is ASCII digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isAlpha reports the Unicode Alphabetic property
func isAlpha(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.In(ch, unicode.Nl, unicode.Other_Alphabetic)
}

// hexValue returns the value of an ASCII hex digit
func hexValue(ch rune) (int64, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return int64(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return int64(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return int64(ch-'A') + 10, true
	}
	return 0, false
}
