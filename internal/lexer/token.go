package lexer

import (
	"fmt"

	"github.com/orizon-lang/lexscan/internal/position"
)

// Kind identifies the category of a token value
type Kind int

// Token kinds
const (
	KindWhitespace Kind = iota
	KindString
	KindChar
	KindIdentifier
	KindKeyword
	KindInteger
	KindError
	KindEOF
)

// kindNames provides the short tags used when printing tokens
var kindNames = map[Kind]string{
	KindWhitespace: "SPA",
	KindString:     "STR",
	KindChar:       "CHR",
	KindIdentifier: "IDN",
	KindKeyword:    "KEY",
	KindInteger:    "NUM",
	KindError:      "ERR",
	KindEOF:        "END",
}

// String returns the three letter tag of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Value is the decoded payload of a token. The set of implementations is
// closed: Whitespace, StringLiteral, CharLiteral, Identifier, Keyword,
// IntegerLiteral, ErrorChar and EndOfInput.
type Value interface {
	Kind() Kind
	isValue()
}

// Whitespace is a maximal run of spaces, tabs and newlines.
type Whitespace struct {
	Text string
}

// StringLiteral is the decoded content of a double-quoted string.
type StringLiteral struct {
	Text string
}

// CharLiteral is the decoded content of a single-quoted character.
type CharLiteral struct {
	Char rune
}

// Identifier is an alphabetic-initial name.
type Identifier struct {
	Text string
}

// Keyword is a reserved word.
type Keyword struct {
	Text string
}

// IntegerLiteral is a decimal or $-prefixed hexadecimal integer.
type IntegerLiteral struct {
	Value int64
}

// ErrorChar is a single character no recognizer accepted.
type ErrorChar struct {
	Char rune
}

// EndOfInput marks the exhausted input.
type EndOfInput struct{}

func (Whitespace) Kind() Kind     { return KindWhitespace }
func (StringLiteral) Kind() Kind  { return KindString }
func (CharLiteral) Kind() Kind    { return KindChar }
func (Identifier) Kind() Kind     { return KindIdentifier }
func (Keyword) Kind() Kind        { return KindKeyword }
func (IntegerLiteral) Kind() Kind { return KindInteger }
func (ErrorChar) Kind() Kind      { return KindError }
func (EndOfInput) Kind() Kind     { return KindEOF }

func (Whitespace) isValue()     {}
func (StringLiteral) isValue()  {}
func (CharLiteral) isValue()    {}
func (Identifier) isValue()     {}
func (Keyword) isValue()        {}
func (IntegerLiteral) isValue() {}
func (ErrorChar) isValue()      {}
func (EndOfInput) isValue()     {}

// Token is a decoded value together with the span of characters it was
// scanned from.
type Token struct {
	Span  position.Span
	Value Value
}

// Kind returns the kind of the token value
func (t Token) Kind() Kind {
	return t.Value.Kind()
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Kind: %s, Span: %s, Value: %s}", t.Kind(), t.Span, FormatValue(t.Value))
}

// FormatValue renders a value the way diagnostics show it: quoted text
// for strings, characters and whitespace, bare text for names.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case Whitespace:
		return fmt.Sprintf("%q", v.Text)
	case StringLiteral:
		return fmt.Sprintf("%q", v.Text)
	case CharLiteral:
		return fmt.Sprintf("%q", v.Char)
	case Identifier:
		return v.Text
	case Keyword:
		return v.Text
	case IntegerLiteral:
		return fmt.Sprintf("%d", v.Value)
	case ErrorChar:
		return fmt.Sprintf("%q", v.Char)
	case EndOfInput:
		return "EOF"
	default:
		panic(fmt.Sprintf("lexer: unhandled token value %T", v))
	}
}
