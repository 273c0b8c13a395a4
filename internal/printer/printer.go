// Package printer renders scanned tokens for the console, either as
// colored text lines or as JSON objects.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/orizon-lang/lexscan/internal/lexer"
	"github.com/orizon-lang/lexscan/internal/position"
)

// Printer writes a header for an input followed by its tokens
type Printer interface {
	Header(filename, content string) error
	Print(tok lexer.Token) error
}

// style is the pair of colors used for one token kind
type style struct {
	tag   *color.Color
	value *color.Color
}

// TextPrinter renders one line per token: tag, span and decoded value
type TextPrinter struct {
	w      io.Writer
	styles map[lexer.Kind]style
	span   *color.Color
}

// NewText creates a text printer. colored forces ANSI colors on or off
// regardless of the process-wide color.NoColor setting.
func NewText(w io.Writer, colored bool) *TextPrinter {
	both := func(attrs ...color.Attribute) style {
		c := newColor(colored, attrs...)
		return style{tag: c, value: c}
	}

	return &TextPrinter{
		w: w,
		styles: map[lexer.Kind]style{
			lexer.KindWhitespace: both(color.FgWhite),
			lexer.KindString:     both(color.FgGreen),
			lexer.KindChar:       both(color.FgGreen),
			lexer.KindIdentifier: both(color.FgBlue),
			lexer.KindKeyword:    both(color.FgMagenta),
			lexer.KindInteger:    both(color.FgYellow),
			lexer.KindError:      both(color.FgRed, color.Bold),
			lexer.KindEOF:        both(color.FgMagenta, color.Bold),
		},
		span: setMode(color.RGB(128, 128, 128), colored),
	}
}

func newColor(colored bool, attrs ...color.Attribute) *color.Color {
	return setMode(color.New(attrs...), colored)
}

func setMode(c *color.Color, colored bool) *color.Color {
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Header writes the file name and its quoted content
func (p *TextPrinter) Header(filename, content string) error {
	_, err := fmt.Fprintf(p.w, "filename = %q\ncontent  = %q\n\n", filename, content)
	return err
}

// Print writes one token line
func (p *TextPrinter) Print(tok lexer.Token) error {
	_, err := fmt.Fprintln(p.w, p.Render(tok))
	return err
}

// Render formats a token line without writing it
func (p *TextPrinter) Render(tok lexer.Token) string {
	st, ok := p.styles[tok.Kind()]
	if !ok {
		panic(fmt.Sprintf("printer: no style for %s", tok.Kind()))
	}
	return fmt.Sprintf("%s %s %s",
		st.tag.Sprint(tok.Kind().String()),
		p.span.Sprint(FormatSpan(tok.Span)),
		st.value.Sprint(lexer.FormatValue(tok.Value)),
	)
}

// FormatSpan renders a span as "( l,  c)-( l,  c):"
func FormatSpan(s position.Span) string {
	return fmt.Sprintf("(%2d, %2d)-(%2d, %2d):", s.From.Line, s.From.Column, s.To.Line, s.To.Column)
}

// JSONPrinter writes one JSON object per token and no header
type JSONPrinter struct {
	enc *json.Encoder
}

// jsonToken is the wire form of a token
type jsonToken struct {
	Kind  string            `json:"kind"`
	From  position.Position `json:"from"`
	To    position.Position `json:"to"`
	Value any               `json:"value"`
}

// NewJSON creates a JSON lines printer
func NewJSON(w io.Writer) *JSONPrinter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONPrinter{enc: enc}
}

// Header is a no-op: JSON output carries tokens only
func (p *JSONPrinter) Header(filename, content string) error {
	return nil
}

// Print writes one token object
func (p *JSONPrinter) Print(tok lexer.Token) error {
	return p.enc.Encode(jsonToken{
		Kind:  tok.Kind().String(),
		From:  tok.Span.From,
		To:    tok.Span.To,
		Value: jsonValue(tok.Value),
	})
}

func jsonValue(v lexer.Value) any {
	switch v := v.(type) {
	case lexer.Whitespace:
		return v.Text
	case lexer.StringLiteral:
		return v.Text
	case lexer.CharLiteral:
		return string(v.Char)
	case lexer.Identifier:
		return v.Text
	case lexer.Keyword:
		return v.Text
	case lexer.IntegerLiteral:
		return v.Value
	case lexer.ErrorChar:
		return string(v.Char)
	case lexer.EndOfInput:
		return nil
	default:
		panic(fmt.Sprintf("printer: unhandled token value %T", v))
	}
}
