package lexer

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/orizon-lang/lexscan/internal/position"
)

func pos(line, column int) position.Position {
	return position.Position{Line: line, Column: column}
}

func tok(fromLine, fromCol, toLine, toCol int, v Value) Token {
	return Token{
		Span:  position.Span{From: pos(fromLine, fromCol), To: pos(toLine, toCol)},
		Value: v,
	}
}

func eof(line, column int) Token {
	return tok(line, column, line, column, EndOfInput{})
}

func scanAll(input string, opts Options) []Token {
	return slices.Collect(New(input, opts).All())
}

func keywordOptions() Options {
	opts := DefaultOptions()
	opts.Dialect = DialectKeywords
	return opts
}

func TestBasicTokens(t *testing.T) {
	input := `abc 42 $2A "a""b"`

	want := []Token{
		tok(1, 1, 1, 3, Identifier{Text: "abc"}),
		tok(1, 5, 1, 6, IntegerLiteral{Value: 42}),
		tok(1, 8, 1, 10, IntegerLiteral{Value: 42}),
		tok(1, 12, 1, 17, StringLiteral{Text: `a"b`}),
		eof(1, 18),
	}

	if diff := cmp.Diff(want, scanAll(input, DefaultOptions())); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralsDialect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "decimal with leading zeros",
			input: "0042",
			want:  []Token{tok(1, 1, 1, 4, IntegerLiteral{Value: 42}), eof(1, 5)},
		},
		{
			name:  "hexadecimal mixed case",
			input: "$fF",
			want:  []Token{tok(1, 1, 1, 3, IntegerLiteral{Value: 255}), eof(1, 4)},
		},
		{
			name:  "dollar alone",
			input: "$",
			want:  []Token{tok(1, 1, 1, 1, ErrorChar{Char: '$'}), eof(1, 2)},
		},
		{
			name:  "dollar before non-hex letter",
			input: "$g",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '$'}),
				tok(1, 2, 1, 2, Identifier{Text: "g"}),
				eof(1, 3),
			},
		},
		{
			name:  "number then identifier",
			input: "12ab",
			want: []Token{
				tok(1, 1, 1, 2, IntegerLiteral{Value: 12}),
				tok(1, 3, 1, 4, Identifier{Text: "ab"}),
				eof(1, 5),
			},
		},
		{
			name:  "identifier with digits and dollar",
			input: "a$1 b",
			want: []Token{
				tok(1, 1, 1, 3, Identifier{Text: "a$1"}),
				tok(1, 5, 1, 5, Identifier{Text: "b"}),
				eof(1, 6),
			},
		},
		{
			name:  "unicode identifier",
			input: "héllo",
			want:  []Token{tok(1, 1, 1, 5, Identifier{Text: "héllo"}), eof(1, 6)},
		},
		{
			name:  "character literal is an error here",
			input: "'a'",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '\''}),
				tok(1, 2, 1, 2, Identifier{Text: "a"}),
				tok(1, 3, 1, 3, ErrorChar{Char: '\''}),
				eof(1, 4),
			},
		},
		{
			name:  "tokens across lines",
			input: "a\n  12\n",
			want: []Token{
				tok(1, 1, 1, 1, Identifier{Text: "a"}),
				tok(2, 3, 2, 4, IntegerLiteral{Value: 12}),
				eof(3, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, scanAll(tt.input, DefaultOptions())); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "doubled quote",
			input: `"a""b"`,
			want:  []Token{tok(1, 1, 1, 6, StringLiteral{Text: `a"b`}), eof(1, 7)},
		},
		{
			name:  "empty string",
			input: `""`,
			want:  []Token{tok(1, 1, 1, 2, StringLiteral{Text: ""}), eof(1, 3)},
		},
		{
			name:  "only a doubled quote",
			input: `""""`,
			want:  []Token{tok(1, 1, 1, 4, StringLiteral{Text: `"`}), eof(1, 5)},
		},
		{
			name:  "backslash newline continues",
			input: "\"a\\\nb\"",
			want:  []Token{tok(1, 1, 2, 2, StringLiteral{Text: "a\nb"}), eof(2, 3)},
		},
		{
			name:  "other backslash is literal",
			input: `"a\b\"`,
			want:  []Token{tok(1, 1, 1, 6, StringLiteral{Text: `a\b\`}), eof(1, 7)},
		},
		{
			name:  "unterminated at end of input",
			input: `"abc`,
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '"'}),
				tok(1, 2, 1, 4, Identifier{Text: "abc"}),
				eof(1, 5),
			},
		},
		{
			name:  "unterminated at newline",
			input: "\"ab\nc\"",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '"'}),
				tok(1, 2, 1, 3, Identifier{Text: "ab"}),
				tok(2, 1, 2, 1, Identifier{Text: "c"}),
				tok(2, 2, 2, 2, ErrorChar{Char: '"'}),
				eof(2, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, scanAll(tt.input, DefaultOptions())); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "plain character",
			input: "'a'",
			want:  []Token{tok(1, 1, 1, 3, CharLiteral{Char: 'a'}), eof(1, 4)},
		},
		{
			name:  "hex code point",
			input: `'\0041'`,
			want:  []Token{tok(1, 1, 1, 7, CharLiteral{Char: 'A'}), eof(1, 8)},
		},
		{
			name:  "hex code point lower case",
			input: `'\00e9'`,
			want:  []Token{tok(1, 1, 1, 7, CharLiteral{Char: 'é'}), eof(1, 8)},
		},
		{
			name:  "newline escape",
			input: `'\n'`,
			want:  []Token{tok(1, 1, 1, 4, CharLiteral{Char: '\n'}), eof(1, 5)},
		},
		{
			name:  "quote escape",
			input: `'\''`,
			want:  []Token{tok(1, 1, 1, 4, CharLiteral{Char: '\''}), eof(1, 5)},
		},
		{
			name:  "backslash escape",
			input: `'\\'`,
			want:  []Token{tok(1, 1, 1, 4, CharLiteral{Char: '\\'}), eof(1, 5)},
		},
		{
			name:  "escaped quote then newline",
			input: "'\\'\n",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '\''}),
				tok(1, 2, 1, 2, ErrorChar{Char: '\\'}),
				tok(1, 3, 1, 3, ErrorChar{Char: '\''}),
				eof(2, 1),
			},
		},
		{
			name:  "empty literal",
			input: "''",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '\''}),
				tok(1, 2, 1, 2, ErrorChar{Char: '\''}),
				eof(1, 3),
			},
		},
		{
			name:  "two characters",
			input: "'ab'",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '\''}),
				tok(1, 2, 1, 3, Identifier{Text: "ab"}),
				tok(1, 4, 1, 4, ErrorChar{Char: '\''}),
				eof(1, 5),
			},
		},
		{
			name:  "surrogate code point",
			input: `'\D800'`,
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '\''}),
				tok(1, 2, 1, 2, ErrorChar{Char: '\\'}),
				tok(1, 3, 1, 3, ErrorChar{Char: 'D'}),
				tok(1, 4, 1, 4, ErrorChar{Char: '8'}),
				tok(1, 5, 1, 5, ErrorChar{Char: '0'}),
				tok(1, 6, 1, 6, ErrorChar{Char: '0'}),
				tok(1, 7, 1, 7, ErrorChar{Char: '\''}),
				eof(1, 8),
			},
		},
		{
			name:  "newline inside literal",
			input: "'\n'",
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '\''}),
				tok(2, 1, 2, 1, ErrorChar{Char: '\''}),
				eof(2, 2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, scanAll(tt.input, keywordOptions())); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "longest stopping point wins over keyword prefix",
			input: "forx",
			want:  []Token{tok(1, 1, 1, 4, Identifier{Text: "forx"}), eof(1, 5)},
		},
		{
			name:  "keyword before space",
			input: "for 1",
			want: []Token{
				tok(1, 1, 1, 3, Keyword{Text: "for"}),
				tok(1, 5, 1, 5, ErrorChar{Char: '1'}),
				eof(1, 6),
			},
		},
		{
			name:  "keyword before trailing digit",
			input: "for1",
			want: []Token{
				tok(1, 1, 1, 3, Keyword{Text: "for"}),
				tok(1, 4, 1, 4, ErrorChar{Char: '1'}),
				eof(1, 5),
			},
		},
		{
			name:  "all reserved words",
			input: "z for forward",
			want: []Token{
				tok(1, 1, 1, 1, Keyword{Text: "z"}),
				tok(1, 3, 1, 5, Keyword{Text: "for"}),
				tok(1, 7, 1, 13, Keyword{Text: "forward"}),
				eof(1, 14),
			},
		},
		{
			name:  "longer word containing keyword",
			input: "forwards",
			want:  []Token{tok(1, 1, 1, 8, Identifier{Text: "forwards"}), eof(1, 9)},
		},
		{
			name:  "digits inside identifier",
			input: "ab12c",
			want:  []Token{tok(1, 1, 1, 5, Identifier{Text: "ab12c"}), eof(1, 6)},
		},
		{
			name:  "trailing digits are backed out",
			input: "ab12",
			want: []Token{
				tok(1, 1, 1, 2, Identifier{Text: "ab"}),
				tok(1, 3, 1, 3, ErrorChar{Char: '1'}),
				tok(1, 4, 1, 4, ErrorChar{Char: '2'}),
				eof(1, 5),
			},
		},
		{
			name:  "length cap",
			input: "abcdefghijk",
			want: []Token{
				tok(1, 1, 1, 10, Identifier{Text: "abcdefghij"}),
				tok(1, 11, 1, 11, ErrorChar{Char: 'k'}),
				eof(1, 12),
			},
		},
		{
			name:  "length cap reached on a digit",
			input: "abcdefghi12",
			want: []Token{
				tok(1, 1, 1, 9, Identifier{Text: "abcdefghi"}),
				tok(1, 10, 1, 10, ErrorChar{Char: '1'}),
				tok(1, 11, 1, 11, ErrorChar{Char: '2'}),
				eof(1, 12),
			},
		},
		{
			name:  "single letter that is not a keyword",
			input: "a",
			want:  []Token{tok(1, 1, 1, 1, ErrorChar{Char: 'a'}), eof(1, 2)},
		},
		{
			name:  "single letter followed by digit",
			input: "z1",
			want: []Token{
				tok(1, 1, 1, 1, Keyword{Text: "z"}),
				tok(1, 2, 1, 2, ErrorChar{Char: '1'}),
				eof(1, 3),
			},
		},
		{
			name:  "literals dialect syntax is rejected",
			input: `$"`,
			want: []Token{
				tok(1, 1, 1, 1, ErrorChar{Char: '$'}),
				tok(1, 2, 1, 2, ErrorChar{Char: '"'}),
				eof(1, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, scanAll(tt.input, keywordOptions())); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRetainWhitespace(t *testing.T) {
	opts := DefaultOptions()
	opts.RetainWhitespace = true

	want := []Token{
		tok(1, 1, 1, 1, Identifier{Text: "a"}),
		tok(1, 2, 1, 3, Whitespace{Text: " \t"}),
		tok(1, 4, 1, 4, Identifier{Text: "b"}),
		tok(1, 5, 1, 5, Whitespace{Text: "\n"}),
		eof(2, 1),
	}

	if diff := cmp.Diff(want, scanAll("a \tb\n", opts)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestSkipErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipErrors = true

	want := []Token{
		tok(1, 1, 1, 1, Identifier{Text: "a"}),
		tok(1, 6, 1, 6, Identifier{Text: "x"}),
		tok(1, 8, 1, 8, Identifier{Text: "b"}),
		eof(1, 9),
	}

	if diff := cmp.Diff(want, scanAll(`a # "x b`, opts)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestEndOfInput(t *testing.T) {
	t.Run("empty input yields one end token", func(t *testing.T) {
		s := New("", DefaultOptions())

		first, ok := s.Next()
		if !ok || first.Kind() != KindEOF {
			t.Fatalf("expected EOF token, got %v (ok=%v)", first, ok)
		}
		if first.Span.From != pos(1, 1) || !first.Span.IsEmpty() {
			t.Errorf("unexpected EOF span %v", first.Span)
		}

		for i := 0; i < 3; i++ {
			if extra, ok := s.Next(); ok {
				t.Fatalf("expected exhausted stream, got %v", extra)
			}
		}
	})

	t.Run("exactly one end token after input", func(t *testing.T) {
		toks := scanAll("a b", DefaultOptions())
		count := 0
		for _, tok := range toks {
			if tok.Kind() == KindEOF {
				count++
			}
		}
		if count != 1 || toks[len(toks)-1].Kind() != KindEOF {
			t.Fatalf("expected a single trailing EOF token, got %v", toks)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.EmitEndOfInput = false

		if toks := scanAll("", opts); len(toks) != 0 {
			t.Fatalf("expected no tokens, got %v", toks)
		}

		want := []Token{tok(1, 1, 1, 2, Identifier{Text: "ab"})}
		if diff := cmp.Diff(want, scanAll("ab", opts)); diff != "" {
			t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		`x "a""b" $ff 12 ~`,
		"for forx 'a' '\\0041'\n  z",
	}
	for _, input := range inputs {
		for _, opts := range []Options{DefaultOptions(), keywordOptions()} {
			first := scanAll(input, opts)
			second := scanAll(input, opts)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("%q scanned twice differs (-first +second):\n%s", input, diff)
			}
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	s := New("a b c d", DefaultOptions())

	var seen []Token
	for tok := range s.All() {
		seen = append(seen, tok)
		if len(seen) == 2 {
			break
		}
	}

	next, ok := s.Next()
	if !ok {
		t.Fatal("expected remaining tokens after early break")
	}
	if diff := cmp.Diff(tok(1, 5, 1, 5, Identifier{Text: "c"}), next); diff != "" {
		t.Errorf("resumed token mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithCursor(t *testing.T) {
	cur := NewCursor("ab")
	s := NewWithCursor(cur, DefaultOptions())

	if _, ok := s.Next(); !ok {
		t.Fatal("expected identifier token")
	}
	if !cur.Done() {
		t.Error("scanner should advance the shared cursor")
	}
}
