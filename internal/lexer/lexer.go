// Package lexer implements the lexscan scanner: a position-tracking
// character cursor and a dispatcher that runs one recognizer per token
// category, rolling the cursor back whenever a recognizer fails.
package lexer

import (
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/orizon-lang/lexscan/internal/logging"
	"github.com/orizon-lang/lexscan/internal/logging/logfields"
	"github.com/orizon-lang/lexscan/internal/position"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "lexer")

// recognizer consumes one token's characters and reports false when the
// input is malformed.
type recognizer func() (Value, bool)

// Scanner produces tokens from a Cursor on demand. A Scanner is not safe
// for concurrent use.
type Scanner struct {
	cur   *Cursor
	opts  Options
	ended bool // EndOfInput already yielded or suppressed
	log   *logrus.Entry
}

// New creates a scanner over input
func New(input string, opts Options) *Scanner {
	return NewWithCursor(NewCursor(input), opts)
}

// NewWithCursor creates a scanner reading from an existing cursor
func NewWithCursor(cur *Cursor, opts Options) *Scanner {
	return &Scanner{
		cur:  cur,
		opts: opts,
		log:  log.WithField(logfields.Dialect, opts.Dialect.String()),
	}
}

// WithLogger replaces the logger used for debug output
func (s *Scanner) WithLogger(entry *logrus.Entry) *Scanner {
	s.log = entry.WithField(logfields.Dialect, s.opts.Dialect.String())
	return s
}

// Options returns the scanner configuration
func (s *Scanner) Options() Options {
	return s.opts
}

// Next returns the next token. The second result is false once the
// stream is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for {
		ch, ok := s.cur.Peek()
		if !ok {
			return s.endOfInput()
		}

		start := s.cur.Mark()
		from := s.cur.Pos()

		var value Value
		if recognize := s.recognizerFor(ch); recognize != nil {
			value, ok = recognize()
		} else {
			ok = false
		}

		if !ok {
			s.cur.Restore(start)
			bad, _ := s.cur.Advance()
			if s.debugEnabled() {
				s.log.WithFields(logrus.Fields{
					logfields.Position: from.String(),
					logfields.Char:     string(bad),
				}).Debug("Unrecognized input")
			}
			if s.opts.SkipErrors {
				continue
			}
			return Token{
				Span:  position.Span{From: from, To: from},
				Value: ErrorChar{Char: bad},
			}, true
		}

		if _, isSpace := value.(Whitespace); isSpace && !s.opts.RetainWhitespace {
			continue
		}

		return Token{
			Span:  position.Span{From: from, To: s.cur.PrevPos()},
			Value: value,
		}, true
	}
}

// All streams the remaining tokens
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// recognizerFor picks the recognizer for a token starting with ch, or
// nil when ch cannot start any token of the dialect.
func (s *Scanner) recognizerFor(ch rune) recognizer {
	if isSpace(ch) {
		return s.scanWhitespace
	}

	switch s.opts.Dialect {
	case DialectKeywords:
		switch {
		case ch == '\'':
			return s.scanChar
		case isAlpha(ch):
			return s.scanIdentOrKeyword
		}
	default:
		switch {
		case ch == '"':
			return s.scanString
		case isDigit(ch):
			return s.scanDecimal
		case ch == '$':
			return s.scanHex
		case isAlpha(ch):
			return s.scanIdentifier
		}
	}
	return nil
}

// endOfInput yields the EndOfInput token once, if enabled
func (s *Scanner) endOfInput() (Token, bool) {
	if s.ended || !s.opts.EmitEndOfInput {
		s.ended = true
		return Token{}, false
	}
	s.ended = true

	pos := s.cur.Pos()
	return Token{
		Span:  position.Span{From: pos, To: pos},
		Value: EndOfInput{},
	}, true
}

func (s *Scanner) debugEnabled() bool {
	return s.log.Logger.IsLevelEnabled(logrus.DebugLevel)
}
