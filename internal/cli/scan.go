package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/orizon-lang/lexscan/internal/lexer"
	"github.com/orizon-lang/lexscan/internal/logging/logfields"
	"github.com/orizon-lang/lexscan/internal/option"
	"github.com/orizon-lang/lexscan/internal/position"
	"github.com/orizon-lang/lexscan/internal/printer"
	"github.com/orizon-lang/lexscan/internal/termcap"
	"github.com/orizon-lang/lexscan/internal/watch"
)

// NewPrinter picks the printer for the configured format and color mode
func NewPrinter(cfg *option.Config, w io.Writer) printer.Printer {
	if cfg.Format == option.FormatJSON {
		return printer.NewJSON(w)
	}

	var colored bool
	switch cfg.Color {
	case option.ColorAlways:
		colored = true
	case option.ColorNever:
		colored = false
	default:
		colored = termcap.ColorEnabled(w)
	}
	return printer.NewText(w, colored)
}

// PrintTokens scans content and hands every token to p. It returns the
// number of tokens printed.
func PrintTokens(p printer.Printer, filename, content string, opts lexer.Options) (int, error) {
	if err := p.Header(filename, content); err != nil {
		return 0, err
	}

	var src *position.Source
	count := 0
	scanner := lexer.New(content, opts).WithLogger(log.WithField(logfields.Path, filename))
	for tok := range scanner.All() {
		if err := p.Print(tok); err != nil {
			return count, err
		}
		count++

		if tok.Kind() == lexer.KindError && log.Logger.IsLevelEnabled(logrus.DebugLevel) {
			if src == nil {
				src = position.NewSource(content)
			}
			log.WithFields(logrus.Fields{
				logfields.Path:     filename,
				logfields.Position: tok.Span.From.String(),
				logfields.Snippet:  src.Highlight(tok.Span),
			}).Debug("Error token")
		}

		// The keywords dialect ends its print loop on the end marker
		// itself rather than on stream exhaustion.
		if opts.Dialect == lexer.DialectKeywords && tok.Kind() == lexer.KindEOF {
			break
		}
	}
	return count, nil
}

// ScanFile reads path as a whole and prints its tokens to w
func ScanFile(cfg *option.Config, path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	count, err := PrintTokens(NewPrinter(cfg, w), path, string(data), cfg.Scanner)
	if err != nil {
		return fmt.Errorf("failed to print tokens: %w", err)
	}

	log.WithFields(logrus.Fields{
		logfields.Path:    path,
		logfields.Dialect: cfg.Scanner.Dialect.String(),
		logfields.Tokens:  count,
	}).Debug("Scanned file")
	return nil
}

// Run scans path once and, in watch mode, again after every change until
// ctx is cancelled.
func Run(ctx context.Context, cfg *option.Config, path string, w io.Writer) error {
	if err := ScanFile(cfg, path, w); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	return watch.Run(ctx, path, watch.DefaultDebounce, func() error {
		fmt.Fprintln(w)
		err := ScanFile(cfg, path, w)
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField(logfields.Path, path).Warn("File disappeared, waiting for it to come back")
			return nil
		}
		return err
	})
}
