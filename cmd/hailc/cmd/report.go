package cmd

import (
	"errors"
	"os"

	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/diag"
	"github.com/hail-lang/hail/internal/lexer"
	"github.com/hail-lang/hail/internal/parser"
)

// parseFile reads and parses one source unit, returning the source text
// alongside the tree so callers can register it with a formatter.
func parseFile(path string) (*ast.Unit, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	src := string(data)

	p := parser.NewFromString(src, parser.WithFilename(path))
	unit, err := p.ParseUnit()
	return unit, src, err
}

// report renders err through the formatter when it is a lexical or syntax
// diagnostic. It returns false for plain errors (I/O and the like), which
// the caller surfaces itself.
func report(f *diag.Formatter, path, src string, err error) bool {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		f.AddSource(path, src)
		f.Format(lexErr.ToDiagnostic())
		return true
	}

	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		f.AddSource(path, src)
		f.Format(synErr.ToDiagnostic())
		return true
	}

	return false
}
