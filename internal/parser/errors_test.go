package parser_test

import (
	"errors"
	"testing"

	"github.com/hail-lang/hail/internal/diag"
	"github.com/hail-lang/hail/internal/lexer"
	"github.com/hail-lang/hail/internal/parser"
)

// sliceSource feeds a canned token sequence, exercising the parser without
// a lexer behind it.
type sliceSource struct {
	toks []lexer.Token
	pos  int
	err  error
}

func (s *sliceSource) Next() (lexer.Token, error) {
	if s.pos >= len(s.toks) {
		if s.err != nil {
			return lexer.Token{}, s.err
		}
		return lexer.Token{Type: lexer.EOF}, nil
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, nil
}

func tok(tt lexer.TokenType, raw string, start, end int) lexer.Token {
	return lexer.Token{
		Type: tt,
		Raw:  raw,
		Span: lexer.Span{Line: 1, Column: start + 1, Start: start, End: end},
	}
}

func TestCannedTokenSource(t *testing.T) {
	// val x = 1
	src := &sliceSource{toks: []lexer.Token{
		tok(lexer.VAL, "val", 0, 3),
		tok(lexer.IDENT, "x", 4, 5),
		tok(lexer.ASSIGN, "=", 6, 7),
		tok(lexer.DEC_INT, "1", 8, 9),
	}}

	unit, err := parser.New(src).ParseUnit()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(unit.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(unit.Stmts))
	}
}

func TestLexicalErrorSurfacesUnchanged(t *testing.T) {
	_, err := parser.NewFromString("val x = $").ParseUnit()

	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error is %T, want *lexer.Error", err)
	}
	if lexErr.Kind != lexer.ErrIllegalRune {
		t.Errorf("kind: got %d, want ErrIllegalRune", lexErr.Kind)
	}
	if lexErr.Span.Start != 8 {
		t.Errorf("span start: got %d, want 8", lexErr.Span.Start)
	}
}

func TestLexicalErrorNotMaskedBySyntax(t *testing.T) {
	// The illegal rune is hit while filling the lookahead window; the
	// resulting syntactic confusion must not replace it.
	mid := errors.New("boom")
	src := &sliceSource{
		toks: []lexer.Token{
			tok(lexer.VAL, "val", 0, 3),
			tok(lexer.IDENT, "x", 4, 5),
			tok(lexer.ASSIGN, "=", 6, 7),
		},
		err: mid,
	}

	_, err := parser.New(src).ParseUnit()
	if !errors.Is(err, mid) {
		t.Fatalf("error: got %v, want the source error", err)
	}
}

func TestNoPartialTree(t *testing.T) {
	unit, err := parser.NewFromString("val x = 1; val y = ").ParseUnit()
	if err == nil {
		t.Fatal("expected error")
	}
	if unit != nil {
		t.Fatalf("got partial tree %v, want nil", unit)
	}
}

func TestSyntaxErrorDiagnostic(t *testing.T) {
	_, err := parser.NewFromString("val 1", parser.WithFilename("main.hl")).ParseUnit()

	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("error is %T, want *parser.SyntaxError", err)
	}

	d := synErr.ToDiagnostic()
	if d.Stage != diag.StageParser {
		t.Errorf("stage: got %v, want StageParser", d.Stage)
	}
	if d.Span.Filename != "main.hl" {
		t.Errorf("filename: got %q, want %q", d.Span.Filename, "main.hl")
	}
	if d.Help == "" {
		t.Error("diagnostic help is empty")
	}
}

func TestWithFilenameOnSpans(t *testing.T) {
	unit, err := parser.NewFromString("val x = 1", parser.WithFilename("main.hl")).ParseUnit()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := unit.Stmts[0].Stmt.Span().Filename; got != "main.hl" {
		t.Errorf("filename: got %q, want %q", got, "main.hl")
	}
}
