package parser

import (
	"testing"

	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/lexer"
)

// callArgs parses "(a, b, ...)" out of input and returns the argument list,
// driving parseDelimited the way the call grammar does.
func callArgs(t *testing.T, input string) ([]ast.Expr, error) {
	t.Helper()

	p := NewFromString(input)
	unit, err := p.ParseUnit()
	if err != nil {
		return nil, err
	}

	call := unit.Stmts[0].Stmt.(*ast.CallStmt).Expr.(*ast.CallExpr)
	return call.Args, nil
}

func TestDelimitedTrailingSeparator(t *testing.T) {
	args, err := callArgs(t, "f(a, b,)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(args) != 2 {
		t.Errorf("got %d args, want 2", len(args))
	}
}

func TestDelimitedEmptyList(t *testing.T) {
	args, err := callArgs(t, "f()")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("got %d args, want 0", len(args))
	}
}

func TestDelimitedMissingSeparator(t *testing.T) {
	_, err := callArgs(t, "f(a b)")
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("error is %T, want *SyntaxError", err)
	}
	if synErr.Got != lexer.IDENT {
		t.Errorf("offending token: got %s, want IDENT", synErr.Got)
	}
}

func TestDelimitedAbortsOnFirstError(t *testing.T) {
	p := NewFromString("f(a, ;, b)")
	_, err := p.ParseUnit()
	if err == nil {
		t.Fatal("expected error")
	}
	// The terminal error is the one raised at the bad element, not a
	// later cascade.
	synErr := err.(*SyntaxError)
	if synErr.Message != "expected expression" {
		t.Errorf("message: got %q, want %q", synErr.Message, "expected expression")
	}
}

func TestLookaheadWindowSeeding(t *testing.T) {
	p := NewFromString("a b")
	if p.curTok.Type != lexer.IDENT || p.curTok.Raw != "a" {
		t.Errorf("curTok: got %s %q, want IDENT a", p.curTok.Type, p.curTok.Raw)
	}
	if p.peekTok.Type != lexer.IDENT || p.peekTok.Raw != "b" {
		t.Errorf("peekTok: got %s %q, want IDENT b", p.peekTok.Type, p.peekTok.Raw)
	}
}
