package parser_test

import (
	"strings"
	"testing"

	"github.com/aymanbagabas/go-udiff"

	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/parser"
)

func parseUnit(t *testing.T, src string) *ast.Unit {
	t.Helper()

	unit, err := parser.NewFromString(src).ParseUnit()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return unit
}

// assertDump parses src and compares the tree dump against want.
func assertDump(t *testing.T, src, want string) {
	t.Helper()

	unit := parseUnit(t, src)
	got := ast.Dump(unit)
	want = strings.TrimPrefix(want, "\n")

	if got != want {
		t.Errorf("tree mismatch for %q:\n%s", src, udiff.Unified("want", "got", want, got))
	}
}

func parseError(t *testing.T, src string) *parser.SyntaxError {
	t.Helper()

	_, err := parser.NewFromString(src).ParseUnit()
	if err == nil {
		t.Fatalf("parse %q: expected error", src)
	}
	synErr, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("parse %q: error is %T, want *parser.SyntaxError", src, err)
	}
	return synErr
}

func TestUnitSeparatorDiscipline(t *testing.T) {
	// Trailing separator is optional at the top level too.
	with := parseUnit(t, "val x = 1; val y = 2;")
	without := parseUnit(t, "val x = 1; val y = 2")

	if len(with.Stmts) != 2 || len(without.Stmts) != 2 {
		t.Fatalf("statement counts: got %d and %d, want 2 and 2",
			len(with.Stmts), len(without.Stmts))
	}
}

func TestMissingSeparatorBetweenRootStmts(t *testing.T) {
	err := parseError(t, "val x = 1 val y = 2")
	if err.Got != "VAL" {
		t.Errorf("offending token: got %s, want VAL", err.Got)
	}
}

func TestSpanNesting(t *testing.T) {
	unit := parseUnit(t, `
import { a, b as c } from core;
apply Foo to Bar { val x <- int32; };
val f = #inline routine (n <- int32) -> !int32:str {
	loop: while n > 0 {
		n -= 1;
		if n == 2 { break loop } else { continue }
	};
	match f() {
		ok <- int32 => { return ok },
		bad <- str => { return 0 }
	};
	return p::q.r(n, -n * 2 as int64)
}`)

	// Pre-order traversal with a span stack: every node must sit inside the
	// nearest open ancestor, and siblings must not overlap.
	var stack []ast.Node

	ast.Walk(unit, func(n ast.Node) bool {
		span := n.Span()

		for len(stack) > 0 {
			top := stack[len(stack)-1].Span()
			if top.Contains(span) {
				break
			}
			if span.Start < top.End {
				t.Errorf("span [%d,%d) overlaps sibling/ancestor [%d,%d)",
					span.Start, span.End, top.Start, top.End)
				return false
			}
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			top := stack[len(stack)-1].Span()
			if !top.Contains(span) {
				t.Errorf("span [%d,%d) escapes parent [%d,%d)",
					span.Start, span.End, top.Start, top.End)
				return false
			}
		}

		stack = append(stack, n)
		return true
	})
}
