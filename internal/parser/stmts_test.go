package parser_test

import (
	"testing"

	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/parser"
)

func TestBlockTailSeparatorOptional(t *testing.T) {
	// The tail statement may omit its separator; both spellings parse to
	// the same statement count.
	with := parseUnit(t, "{ val x = 1; x; }")
	without := parseUnit(t, "{ val x = 1; x }")

	for _, unit := range []*ast.Unit{with, without} {
		block, ok := unit.Stmts[0].Stmt.(*ast.BlockStmt)
		if !ok {
			t.Fatalf("statement is %T, want *ast.BlockStmt", unit.Stmts[0].Stmt)
		}
		if len(block.Body.Stmts) != 2 {
			t.Errorf("got %d statements, want 2", len(block.Body.Stmts))
		}
	}
}

func TestEmptyBlock(t *testing.T) {
	unit := parseUnit(t, "{ }")
	block := unit.Stmts[0].Stmt.(*ast.BlockStmt)
	if len(block.Body.Stmts) != 0 {
		t.Errorf("got %d statements, want 0", len(block.Body.Stmts))
	}
}

func TestValForms(t *testing.T) {
	assertDump(t, "val a", `
unit
  val a
`)

	assertDump(t, "val b <- int32", `
unit
  val b
    type:
      named int32
`)

	assertDump(t, "val c = 1", `
unit
  val c
    value:
      num dec 1
`)

	assertDump(t, "val d <- int32 = 1", `
unit
  val d
    type:
      named int32
    value:
      num dec 1
`)
}

func TestTypeDeclForms(t *testing.T) {
	assertDump(t, "type Opaque", `
unit
  type Opaque
`)

	assertDump(t, "type Pair = struct { a <- int32, b <- int32 }", `
unit
  type Pair
    struct
      field a
        named int32
      field b
        named int32
`)
}

func TestAssignmentForms(t *testing.T) {
	assertDump(t, "{ x = 1; x += 2; x <<= 3; p.q -= 4 }", `
unit
  nested-block
    block
      assign =
        id x
        num dec 1
      assign +=
        id x
        num dec 2
      assign <<=
        id x
        num dec 3
      assign -=
        access q
          id p
        num dec 4
`)
}

func TestIfElseChain(t *testing.T) {
	assertDump(t, "if a { x() } else if b { y() } else { z() }", `
unit
  if
    id a
    block
      call-stmt
        call
          id x
    else-if
      id b
      block
        call-stmt
          call
            id y
    else
      block
        call-stmt
          call
            id z
`)
}

func TestWhileWithLabel(t *testing.T) {
	assertDump(t, "outer: while a { break outer; continue }", `
unit
  while outer:
    id a
    block
      break outer
      continue
`)
}

func TestLabelRequiresWhile(t *testing.T) {
	err := parseError(t, "outer: break")
	if err.Got != "BREAK" {
		t.Errorf("offending token: got %s, want BREAK", err.Got)
	}
}

func TestMatchCases(t *testing.T) {
	assertDump(t, "match subject { ok <- int32 => { use(ok) }, bad <- str => { fail() } }", `
unit
  match
    id subject
    case ok
      named int32
      block
        call-stmt
          call
            id use
            id ok
    case bad
      named str
      block
        call-stmt
          call
            id fail
`)
}

func TestMatchCaseTrailingComma(t *testing.T) {
	unit := parseUnit(t, "match s { ok <- int32 => { f() }, }")
	match := unit.Stmts[0].Stmt.(*ast.MatchStmt)
	if len(match.Cases) != 1 {
		t.Errorf("got %d cases, want 1", len(match.Cases))
	}
}

func TestReturnForms(t *testing.T) {
	assertDump(t, "{ return; return -x }", `
unit
  nested-block
    block
      return
      return
        unary -
          id x
`)
}

func TestFlaggedBlockStmt(t *testing.T) {
	assertDump(t, "{ @unsafe @!checked { poke() } }", `
unit
  nested-block
    block
      nested-block
        @unsafe
        @!checked
        block
          call-stmt
            call
              id poke
`)
}

func TestMalformedValAndTypeReturnError(t *testing.T) {
	// Failures inside val/type statements must surface as errors, not as a
	// nil-receiver panic from a concrete nil behind the Stmt interface.
	tests := []string{
		"val 1",
		"val x = ;",
		"val x = €",
		"val x <- 42",
		"type = int32",
		"type T = €",
		"{ val x = ; }",
		"{ type T = }",
		"apply Foo { val x = ; }",
	}

	for _, src := range tests {
		unit, err := parser.NewFromString(src).ParseUnit()
		if err == nil {
			t.Errorf("parse %q: expected error", src)
		}
		if unit != nil {
			t.Errorf("parse %q: got partial tree", src)
		}
	}
}

func TestMissingBlockSeparator(t *testing.T) {
	err := parseError(t, "{ x() y() }")
	if err.Got != "IDENT" {
		t.Errorf("offending token: got %s, want IDENT", err.Got)
	}
}
