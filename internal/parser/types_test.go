package parser_test

import (
	"testing"

	"github.com/hail-lang/hail/internal/ast"
)

func TestTypePath(t *testing.T) {
	assertDump(t, "val x <- core::mem::Slab", `
unit
  val x
    type:
      type-path Slab
        type-path mem
          named core
`)
}

func TestRoutineTypes(t *testing.T) {
	assertDump(t, "val f <- routine ()", `
unit
  val f
    type:
      routine-type
`)

	assertDump(t, "val g <- routine (int32, &str) -> ?int32", `
unit
  val g
    type:
      routine-type
        named int32
        ref
          named str
        return:
          opt
            named int32
`)
}

func TestStructAndEnumTypes(t *testing.T) {
	assertDump(t, "type List = enum { nil, cons <- struct { head <- int32, tail <- List } }", `
unit
  type List
    enum
      variant nil
      variant cons
        struct
          field head
            named int32
          field tail
            named List
`)
}

func TestContractType(t *testing.T) {
	assertDump(t, "type Writer = contract { type Out; val write <- routine (Out) -> int32 }", `
unit
  type Writer
    contract
      type Out
      val write
        type:
          routine-type
            named Out
            return:
              named int32
`)
}

func TestModifierTypesNest(t *testing.T) {
	assertDump(t, "val x <- shared fluid &?int32", `
unit
  val x
    type:
      shared
        fluid
          ref
            opt
              named int32
`)
}

func TestResultType(t *testing.T) {
	assertDump(t, "val r <- !int32:str", `
unit
  val r
    type:
      result
        named int32
        named str
`)

	// The ok position takes a full type, so modifiers nest inside.
	assertDump(t, "val s <- !&int32:Error", `
unit
  val s
    type:
      result
        ref
          named int32
        named Error
`)
}

func TestResultTypeMissingColon(t *testing.T) {
	err := parseError(t, "val r <- !int32")
	if err.Got != "EOF" {
		t.Errorf("offending token: got %s, want EOF", err.Got)
	}
}

func TestExpectedTypeError(t *testing.T) {
	err := parseError(t, "val x <- 42")
	if err.Message != "expected type" {
		t.Errorf("message: got %q, want %q", err.Message, "expected type")
	}
	if err.Got != "DEC_INT" {
		t.Errorf("offending token: got %s, want DEC_INT", err.Got)
	}
}

func TestEmptyStructType(t *testing.T) {
	unit := parseUnit(t, "type Unit = struct { }")
	decl := unit.Stmts[0].Stmt.(*ast.TypeDeclStmt)
	st, ok := decl.Type.(*ast.StructType)
	if !ok {
		t.Fatalf("type is %T, want *ast.StructType", decl.Type)
	}
	if len(st.Fields) != 0 {
		t.Errorf("got %d fields, want 0", len(st.Fields))
	}
}
