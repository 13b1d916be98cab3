package parser_test

import (
	"testing"

	"github.com/hail-lang/hail/internal/ast"
)

func TestImportSingleForm(t *testing.T) {
	assertDump(t, "import a", `
unit
  import
    item a
`)

	assertDump(t, "import a as b", `
unit
  import
    item a as b
`)

	assertDump(t, "import a as b from core", `
unit
  import
    item a as b
    from core
`)
}

func TestImportMultiForm(t *testing.T) {
	assertDump(t, "import { a, b as c } from core", `
unit
  import multi
    item a
    item b as c
    from core
`)
}

func TestImportMultiRequiresFrom(t *testing.T) {
	err := parseError(t, "import { a, b as c }")
	if err.Got != "EOF" {
		t.Errorf("offending token: got %s, want EOF", err.Got)
	}

	found := false
	for _, tt := range err.Expected {
		if tt == "FROM" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected set %v does not include FROM", err.Expected)
	}
}

func TestApplyDecl(t *testing.T) {
	unit := parseUnit(t, "apply Foo to Bar { val x <- int32; }")

	apply, ok := unit.Stmts[0].Stmt.(*ast.ApplyDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ApplyDecl", unit.Stmts[0].Stmt)
	}

	subject, ok := apply.Subject.(*ast.NamedType)
	if !ok || subject.Name.Name != "Foo" {
		t.Errorf("subject: got %#v, want named Foo", apply.Subject)
	}
	target, ok := apply.To.(*ast.NamedType)
	if !ok || target.Name.Name != "Bar" {
		t.Errorf("target: got %#v, want named Bar", apply.To)
	}

	if len(apply.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(apply.Items))
	}
	val, ok := apply.Items[0].(*ast.ValStmt)
	if !ok {
		t.Fatalf("item is %T, want *ast.ValStmt", apply.Items[0])
	}
	if val.Name.Name != "x" {
		t.Errorf("val name: got %q, want %q", val.Name.Name, "x")
	}
	if _, ok := val.Type.(*ast.NamedType); !ok {
		t.Errorf("val annotation: got %#v, want named int32", val.Type)
	}
	if val.Value != nil {
		t.Errorf("val initializer: got %#v, want none", val.Value)
	}
}

func TestApplyWithoutTarget(t *testing.T) {
	assertDump(t, "apply core::Foo { type Out = int32; val zero = 0 }", `
unit
  apply
    subject:
      type-path Foo
        named core
    type Out
      named int32
    val zero
      value:
        num dec 0
`)
}

func TestApplyRejectsOtherStatements(t *testing.T) {
	err := parseError(t, "apply Foo { return }")
	if err.Got != "RETURN" {
		t.Errorf("offending token: got %s, want RETURN", err.Got)
	}
}

func TestRootFlags(t *testing.T) {
	assertDump(t, "@entry @!trace val main = routine () { run() }", `
unit
  @entry
  @!trace
  val main
    value:
      routine
        block
          call-stmt
            call
              id run
`)
}

func TestFlagsOnImport(t *testing.T) {
	unit := parseUnit(t, "@vendored import util from core")
	root := unit.Stmts[0]

	if len(root.Flags) != 1 || root.Flags[0].Name.Name != "vendored" {
		t.Fatalf("flags: got %#v", root.Flags)
	}
	if _, ok := root.Stmt.(*ast.ImportDecl); !ok {
		t.Fatalf("statement is %T, want *ast.ImportDecl", root.Stmt)
	}
}
