package ast

import (
	"strings"
	"testing"

	"github.com/hail-lang/hail/internal/lexer"
)

func span(start, end int) lexer.Span {
	return lexer.Span{Line: 1, Column: start + 1, Start: start, End: end}
}

// "val x = 1 + 2" built by hand.
func sampleUnit() *Unit {
	one := NewNumberLit(NumberDec, "1", span(8, 9))
	two := NewNumberLit(NumberDec, "2", span(12, 13))
	sum := NewBinaryExpr(lexer.PLUS, one, two, span(8, 13))
	val := NewValStmt(NewIdent("x", span(4, 5)), nil, sum, span(0, 13))
	root := NewRootStmt(nil, val, span(0, 13))
	return NewUnit([]*RootStmt{root}, span(0, 13))
}

func TestWalkVisitsInSourceOrder(t *testing.T) {
	var starts []int
	Walk(sampleUnit(), func(n Node) bool {
		starts = append(starts, n.Span().Start)
		return true
	})

	for i := 1; i < len(starts); i++ {
		if starts[i] < starts[i-1] {
			t.Fatalf("visit %d starts at %d, before previous %d", i, starts[i], starts[i-1])
		}
	}
	if len(starts) != 7 {
		t.Errorf("visited %d nodes, want 7", len(starts))
	}
}

func TestWalkStopsBranch(t *testing.T) {
	var visited int
	Walk(sampleUnit(), func(n Node) bool {
		visited++
		// Do not descend into the binary expression.
		_, isBinary := n.(*BinaryExpr)
		return !isBinary
	})

	// unit, root stmt, val, ident, binary: the two literals are skipped.
	if visited != 5 {
		t.Errorf("visited %d nodes, want 5", visited)
	}
}

func TestDumpSample(t *testing.T) {
	got := Dump(sampleUnit())
	want := strings.Join([]string{
		"unit",
		"  val x",
		"    value:",
		"      binary +",
		"        num dec 1",
		"        num dec 2",
		"",
	}, "\n")

	if got != want {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
