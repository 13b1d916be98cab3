package diag

import (
	"strings"
	"testing"
)

func TestFormatWithSnippet(t *testing.T) {
	var buf strings.Builder
	f := NewFormatterTo(&buf)
	f.AddSource("main.hl", "val x = 1;\nval y = $;\n")

	f.Format(Diagnostic{
		Stage:    StageLexer,
		Severity: SeverityError,
		Code:     CodeLexIllegalRune,
		Message:  "unrecognized character '$'",
		Span:     Span{Filename: "main.hl", Line: 2, Column: 9, Start: 19, End: 20},
		Help:     "remove the character",
	})

	out := buf.String()
	for _, want := range []string{
		"unrecognized character '$'",
		"--> main.hl:2:9",
		"val y = $;",
		"^",
		"help: remove the character",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatWithoutSource(t *testing.T) {
	var buf strings.Builder
	f := NewFormatterTo(&buf)

	f.Format(Diagnostic{
		Severity: SeverityError,
		Message:  "something failed",
	})

	out := buf.String()
	if !strings.Contains(out, "something failed") {
		t.Errorf("output missing message:\n%s", out)
	}
}

func TestCaretWidthMatchesSpan(t *testing.T) {
	var buf strings.Builder
	f := NewFormatterTo(&buf)
	f.AddSource("u.hl", "val broken = 1\n")

	f.Format(Diagnostic{
		Severity: SeverityError,
		Message:  "example",
		Span:     Span{Filename: "u.hl", Line: 1, Column: 5, Start: 4, End: 10},
	})

	if !strings.Contains(buf.String(), "^^^^^^") {
		t.Errorf("expected six-wide caret underline:\n%s", buf.String())
	}
}

func TestNotesAndHelpOrdering(t *testing.T) {
	var buf strings.Builder
	f := NewFormatterTo(&buf)

	d := Diagnostic{Severity: SeverityWarning, Message: "w"}.
		WithNote("first note").
		WithHelp("do the thing")
	f.Format(d)

	out := buf.String()
	noteIdx := strings.Index(out, "note: first note")
	helpIdx := strings.Index(out, "help: do the thing")
	if noteIdx == -1 || helpIdx == -1 || noteIdx > helpIdx {
		t.Errorf("notes must precede help:\n%s", out)
	}
}
