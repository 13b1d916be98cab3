package lexer

import (
	"errors"
	"testing"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()

	lx := New(input)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lexical error: %v", err)
		}
		if tok.Type == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func lexError(t *testing.T, input string) *Error {
	t.Helper()

	lx := New(input)
	for {
		tok, err := lx.Next()
		if err != nil {
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("error is %T, want *Error", err)
			}
			return lexErr
		}
		if tok.Type == EOF {
			t.Fatalf("lexed %q without error", input)
		}
	}
}

func assertTypes(t *testing.T, toks []Token, want ...TokenType) {
	t.Helper()

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLongestMatch(t *testing.T) {
	toks := lexAll(t, ">>= >> >= > <<= << <= < :: : -> => <- == = != !")
	assertTypes(t, toks,
		SHR_ASSIGN, SHR, GE, GT,
		SHL_ASSIGN, SHL, LE, LT,
		DOUBLE_COLON, COLON, ARROW, FATARROW, LARROW,
		EQ, ASSIGN, NOT_EQ, BANG,
	)
}

func TestCompoundAssignOperators(t *testing.T) {
	toks := lexAll(t, "+= -= *= /= %= &= |= ^= && || & |")
	assertTypes(t, toks,
		PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN,
		PERCENT_ASSIGN, AMP_ASSIGN, PIPE_ASSIGN, CARET_ASSIGN,
		AND, OR, AMPERSAND, PIPE,
	)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := lexAll(t, "val value routine routines fluid _private x9")
	assertTypes(t, toks, VAL, IDENT, ROUTINE, IDENT, FLUID, IDENT, IDENT)

	if toks[1].Raw != "value" {
		t.Errorf("identifier raw: got %q, want %q", toks[1].Raw, "value")
	}
}

func TestNumericSubkinds(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"42", DEC_INT},
		{"1_000", DEC_INT},
		{"0x2A", HEX_INT},
		{"0xDEAD_beef", HEX_INT},
		{"0b1010", BIN_INT},
		{"0b10_10", BIN_INT},
		{"4.2", FLOAT},
		{"1e9", FLOAT},
		{"2.5e-3", FLOAT},
	}

	for _, tc := range tests {
		toks := lexAll(t, tc.input)
		if len(toks) != 1 {
			t.Fatalf("%q: got %d tokens, want 1", tc.input, len(toks))
		}
		if toks[0].Type != tc.want {
			t.Errorf("%q: got %s, want %s", tc.input, toks[0].Type, tc.want)
		}
		if toks[0].Raw != tc.input {
			t.Errorf("%q: raw lexeme %q", tc.input, toks[0].Raw)
		}
	}
}

func TestMalformedNumbers(t *testing.T) {
	for _, input := range []string{"0x", "0b", "0x__", "1e", "1e+"} {
		err := lexError(t, input)
		if err.Kind != ErrMalformedNumber {
			t.Errorf("%q: got kind %d, want ErrMalformedNumber", input, err.Kind)
		}
	}
}

func TestDotAfterIntIsAccess(t *testing.T) {
	// "4.x" is an access on the integer 4, not a malformed float.
	toks := lexAll(t, "4.x")
	assertTypes(t, toks, DEC_INT, DOT, IDENT)
}

func TestStringVerbatim(t *testing.T) {
	toks := lexAll(t, `"a\nb"`)
	assertTypes(t, toks, STRING)

	// No escape interpretation: the backslash and 'n' pass through.
	if toks[0].Raw != `a\nb` {
		t.Errorf("raw text: got %q, want %q", toks[0].Raw, `a\nb`)
	}
}

func TestUnterminatedStringPosition(t *testing.T) {
	input := `val s = "abc`
	err := lexError(t, input)

	if err.Kind != ErrUnterminatedString {
		t.Fatalf("got kind %d, want ErrUnterminatedString", err.Kind)
	}
	// Positioned at the end of input, not at the opening quote.
	if err.Span.Start != len(input) {
		t.Errorf("span start: got %d, want %d", err.Span.Start, len(input))
	}
}

func TestUnterminatedStringAtNewline(t *testing.T) {
	input := "val s = \"abc\nval t = 1"
	err := lexError(t, input)

	if err.Kind != ErrUnterminatedString {
		t.Fatalf("got kind %d, want ErrUnterminatedString", err.Kind)
	}
	if err.Span.Start != 12 {
		t.Errorf("span start: got %d, want 12 (the newline)", err.Span.Start)
	}
}

func TestIllegalRunePosition(t *testing.T) {
	err := lexError(t, "val x = $")

	if err.Kind != ErrIllegalRune {
		t.Fatalf("got kind %d, want ErrIllegalRune", err.Kind)
	}
	if err.Span.Start != 8 || err.Span.End != 9 {
		t.Errorf("span: got [%d,%d), want [8,9)", err.Span.Start, err.Span.End)
	}
	if err.Span.Line != 1 || err.Span.Column != 9 {
		t.Errorf("position: got %d:%d, want 1:9", err.Span.Line, err.Span.Column)
	}
}

func TestCommentsSkipped(t *testing.T) {
	toks := lexAll(t, "a // line\nb /* block */ c /* outer /* nested */ still outer */ d")
	assertTypes(t, toks, IDENT, IDENT, IDENT, IDENT)
}

func TestUnterminatedBlockComment(t *testing.T) {
	err := lexError(t, "a /* never closed")
	if err.Kind != ErrUnterminatedComment {
		t.Fatalf("got kind %d, want ErrUnterminatedComment", err.Kind)
	}
}

func TestSpansAndPositions(t *testing.T) {
	toks := lexAll(t, "ab\n  cd")
	assertTypes(t, toks, IDENT, IDENT)

	first, second := toks[0], toks[1]
	if first.Span.Start != 0 || first.Span.End != 2 {
		t.Errorf("first span: got [%d,%d), want [0,2)", first.Span.Start, first.Span.End)
	}
	if second.Span.Line != 2 || second.Span.Column != 3 {
		t.Errorf("second position: got %d:%d, want 2:3", second.Span.Line, second.Span.Column)
	}
	if second.Span.Start != 5 || second.Span.End != 7 {
		t.Errorf("second span: got [%d,%d), want [5,7)", second.Span.Start, second.Span.End)
	}
}

func TestOffsetsMonotonic(t *testing.T) {
	toks := lexAll(t, "val x = a::b.c(1, 2) + 0x3 << \"s\"")

	prev := -1
	for _, tok := range toks {
		if tok.Span.Start < prev {
			t.Fatalf("token %s starts at %d, before previous start %d", tok.Type, tok.Span.Start, prev)
		}
		prev = tok.Span.Start
	}
}
