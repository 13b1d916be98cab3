// Package diag holds the diagnostic model shared by the lexer, the parser
// and the CLI driver, plus a terminal formatter for it.
package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexical errors.
	CodeLexIllegalRune         Code = "LEX_ILLEGAL_RUNE"
	CodeLexUnterminatedString  Code = "LEX_UNTERMINATED_STRING"
	CodeLexUnterminatedComment Code = "LEX_UNTERMINATED_COMMENT"
	CodeLexMalformedNumber     Code = "LEX_MALFORMED_NUMBER"

	// Syntactic errors.
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
)

// Span is a half-open source location range.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid reports whether the span carries usable location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a front-end diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Help     string   // optional help text
	Notes    []string // additional notes to display
}

// WithHelp returns a copy of the diagnostic with help text attached.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithNote returns a copy of the diagnostic with an extra note.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}
