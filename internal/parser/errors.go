package parser

import (
	"strings"

	"github.com/hail-lang/hail/internal/diag"
	"github.com/hail-lang/hail/internal/lexer"
)

// SyntaxError reports the first token that did not fit the grammar. It
// carries the offending span, the token that was found, and the set of
// token kinds that would have been accepted at that position. A syntax
// error is terminal: no partial tree is produced.
type SyntaxError struct {
	Message  string
	Span     lexer.Span
	Got      lexer.TokenType
	Expected []lexer.TokenType
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// ToDiagnostic converts a syntax error into the shared diagnostic form.
func (e *SyntaxError) ToDiagnostic() diag.Diagnostic {
	d := diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseUnexpectedToken,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
	if len(e.Expected) > 0 {
		d.Help = "expected " + describeTokens(e.Expected)
	}
	return d
}

// describeTokens renders a set of acceptable token kinds for messages.
func describeTokens(tts []lexer.TokenType) string {
	parts := make([]string, len(tts))
	for i, tt := range tts {
		parts[i] = describeToken(tt)
	}
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
}

func describeToken(tt lexer.TokenType) string {
	switch tt {
	case lexer.IDENT:
		return "an identifier"
	case lexer.STRING:
		return "a string literal"
	case lexer.DEC_INT, lexer.HEX_INT, lexer.BIN_INT, lexer.FLOAT:
		return "a numeric literal"
	case lexer.EOF:
		return "end of input"
	}
	if kw, ok := keywordLexemes[tt]; ok {
		return "'" + kw + "'"
	}
	return "'" + string(tt) + "'"
}

// Keyword token types stringify as their upper-case names; messages want
// the source spelling.
var keywordLexemes = map[lexer.TokenType]string{
	lexer.TRUE:     "true",
	lexer.FALSE:    "false",
	lexer.FLUID:    "fluid",
	lexer.AS:       "as",
	lexer.ROUTINE:  "routine",
	lexer.VAL:      "val",
	lexer.SHARED:   "shared",
	lexer.IMPORT:   "import",
	lexer.FROM:     "from",
	lexer.IF:       "if",
	lexer.ELSE:     "else",
	lexer.WHILE:    "while",
	lexer.MATCH:    "match",
	lexer.STRUCT:   "struct",
	lexer.TYPE:     "type",
	lexer.ENUM:     "enum",
	lexer.BREAK:    "break",
	lexer.CONTINUE: "continue",
	lexer.RETURN:   "return",
	lexer.APPLY:    "apply",
	lexer.CONTRACT: "contract",
	lexer.TO:       "to",
}
