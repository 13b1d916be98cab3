package lexer

import "github.com/hail-lang/hail/internal/diag"

func (k ErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexUnterminatedString
	case ErrUnterminatedComment:
		return diag.CodeLexUnterminatedComment
	case ErrMalformedNumber:
		return diag.CodeLexMalformedNumber
	default:
		return diag.CodeLexIllegalRune
	}
}

// ToDiagnostic converts a lexical error into the shared diagnostic form.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}
