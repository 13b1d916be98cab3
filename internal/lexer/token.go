package lexer

// TokenType classifies a lexical token.
type TokenType string

// Span is a half-open [Start, End) rune-offset range into a source unit.
type Span struct {
	Filename string // source unit the span belongs to
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // offset of the first rune
	End      int    // exclusive end offset
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Token is a classified lexical unit with its source span.
type Token struct {
	Type TokenType
	Raw  string // exact runes from source; for strings, the text between the quotes
	Span Span
}

// Token type constants.
const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and payload-bearing literals. String literals carry the
	// raw inter-quote text verbatim; escape processing is deferred to a
	// later stage.
	IDENT   TokenType = "IDENT"
	DEC_INT TokenType = "DEC_INT" // 42
	HEX_INT TokenType = "HEX_INT" // 0x2a
	BIN_INT TokenType = "BIN_INT" // 0b101010
	FLOAT   TokenType = "FLOAT"   // 4.2, 1e9
	STRING  TokenType = "STRING"  // "hello"

	// Three-character operators.
	SHL_ASSIGN TokenType = "<<="
	SHR_ASSIGN TokenType = ">>="

	// Two-character operators.
	DOUBLE_COLON   TokenType = "::"
	ARROW          TokenType = "->"
	FATARROW       TokenType = "=>"
	LARROW         TokenType = "<-"
	EQ             TokenType = "=="
	NOT_EQ         TokenType = "!="
	LE             TokenType = "<="
	GE             TokenType = ">="
	AND            TokenType = "&&"
	OR             TokenType = "||"
	SHL            TokenType = "<<"
	SHR            TokenType = ">>"
	PLUS_ASSIGN    TokenType = "+="
	MINUS_ASSIGN   TokenType = "-="
	STAR_ASSIGN    TokenType = "*="
	SLASH_ASSIGN   TokenType = "/="
	PERCENT_ASSIGN TokenType = "%="
	AMP_ASSIGN     TokenType = "&="
	PIPE_ASSIGN    TokenType = "|="
	CARET_ASSIGN   TokenType = "^="

	// Single-character operators and punctuation.
	ASSIGN    TokenType = "="
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	ASTERISK  TokenType = "*"
	SLASH     TokenType = "/"
	PERCENT   TokenType = "%"
	BANG      TokenType = "!"
	AMPERSAND TokenType = "&"
	PIPE      TokenType = "|"
	CARET     TokenType = "^"
	LT        TokenType = "<"
	GT        TokenType = ">"
	QUESTION  TokenType = "?"
	HASH      TokenType = "#"
	AT        TokenType = "@"
	COLON     TokenType = ":"
	DOT       TokenType = "."
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords.
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
	FLUID    TokenType = "FLUID"
	AS       TokenType = "AS"
	ROUTINE  TokenType = "ROUTINE"
	VAL      TokenType = "VAL"
	SHARED   TokenType = "SHARED"
	IMPORT   TokenType = "IMPORT"
	FROM     TokenType = "FROM"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	WHILE    TokenType = "WHILE"
	MATCH    TokenType = "MATCH"
	STRUCT   TokenType = "STRUCT"
	TYPE     TokenType = "TYPE"
	ENUM     TokenType = "ENUM"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	RETURN   TokenType = "RETURN"
	APPLY    TokenType = "APPLY"
	CONTRACT TokenType = "CONTRACT"
	TO       TokenType = "TO"
)

var keywords = map[string]TokenType{
	"true":     TRUE,
	"false":    FALSE,
	"fluid":    FLUID,
	"as":       AS,
	"routine":  ROUTINE,
	"val":      VAL,
	"shared":   SHARED,
	"import":   IMPORT,
	"from":     FROM,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"match":    MATCH,
	"struct":   STRUCT,
	"type":     TYPE,
	"enum":     ENUM,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"apply":    APPLY,
	"contract": CONTRACT,
	"to":       TO,
}

// LookupIdent resolves an identifier lexeme against the reserved word table.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsNumeric reports whether tt is one of the four numeric literal subkinds.
func IsNumeric(tt TokenType) bool {
	switch tt {
	case DEC_INT, HEX_INT, BIN_INT, FLOAT:
		return true
	default:
		return false
	}
}
