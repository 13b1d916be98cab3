package lexer

import (
	"strconv"
)

// ErrorKind distinguishes the lexical failure modes.
type ErrorKind int

const (
	ErrIllegalRune ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedComment
	ErrMalformedNumber
)

// Error is a lexical error. Its span points at the offending character, not
// at the start of the enclosing token.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
}

func (e *Error) Error() string {
	return e.Message
}

// Lexer scans one immutable source unit into tokens. It satisfies the
// parser's TokenSource contract: tokens are yielded in source order with
// monotonically non-decreasing offsets, terminated by an EOF token, and the
// first lexical error aborts the scan.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = end of input)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string
}

// New creates a lexer over input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before the first rune
		line:   1,
		column: 0, // becomes 1 after the first read()
	}
	l.read()
	return l
}

// SetFilename attributes all emitted spans to the given source unit.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// read advances the lexer to the next rune, keeping line/column in step.
func (l *Lexer) read() {
	l.pos++
	prev := l.pos - 1

	if prev >= 0 && prev < len(l.input) && l.input[prev] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next rune without advancing.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// peek2 returns the rune two positions ahead without advancing.
func (l *Lexer) peek2() rune {
	if l.pos+2 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+2]
}

func (l *Lexer) spanFrom(startLine, startColumn, startPos int) Span {
	return Span{
		Filename: l.filename,
		Line:     startLine,
		Column:   startColumn,
		Start:    startPos,
		End:      l.pos,
	}
}

// spanHere is a one-rune span at the current position.
func (l *Lexer) spanHere() Span {
	end := l.pos + 1
	if l.pos >= len(l.input) {
		end = l.pos
	}
	return Span{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Start:    l.pos,
		End:      end,
	}
}

func (l *Lexer) makeToken(tt TokenType, startLine, startColumn, startPos int, raw string) Token {
	return Token{
		Type: tt,
		Raw:  raw,
		Span: l.spanFrom(startLine, startColumn, startPos),
	}
}

// operator consumes n runes and returns a token of type tt.
func (l *Lexer) operator(tt TokenType, n int) Token {
	startLine, startColumn, startPos := l.line, l.column, l.pos
	for i := 0; i < n; i++ {
		l.read()
	}
	return l.makeToken(tt, startLine, startColumn, startPos, string(l.input[startPos:l.pos]))
}

// skipWhitespace skips spaces, tabs and line terminators. Trivia is never
// emitted as tokens.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

// skipLineComment consumes "//" through the end of the line.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.read()
	}
}

// skipBlockComment consumes a (nestable) "/* */" comment. The opening "/*"
// has already been consumed by the caller.
func (l *Lexer) skipBlockComment() error {
	depth := 1
	for depth > 0 {
		switch {
		case l.ch == 0:
			return &Error{
				Kind:    ErrUnterminatedComment,
				Message: "unterminated block comment",
				Span:    l.spanHere(),
			}
		case l.ch == '/' && l.peek() == '*':
			l.read()
			l.read()
			depth++
		case l.ch == '*' && l.peek() == '/':
			l.read()
			l.read()
			depth--
		default:
			l.read()
		}
	}
	return nil
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber scans one of the four numeric subkinds. The raw lexeme is kept
// verbatim, including any '_' digit separators.
func (l *Lexer) readNumber() (Token, error) {
	startLine, startColumn, startPos := l.line, l.column, l.pos

	if l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.read() // '0'
		l.read() // 'x'
		digits := 0
		for isHexDigit(l.ch) || l.ch == '_' {
			if l.ch != '_' {
				digits++
			}
			l.read()
		}
		if digits == 0 {
			return Token{}, &Error{
				Kind:    ErrMalformedNumber,
				Message: "hex literal requires at least one digit",
				Span:    l.spanFrom(startLine, startColumn, startPos),
			}
		}
		return l.makeToken(HEX_INT, startLine, startColumn, startPos, string(l.input[startPos:l.pos])), nil
	}

	if l.ch == '0' && (l.peek() == 'b' || l.peek() == 'B') {
		l.read() // '0'
		l.read() // 'b'
		digits := 0
		for l.ch == '0' || l.ch == '1' || l.ch == '_' {
			if l.ch != '_' {
				digits++
			}
			l.read()
		}
		if digits == 0 {
			return Token{}, &Error{
				Kind:    ErrMalformedNumber,
				Message: "binary literal requires at least one digit",
				Span:    l.spanFrom(startLine, startColumn, startPos),
			}
		}
		return l.makeToken(BIN_INT, startLine, startColumn, startPos, string(l.input[startPos:l.pos])), nil
	}

	kind := DEC_INT
	for isDigit(l.ch) || l.ch == '_' {
		l.read()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		kind = FLOAT
		l.read() // '.'
		for isDigit(l.ch) || l.ch == '_' {
			l.read()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		kind = FLOAT
		l.read()
		if l.ch == '+' || l.ch == '-' {
			l.read()
		}
		digits := 0
		for isDigit(l.ch) || l.ch == '_' {
			if l.ch != '_' {
				digits++
			}
			l.read()
		}
		if digits == 0 {
			return Token{}, &Error{
				Kind:    ErrMalformedNumber,
				Message: "float exponent requires at least one digit",
				Span:    l.spanFrom(startLine, startColumn, startPos),
			}
		}
	}

	return l.makeToken(kind, startLine, startColumn, startPos, string(l.input[startPos:l.pos])), nil
}

// readString scans a string literal. The inter-quote text is passed through
// verbatim; no escape sequences are interpreted. Strings do not span lines.
func (l *Lexer) readString() (Token, error) {
	startLine, startColumn, startPos := l.line, l.column, l.pos
	l.read() // opening quote

	for {
		switch l.ch {
		case '"':
			raw := string(l.input[startPos+1 : l.pos])
			l.read() // closing quote
			return l.makeToken(STRING, startLine, startColumn, startPos, raw), nil
		case 0, '\n', '\r':
			return Token{}, &Error{
				Kind:    ErrUnterminatedString,
				Message: "unterminated string literal",
				Span:    l.spanHere(),
			}
		default:
			l.read()
		}
	}
}

// Next returns the next token, or a lexical error. Once an error is returned
// the lexer's remaining output is unspecified; the caller is expected to
// abandon the unit.
func (l *Lexer) Next() (Token, error) {
	for {
		l.skipWhitespace()

		switch l.ch {
		case 0:
			startColumn := l.column
			if startColumn == 0 {
				startColumn = 1
			}
			return Token{
				Type: EOF,
				Span: Span{Filename: l.filename, Line: l.line, Column: startColumn, Start: l.pos, End: l.pos},
			}, nil

		case '/':
			switch l.peek() {
			case '/':
				l.skipLineComment()
				continue
			case '*':
				l.read()
				l.read()
				if err := l.skipBlockComment(); err != nil {
					return Token{}, err
				}
				continue
			case '=':
				return l.operator(SLASH_ASSIGN, 2), nil
			default:
				return l.operator(SLASH, 1), nil
			}

		case '<':
			switch l.peek() {
			case '<':
				if l.peek2() == '=' {
					return l.operator(SHL_ASSIGN, 3), nil
				}
				return l.operator(SHL, 2), nil
			case '=':
				return l.operator(LE, 2), nil
			case '-':
				return l.operator(LARROW, 2), nil
			default:
				return l.operator(LT, 1), nil
			}

		case '>':
			switch l.peek() {
			case '>':
				if l.peek2() == '=' {
					return l.operator(SHR_ASSIGN, 3), nil
				}
				return l.operator(SHR, 2), nil
			case '=':
				return l.operator(GE, 2), nil
			default:
				return l.operator(GT, 1), nil
			}

		case '=':
			switch l.peek() {
			case '=':
				return l.operator(EQ, 2), nil
			case '>':
				return l.operator(FATARROW, 2), nil
			default:
				return l.operator(ASSIGN, 1), nil
			}

		case '-':
			switch l.peek() {
			case '>':
				return l.operator(ARROW, 2), nil
			case '=':
				return l.operator(MINUS_ASSIGN, 2), nil
			default:
				return l.operator(MINUS, 1), nil
			}

		case '&':
			switch l.peek() {
			case '&':
				return l.operator(AND, 2), nil
			case '=':
				return l.operator(AMP_ASSIGN, 2), nil
			default:
				return l.operator(AMPERSAND, 1), nil
			}

		case '|':
			switch l.peek() {
			case '|':
				return l.operator(OR, 2), nil
			case '=':
				return l.operator(PIPE_ASSIGN, 2), nil
			default:
				return l.operator(PIPE, 1), nil
			}

		case ':':
			if l.peek() == ':' {
				return l.operator(DOUBLE_COLON, 2), nil
			}
			return l.operator(COLON, 1), nil

		case '!':
			if l.peek() == '=' {
				return l.operator(NOT_EQ, 2), nil
			}
			return l.operator(BANG, 1), nil

		case '+':
			if l.peek() == '=' {
				return l.operator(PLUS_ASSIGN, 2), nil
			}
			return l.operator(PLUS, 1), nil

		case '*':
			if l.peek() == '=' {
				return l.operator(STAR_ASSIGN, 2), nil
			}
			return l.operator(ASTERISK, 1), nil

		case '%':
			if l.peek() == '=' {
				return l.operator(PERCENT_ASSIGN, 2), nil
			}
			return l.operator(PERCENT, 1), nil

		case '^':
			if l.peek() == '=' {
				return l.operator(CARET_ASSIGN, 2), nil
			}
			return l.operator(CARET, 1), nil

		case '"':
			return l.readString()

		case '.':
			return l.operator(DOT, 1), nil
		case ',':
			return l.operator(COMMA, 1), nil
		case ';':
			return l.operator(SEMICOLON, 1), nil
		case '?':
			return l.operator(QUESTION, 1), nil
		case '#':
			return l.operator(HASH, 1), nil
		case '@':
			return l.operator(AT, 1), nil
		case '(':
			return l.operator(LPAREN, 1), nil
		case ')':
			return l.operator(RPAREN, 1), nil
		case '{':
			return l.operator(LBRACE, 1), nil
		case '}':
			return l.operator(RBRACE, 1), nil
		case '[':
			return l.operator(LBRACKET, 1), nil
		case ']':
			return l.operator(RBRACKET, 1), nil

		default:
			if isLetter(l.ch) {
				startLine, startColumn, startPos := l.line, l.column, l.pos
				lexeme := l.readIdentifier()
				return l.makeToken(LookupIdent(lexeme), startLine, startColumn, startPos, lexeme), nil
			}
			if isDigit(l.ch) {
				return l.readNumber()
			}
			return Token{}, &Error{
				Kind:    ErrIllegalRune,
				Message: "unrecognized character " + strconv.QuoteRune(l.ch),
				Span:    l.spanHere(),
			}
		}
	}
}

func isLetter(ch rune) bool {
	// Identifiers are [A-Za-z_][A-Za-z0-9_]*.
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}
