// Package parser turns a token stream into the Hail syntax tree. Parsing is
// strictly top-down with one token of lookahead and no backtracking; the
// first lexical or syntactic error aborts the parse and no partial tree is
// produced.
package parser

import (
	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/lexer"
)

// TokenSource yields classified tokens in source order with monotonically
// non-decreasing offsets, terminated by an EOF token. A lexical error ends
// the stream. lexer.Lexer satisfies this; tests feed canned slices.
type TokenSource interface {
	Next() (lexer.Token, error)
}

// Option configures a parser.
type Option func(*options)

type options struct {
	filename string
}

// WithFilename attributes all emitted spans to the provided source unit.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser is a recursive descent parser over a TokenSource.
//
// Two invariants keep the grammar rules composable:
//   - Lookahead: curTok is the token under examination and peekTok the one
//     after it; the pair is the parser's sole lookahead window and is only
//     mutated via nextToken.
//   - Positioning: every parse method is entered with curTok at the first
//     token of its production and returns with curTok at the last token it
//     consumed. Span merging relies on this.
type Parser struct {
	src     TokenSource
	curTok  lexer.Token
	peekTok lexer.Token

	// err is the first lexical or syntactic error. It is set at most once;
	// all parse methods return nil once it is set.
	err error

	filename string
}

// New returns a parser pulling from the provided token source.
func New(src TokenSource, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		src:      src,
		filename: cfg.filename,
	}

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// NewFromString returns a parser over a fresh lexer for input.
func NewFromString(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lx := lexer.New(input)
	if cfg.filename != "" {
		lx.SetFilename(cfg.filename)
	}

	return New(lx, opts...)
}

// ParseUnit parses a full source unit: an ordered, semicolon-separated list
// of top-level statements. The trailing statement may omit its separator.
func (p *Parser) ParseUnit() (*ast.Unit, error) {
	if p.err != nil {
		return nil, p.err
	}

	start := p.curTok.Span
	var stmts []*ast.RootStmt

	for p.curTok.Type != lexer.EOF {
		stmt := p.parseRootStmt()
		if stmt == nil {
			return nil, p.err
		}
		stmts = append(stmts, stmt)

		switch p.peekTok.Type {
		case lexer.SEMICOLON:
			p.nextToken()
			p.nextToken()
		case lexer.EOF:
			p.nextToken()
		default:
			p.failExpected(p.peekTok, lexer.SEMICOLON)
			return nil, p.err
		}
	}

	if p.err != nil {
		return nil, p.err
	}

	span := p.spanWithFilename(mergeSpan(start, p.curTok.Span))
	return ast.NewUnit(stmts, span), nil
}

// nextToken advances the lookahead window. Contract: after calling
// nextToken, curTok == old(peekTok). The source is only queried from this
// hop to keep lookahead bookkeeping centralized. A lexical error from the
// source becomes the parse's terminal error and the stream is treated as
// exhausted from that point on.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok

	if p.err != nil {
		p.peekTok = lexer.Token{Type: lexer.EOF, Span: p.peekTok.Span}
		return
	}

	tok, err := p.src.Next()
	if err != nil {
		p.err = err
		p.peekTok = lexer.Token{Type: lexer.EOF, Span: p.curTok.Span}
		return
	}
	p.peekTok = tok
}

// expect asserts that the peek token matches the provided type and promotes
// it into curTok. The caller is responsible for inspecting curTok before
// invoking expect, because expect never rewinds.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}
	p.failExpected(p.peekTok, tt)
	return false
}

// fail records the terminal syntax error. Only the first failure is kept,
// so a lexical error surfaced during lookahead is never masked by the
// syntactic confusion it causes downstream.
func (p *Parser) fail(msg string, got lexer.Token, expected ...lexer.TokenType) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Message:  msg,
		Span:     p.spanWithFilename(got.Span),
		Got:      got.Type,
		Expected: expected,
	}
}

func (p *Parser) failExpected(got lexer.Token, expected ...lexer.TokenType) {
	p.fail("expected "+describeTokens(expected), got, expected...)
}

func (p *Parser) spanWithFilename(span lexer.Span) lexer.Span {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	return span
}

// ident wraps the current token as an identifier node. The caller must have
// established that curTok is an IDENT.
func (p *Parser) ident() *ast.Ident {
	return ast.NewIdent(p.curTok.Raw, p.spanWithFilename(p.curTok.Span))
}

// mergeSpan returns a span covering both arguments. Callers pass the
// earliest span first; lexer spans are half-open, so tail.End never falls
// below head.End for tokens consumed in order.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start
	if span.Filename == "" {
		span.Filename = end.Filename
	}
	if end.End > span.End {
		span.End = end.End
	}
	return span
}
