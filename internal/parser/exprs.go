package parser

import (
	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/lexer"
)

// The expression grammar is a ladder of strictly ordered tiers, lowest to
// highest binding power. Each binary tier is a thin left-fold over the next
// tier up, so every binary operator is left-associative. The comparison
// tier folds like the rest, which permits chained comparisons such as
// "a < b < c" to parse as "(a < b) < c".
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

// parseBinaryTier folds "next (op next)*" into a left-leaning tree.
func (p *Parser) parseBinaryTier(next func() ast.Expr, ops ...lexer.TokenType) ast.Expr {
	left := next()
	if left == nil {
		return nil
	}

	for tokenIn(p.peekTok.Type, ops) {
		p.nextToken() // move to the operator
		op := p.curTok.Type
		p.nextToken() // move to the right operand

		right := next()
		if right == nil {
			return nil
		}

		span := p.spanWithFilename(mergeSpan(left.Span(), right.Span()))
		left = ast.NewBinaryExpr(op, left, right, span)
	}

	return left
}

func tokenIn(tt lexer.TokenType, set []lexer.TokenType) bool {
	for _, t := range set {
		if tt == t {
			return true
		}
	}
	return false
}

func (p *Parser) parseOr() ast.Expr {
	return p.parseBinaryTier(p.parseAnd, lexer.OR)
}

func (p *Parser) parseAnd() ast.Expr {
	return p.parseBinaryTier(p.parseComparison, lexer.AND)
}

func (p *Parser) parseComparison() ast.Expr {
	return p.parseBinaryTier(p.parseBitOr,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE)
}

func (p *Parser) parseBitOr() ast.Expr {
	return p.parseBinaryTier(p.parseBitXor, lexer.PIPE)
}

func (p *Parser) parseBitXor() ast.Expr {
	return p.parseBinaryTier(p.parseBitAnd, lexer.CARET)
}

func (p *Parser) parseBitAnd() ast.Expr {
	return p.parseBinaryTier(p.parseShift, lexer.AMPERSAND)
}

func (p *Parser) parseShift() ast.Expr {
	return p.parseBinaryTier(p.parseAdditive, lexer.SHL, lexer.SHR)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.parseBinaryTier(p.parseMultiplicative, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.parseBinaryTier(p.parseCast, lexer.ASTERISK, lexer.SLASH, lexer.PERCENT)
}

// parseCast handles the postfix "as Type" tier. It binds tighter than the
// multiplicative tier and looser than unary prefixes, so "&x as T" is
// As(Unary(&, x), T) and "x as T * y" is Binary(*, As(x, T), y).
func (p *Parser) parseCast() ast.Expr {
	operand := p.parseUnary()
	if operand == nil {
		return nil
	}

	for p.peekTok.Type == lexer.AS {
		p.nextToken() // move to 'as'
		p.nextToken() // move to the target type

		target := p.parseType()
		if target == nil {
			return nil
		}

		span := p.spanWithFilename(mergeSpan(operand.Span(), target.Span()))
		operand = ast.NewAsExpr(operand, target, span)
	}

	return operand
}

var unaryOps = []lexer.TokenType{
	lexer.MINUS, lexer.ASTERISK, lexer.BANG, lexer.AMPERSAND, lexer.FLUID, lexer.SHARED,
}

// parseUnary applies prefix operators right-associatively by recursing into
// itself for the operand.
func (p *Parser) parseUnary() ast.Expr {
	if !tokenIn(p.curTok.Type, unaryOps) {
		return p.parsePostfix()
	}

	opTok := p.curTok
	p.nextToken()

	operand := p.parseUnary()
	if operand == nil {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(opTok.Span, operand.Span()))
	return ast.NewUnaryExpr(opTok.Type, operand, span)
}

// parsePostfix extends a primary expression left-to-right by any sequence
// of path segments, field accesses, constructions and calls.
func (p *Parser) parsePostfix() ast.Expr {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	for {
		switch p.peekTok.Type {
		case lexer.DOUBLE_COLON:
			p.nextToken() // move to '::'

			switch p.peekTok.Type {
			case lexer.IDENT:
				p.nextToken()
				name := p.ident()
				span := p.spanWithFilename(mergeSpan(left.Span(), name.Span()))
				left = ast.NewPathExpr(left, name, span)
			case lexer.LBRACE:
				p.nextToken() // move to '{'
				left = p.parseConstruct(left)
				if left == nil {
					return nil
				}
			case lexer.LPAREN:
				p.nextToken() // move to '('
				left = p.parseConstructEnum(left)
				if left == nil {
					return nil
				}
			default:
				p.failExpected(p.peekTok, lexer.IDENT, lexer.LBRACE, lexer.LPAREN)
				return nil
			}

		case lexer.DOT:
			p.nextToken() // move to '.'
			if !p.expect(lexer.IDENT) {
				return nil
			}
			name := p.ident()
			span := p.spanWithFilename(mergeSpan(left.Span(), name.Span()))
			left = ast.NewAccessExpr(left, name, span)

		case lexer.LPAREN:
			p.nextToken() // move to '('
			left = p.parseCall(left)
			if left == nil {
				return nil
			}

		default:
			return left
		}
	}
}

// parseConstruct parses "subject::{ name = expr, ... }" with curTok at the
// opening brace.
func (p *Parser) parseConstruct(subject ast.Expr) ast.Expr {
	p.nextToken() // into the field list

	fields, ok := parseDelimited[*ast.FieldInit](p, delimitedConfig{
		Closing:       lexer.RBRACE,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (*ast.FieldInit, bool) {
		if p.curTok.Type != lexer.IDENT {
			p.failExpected(p.curTok, lexer.IDENT)
			return nil, false
		}
		name := p.ident()

		if !p.expect(lexer.ASSIGN) {
			return nil, false
		}
		p.nextToken() // move to the field value

		value := p.parseExpr()
		if value == nil {
			return nil, false
		}

		span := p.spanWithFilename(mergeSpan(name.Span(), value.Span()))
		return ast.NewFieldInit(name, value, span), true
	})
	if !ok {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(subject.Span(), p.curTok.Span))
	return ast.NewConstructExpr(subject, fields, span)
}

// parseConstructEnum parses "subject::(payload)" with curTok at the opening
// parenthesis.
func (p *Parser) parseConstructEnum(subject ast.Expr) ast.Expr {
	p.nextToken() // move to the payload

	payload := p.parseExpr()
	if payload == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(subject.Span(), p.curTok.Span))
	return ast.NewConstructEnumExpr(subject, payload, span)
}

// parseCall parses an argument list with curTok at the opening parenthesis.
func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	p.nextToken() // into the argument list

	args, ok := parseDelimited[ast.Expr](p, delimitedConfig{
		Closing:       lexer.RPAREN,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (ast.Expr, bool) {
		arg := p.parseExpr()
		if arg == nil {
			return nil, false
		}
		return arg, true
	})
	if !ok {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(callee.Span(), p.curTok.Span))
	return ast.NewCallExpr(callee, args, span)
}

var primaryStart = []lexer.TokenType{
	lexer.TRUE, lexer.FALSE, lexer.IDENT,
	lexer.DEC_INT, lexer.HEX_INT, lexer.BIN_INT, lexer.FLOAT,
	lexer.STRING, lexer.LPAREN, lexer.ROUTINE, lexer.HASH,
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.curTok.Type {
	case lexer.TRUE, lexer.FALSE:
		return ast.NewBoolLit(p.curTok.Type == lexer.TRUE, p.spanWithFilename(p.curTok.Span))

	case lexer.IDENT:
		return p.ident()

	case lexer.DEC_INT:
		return ast.NewNumberLit(ast.NumberDec, p.curTok.Raw, p.spanWithFilename(p.curTok.Span))
	case lexer.HEX_INT:
		return ast.NewNumberLit(ast.NumberHex, p.curTok.Raw, p.spanWithFilename(p.curTok.Span))
	case lexer.BIN_INT:
		return ast.NewNumberLit(ast.NumberBin, p.curTok.Raw, p.spanWithFilename(p.curTok.Span))
	case lexer.FLOAT:
		return ast.NewNumberLit(ast.NumberFloat, p.curTok.Raw, p.spanWithFilename(p.curTok.Span))

	case lexer.STRING:
		return ast.NewStringLit(p.curTok.Raw, p.spanWithFilename(p.curTok.Span))

	case lexer.LPAREN:
		return p.parseGrouped()

	case lexer.ROUTINE, lexer.HASH:
		return p.parseRoutineLit()

	default:
		p.fail("expected expression", p.curTok, primaryStart...)
		return nil
	}
}

// parseGrouped parses "(expr)". The parentheses are dropped from the span:
// the resulting node keeps the inner expression's span.
func (p *Parser) parseGrouped() ast.Expr {
	p.nextToken() // past '('

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return expr
}

// parseRoutineLit parses "#marker... routine(name <- Type, ...) -> Type? {
// ... }" with curTok at the first marker or the routine keyword.
func (p *Parser) parseRoutineLit() ast.Expr {
	start := p.curTok.Span

	var markers []*ast.Marker
	for p.curTok.Type == lexer.HASH {
		hashSpan := p.curTok.Span
		if !p.expect(lexer.IDENT) {
			return nil
		}
		name := p.ident()
		markers = append(markers, ast.NewMarker(name, p.spanWithFilename(mergeSpan(hashSpan, name.Span()))))
		p.nextToken() // past the marker name
	}

	if p.curTok.Type != lexer.ROUTINE {
		p.failExpected(p.curTok, lexer.ROUTINE)
		return nil
	}

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken() // into the parameter list

	params, ok := parseDelimited[*ast.Param](p, delimitedConfig{
		Closing:       lexer.RPAREN,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (*ast.Param, bool) {
		if p.curTok.Type != lexer.IDENT {
			p.failExpected(p.curTok, lexer.IDENT)
			return nil, false
		}
		name := p.ident()

		if !p.expect(lexer.LARROW) {
			return nil, false
		}
		p.nextToken() // move to the parameter type

		typ := p.parseType()
		if typ == nil {
			return nil, false
		}

		span := p.spanWithFilename(mergeSpan(name.Span(), typ.Span()))
		return ast.NewParam(name, typ, span), true
	})
	if !ok {
		return nil
	}

	var ret ast.Type
	if p.peekTok.Type == lexer.ARROW {
		p.nextToken() // move to '->'
		p.nextToken() // move to the return type

		ret = p.parseType()
		if ret == nil {
			return nil
		}
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(start, p.curTok.Span))
	return ast.NewRoutineLit(markers, params, ret, body, span)
}
