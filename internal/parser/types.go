package parser

import (
	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/lexer"
)

var typeStart = []lexer.TokenType{
	lexer.IDENT, lexer.ROUTINE, lexer.STRUCT, lexer.ENUM, lexer.CONTRACT,
	lexer.SHARED, lexer.FLUID, lexer.AMPERSAND, lexer.QUESTION, lexer.BANG,
}

// parseType is the type grammar's entry point. Types and expressions are
// parsed by separate entry points, so the '!' result-type form below never
// collides with the unary '!' of the expression grammar.
func (p *Parser) parseType() ast.Type {
	switch p.curTok.Type {
	case lexer.SHARED:
		start := p.curTok.Span
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		return ast.NewSharedType(inner, p.spanWithFilename(mergeSpan(start, inner.Span())))

	case lexer.FLUID:
		start := p.curTok.Span
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		return ast.NewFluidType(inner, p.spanWithFilename(mergeSpan(start, inner.Span())))

	case lexer.AMPERSAND:
		start := p.curTok.Span
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		return ast.NewRefType(inner, p.spanWithFilename(mergeSpan(start, inner.Span())))

	case lexer.QUESTION:
		start := p.curTok.Span
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		return ast.NewOptType(inner, p.spanWithFilename(mergeSpan(start, inner.Span())))

	case lexer.BANG:
		return p.parseResultType()

	default:
		return p.parsePrimType()
	}
}

// parseResultType parses "! ok : err" with curTok at the bang.
func (p *Parser) parseResultType() ast.Type {
	start := p.curTok.Span
	p.nextToken() // move to the ok type

	okType := p.parseType()
	if okType == nil {
		return nil
	}

	if !p.expect(lexer.COLON) {
		return nil
	}
	p.nextToken() // move to the err type

	errType := p.parseType()
	if errType == nil {
		return nil
	}

	return ast.NewResultType(okType, errType, p.spanWithFilename(mergeSpan(start, errType.Span())))
}

func (p *Parser) parsePrimType() ast.Type {
	switch p.curTok.Type {
	case lexer.IDENT:
		return p.parseTypePath()
	case lexer.ROUTINE:
		return p.parseRoutineType()
	case lexer.STRUCT:
		return p.parseStructType()
	case lexer.ENUM:
		return p.parseEnumType()
	case lexer.CONTRACT:
		return p.parseContractType()
	default:
		p.fail("expected type", p.curTok, typeStart...)
		return nil
	}
}

// parseTypePath parses "a::b::c" with curTok at the leading identifier.
func (p *Parser) parseTypePath() ast.Type {
	name := p.ident()
	var left ast.Type = ast.NewNamedType(name, name.Span())

	for p.peekTok.Type == lexer.DOUBLE_COLON {
		p.nextToken() // move to '::'
		if !p.expect(lexer.IDENT) {
			return nil
		}
		seg := p.ident()
		left = ast.NewPathType(left, seg, p.spanWithFilename(mergeSpan(left.Span(), seg.Span())))
	}

	return left
}

// parseRoutineType parses "routine(T, ...) -> R?" with curTok at the
// routine keyword.
func (p *Parser) parseRoutineType() ast.Type {
	start := p.curTok.Span

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken() // into the parameter list

	params, ok := parseDelimited[ast.Type](p, delimitedConfig{
		Closing:       lexer.RPAREN,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (ast.Type, bool) {
		typ := p.parseType()
		if typ == nil {
			return nil, false
		}
		return typ, true
	})
	if !ok {
		return nil
	}

	end := p.curTok.Span

	var ret ast.Type
	if p.peekTok.Type == lexer.ARROW {
		p.nextToken() // move to '->'
		p.nextToken() // move to the return type

		ret = p.parseType()
		if ret == nil {
			return nil
		}
		end = ret.Span()
	}

	return ast.NewRoutineType(params, ret, p.spanWithFilename(mergeSpan(start, end)))
}

// parseStructType parses "struct { name <- Type, ... }" with curTok at the
// struct keyword.
func (p *Parser) parseStructType() ast.Type {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	p.nextToken() // into the field list

	fields, ok := parseDelimited[*ast.StructField](p, delimitedConfig{
		Closing:       lexer.RBRACE,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (*ast.StructField, bool) {
		if p.curTok.Type != lexer.IDENT {
			p.failExpected(p.curTok, lexer.IDENT)
			return nil, false
		}
		name := p.ident()

		if !p.expect(lexer.LARROW) {
			return nil, false
		}
		p.nextToken() // move to the field type

		typ := p.parseType()
		if typ == nil {
			return nil, false
		}

		span := p.spanWithFilename(mergeSpan(name.Span(), typ.Span()))
		return ast.NewStructField(name, typ, span), true
	})
	if !ok {
		return nil
	}

	return ast.NewStructType(fields, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}

// parseEnumType parses "enum { name (<- Type)?, ... }" with curTok at the
// enum keyword.
func (p *Parser) parseEnumType() ast.Type {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	p.nextToken() // into the variant list

	variants, ok := parseDelimited[*ast.EnumVariant](p, delimitedConfig{
		Closing:       lexer.RBRACE,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (*ast.EnumVariant, bool) {
		if p.curTok.Type != lexer.IDENT {
			p.failExpected(p.curTok, lexer.IDENT)
			return nil, false
		}
		name := p.ident()

		var payload ast.Type
		end := name.Span()
		if p.peekTok.Type == lexer.LARROW {
			p.nextToken() // move to '<-'
			p.nextToken() // move to the payload type

			payload = p.parseType()
			if payload == nil {
				return nil, false
			}
			end = payload.Span()
		}

		return ast.NewEnumVariant(name, payload, p.spanWithFilename(mergeSpan(name.Span(), end))), true
	})
	if !ok {
		return nil
	}

	return ast.NewEnumType(variants, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}

// parseContractType parses "contract { Application; ... }" with curTok at
// the contract keyword. Members follow block separator discipline rather
// than comma delimiting.
func (p *Parser) parseContractType() ast.Type {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	members, ok := p.parseApplicationList()
	if !ok {
		return nil
	}

	return ast.NewContractType(members, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}
