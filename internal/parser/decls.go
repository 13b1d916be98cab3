package parser

import (
	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/lexer"
)

// parseRootStmt parses one top-level statement: any block statement, an
// import, or an apply block, each optionally preceded by flags.
func (p *Parser) parseRootStmt() *ast.RootStmt {
	start := p.curTok.Span

	flags, ok := p.parseFlags()
	if !ok {
		return nil
	}

	var stmt ast.Stmt
	switch p.curTok.Type {
	case lexer.IMPORT:
		stmt = p.parseImportDecl()
	case lexer.APPLY:
		stmt = p.parseApplyDecl()
	case lexer.LBRACE:
		// Flags already consumed here, so the nested block takes none of
		// its own.
		body := p.parseBlock()
		if body == nil {
			return nil
		}
		stmt = ast.NewBlockStmt(nil, body, body.Span())
	default:
		stmt = p.parseStmt()
	}
	if stmt == nil {
		return nil
	}

	return ast.NewRootStmt(flags, stmt, p.spanWithFilename(mergeSpan(start, stmt.Span())))
}

// parseFlags collects zero or more "@name"/"@!name" annotations, leaving
// curTok at the first token after the flag list.
func (p *Parser) parseFlags() ([]*ast.Flag, bool) {
	var flags []*ast.Flag

	for p.curTok.Type == lexer.AT {
		atSpan := p.curTok.Span

		negated := false
		if p.peekTok.Type == lexer.BANG {
			p.nextToken()
			negated = true
		}

		if !p.expect(lexer.IDENT) {
			return nil, false
		}
		name := p.ident()
		flags = append(flags, ast.NewFlag(negated, name, p.spanWithFilename(mergeSpan(atSpan, name.Span()))))

		p.nextToken() // past the flag name
	}

	return flags, true
}

// parseImportDecl parses either import form with curTok at the import
// keyword:
//
//	import Id (as Id)? (from Id)?
//	import { Id (as Id)?, ... } from Id
//
// The multi form's from clause is mandatory.
func (p *Parser) parseImportDecl() ast.Stmt {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.LBRACE {
		p.nextToken() // move to '{'
		p.nextToken() // into the item list

		items, ok := parseDelimited[*ast.ImportItem](p, delimitedConfig{
			Closing:       lexer.RBRACE,
			Separator:     lexer.COMMA,
			AllowEmpty:    true,
			AllowTrailing: true,
		}, func() (*ast.ImportItem, bool) {
			return p.parseImportItem()
		})
		if !ok {
			return nil
		}

		if !p.expect(lexer.FROM) {
			return nil
		}
		if !p.expect(lexer.IDENT) {
			return nil
		}
		from := p.ident()

		span := p.spanWithFilename(mergeSpan(start, from.Span()))
		return ast.NewImportDecl(true, items, from, span)
	}

	if !p.expect(lexer.IDENT) {
		return nil
	}
	item, ok := p.parseImportItem()
	if !ok {
		return nil
	}
	end := item.Span()

	var from *ast.Ident
	if p.peekTok.Type == lexer.FROM {
		p.nextToken() // move to 'from'
		if !p.expect(lexer.IDENT) {
			return nil
		}
		from = p.ident()
		end = from.Span()
	}

	span := p.spanWithFilename(mergeSpan(start, end))
	return ast.NewImportDecl(false, []*ast.ImportItem{item}, from, span)
}

// parseImportItem parses "Id (as Id)?" with curTok at the imported name.
func (p *Parser) parseImportItem() (*ast.ImportItem, bool) {
	if p.curTok.Type != lexer.IDENT {
		p.failExpected(p.curTok, lexer.IDENT)
		return nil, false
	}
	name := p.ident()
	end := name.Span()

	var alias *ast.Ident
	if p.peekTok.Type == lexer.AS {
		p.nextToken() // move to 'as'
		if !p.expect(lexer.IDENT) {
			return nil, false
		}
		alias = p.ident()
		end = alias.Span()
	}

	return ast.NewImportItem(name, alias, p.spanWithFilename(mergeSpan(name.Span(), end))), true
}

// parseApplyDecl parses "apply Path (to Path)? { Application; ... }" with
// curTok at the apply keyword.
func (p *Parser) parseApplyDecl() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	subject := p.parseTypePath()
	if subject == nil {
		return nil
	}

	var target ast.Type
	if p.peekTok.Type == lexer.TO {
		p.nextToken() // move to 'to'
		if !p.expect(lexer.IDENT) {
			return nil
		}
		target = p.parseTypePath()
		if target == nil {
			return nil
		}
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	items, ok := p.parseApplicationList()
	if !ok {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(start, p.curTok.Span))
	return ast.NewApplyDecl(subject, target, items, span)
}

// parseApplicationList parses a brace-delimited, semicolon-separated list
// of Val/TypeDecl members with curTok at the opening brace. Follows block
// separator discipline: the tail member may omit its separator. Returns
// with curTok at the closing brace.
func (p *Parser) parseApplicationList() ([]ast.Application, bool) {
	p.nextToken() // into the member list

	var items []ast.Application
	for p.curTok.Type != lexer.RBRACE {
		item, ok := p.parseApplication()
		if !ok {
			return nil, false
		}
		items = append(items, item)

		switch p.peekTok.Type {
		case lexer.SEMICOLON:
			p.nextToken()
			p.nextToken()
		case lexer.RBRACE:
			p.nextToken()
		default:
			p.failExpected(p.peekTok, lexer.SEMICOLON, lexer.RBRACE)
			return nil, false
		}
	}

	return items, true
}

// parseApplication parses one apply/contract member: a val binding or a
// type declaration.
func (p *Parser) parseApplication() (ast.Application, bool) {
	switch p.curTok.Type {
	case lexer.VAL:
		stmt := p.parseValStmt()
		if stmt == nil {
			return nil, false
		}
		return stmt, true
	case lexer.TYPE:
		stmt := p.parseTypeDeclStmt()
		if stmt == nil {
			return nil, false
		}
		return stmt, true
	default:
		p.failExpected(p.curTok, lexer.VAL, lexer.TYPE)
		return nil, false
	}
}
