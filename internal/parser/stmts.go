package parser

import (
	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/lexer"
)

var assignOps = []lexer.TokenType{
	lexer.ASSIGN,
	lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN, lexer.SLASH_ASSIGN,
	lexer.PERCENT_ASSIGN, lexer.AMP_ASSIGN, lexer.PIPE_ASSIGN, lexer.CARET_ASSIGN,
	lexer.SHL_ASSIGN, lexer.SHR_ASSIGN,
}

// parseBlock parses "{ stmt; stmt; ... }" with curTok at the opening brace.
// The tail statement may omit its separator; a separator before the closing
// brace is equally fine. Returns with curTok at the closing brace.
func (p *Parser) parseBlock() *ast.Block {
	start := p.curTok.Span
	p.nextToken() // into the statement list

	var stmts []ast.Stmt
	for p.curTok.Type != lexer.RBRACE {
		stmt := p.parseStmt()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)

		switch p.peekTok.Type {
		case lexer.SEMICOLON:
			p.nextToken()
			p.nextToken()
		case lexer.RBRACE:
			p.nextToken()
		default:
			p.failExpected(p.peekTok, lexer.SEMICOLON, lexer.RBRACE)
			return nil
		}
	}

	return ast.NewBlock(stmts, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}

// parseStmt dispatches on the current token. Everything that is not a
// declaration, control-flow, or jump keyword is an expression, which either
// stands alone as a call statement or becomes the target of an assignment.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.VAL:
		// Concrete nil must not leak into the interface return value.
		if s := p.parseValStmt(); s != nil {
			return s
		}
		return nil
	case lexer.TYPE:
		if s := p.parseTypeDeclStmt(); s != nil {
			return s
		}
		return nil
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt(nil)
	case lexer.MATCH:
		return p.parseMatchStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.CONTINUE:
		return p.parseContinueStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.LBRACE, lexer.AT:
		return p.parseBlockStmt()
	case lexer.IDENT:
		// "label: while ..." needs a second token to tell apart from an
		// expression starting with the same identifier.
		if p.peekTok.Type == lexer.COLON {
			label := p.ident()
			p.nextToken() // move to ':'
			if !p.expect(lexer.WHILE) {
				return nil
			}
			return p.parseWhileStmt(label)
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseExprStmt parses an expression in statement position, promoting it to
// an assignment when an assignment operator follows.
func (p *Parser) parseExprStmt() ast.Stmt {
	target := p.parseExpr()
	if target == nil {
		return nil
	}

	if !tokenIn(p.peekTok.Type, assignOps) {
		return ast.NewCallStmt(target, target.Span())
	}

	p.nextToken() // move to the assignment operator
	op := p.curTok.Type
	p.nextToken() // move to the value

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	span := p.spanWithFilename(mergeSpan(target.Span(), value.Span()))
	return ast.NewAssignStmt(op, target, value, span)
}

// parseValStmt parses "val name (<- Type)? (= Expr)?" with curTok at the
// val keyword. The annotation and initializer are independently optional.
func (p *Parser) parseValStmt() *ast.ValStmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := p.ident()
	end := name.Span()

	var typ ast.Type
	if p.peekTok.Type == lexer.LARROW {
		p.nextToken() // move to '<-'
		p.nextToken() // move to the annotation

		typ = p.parseType()
		if typ == nil {
			return nil
		}
		end = typ.Span()
	}

	var value ast.Expr
	if p.peekTok.Type == lexer.ASSIGN {
		p.nextToken() // move to '='
		p.nextToken() // move to the initializer

		value = p.parseExpr()
		if value == nil {
			return nil
		}
		end = value.Span()
	}

	return ast.NewValStmt(name, typ, value, p.spanWithFilename(mergeSpan(start, end)))
}

// parseTypeDeclStmt parses "type name (= Type)?" with curTok at the type
// keyword.
func (p *Parser) parseTypeDeclStmt() *ast.TypeDeclStmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := p.ident()
	end := name.Span()

	var typ ast.Type
	if p.peekTok.Type == lexer.ASSIGN {
		p.nextToken() // move to '='
		p.nextToken() // move to the aliased type

		typ = p.parseType()
		if typ == nil {
			return nil
		}
		end = typ.Span()
	}

	return ast.NewTypeDeclStmt(name, typ, p.spanWithFilename(mergeSpan(start, end)))
}

// parseIfStmt parses "if cond { ... }" plus any trailing "else if"/"else"
// branches, with curTok at the if keyword.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // move to the condition

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	end := p.curTok.Span

	var branches []ast.IfBranch
	for p.peekTok.Type == lexer.ELSE {
		p.nextToken() // move to 'else'
		branchStart := p.curTok.Span

		if p.peekTok.Type == lexer.IF {
			p.nextToken() // move to 'if'
			p.nextToken() // move to the condition

			branchCond := p.parseExpr()
			if branchCond == nil {
				return nil
			}
			if !p.expect(lexer.LBRACE) {
				return nil
			}
			branchBody := p.parseBlock()
			if branchBody == nil {
				return nil
			}
			span := p.spanWithFilename(mergeSpan(branchStart, p.curTok.Span))
			branches = append(branches, ast.NewElseIfBranch(branchCond, branchBody, span))
			end = p.curTok.Span
			continue
		}

		if !p.expect(lexer.LBRACE) {
			return nil
		}
		branchBody := p.parseBlock()
		if branchBody == nil {
			return nil
		}
		span := p.spanWithFilename(mergeSpan(branchStart, p.curTok.Span))
		branches = append(branches, ast.NewElseBranch(branchBody, span))
		end = p.curTok.Span

		// A bare else is final.
		break
	}

	return ast.NewIfStmt(cond, body, branches, p.spanWithFilename(mergeSpan(start, end)))
}

// parseWhileStmt parses "while cond { ... }" with curTok at the while
// keyword. The label, when present, was consumed by the caller.
func (p *Parser) parseWhileStmt(label *ast.Ident) ast.Stmt {
	start := p.curTok.Span
	if label != nil {
		start = label.Span()
	}
	p.nextToken() // move to the condition

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewWhileStmt(label, cond, body, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}

// parseMatchStmt parses "match subject { name <- Type => { ... }, ... }"
// with curTok at the match keyword. Matching is type-directed, so every
// case binds a name to a type rather than to a value pattern.
func (p *Parser) parseMatchStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // move to the subject

	subject := p.parseExpr()
	if subject == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	p.nextToken() // into the case list

	cases, ok := parseDelimited[*ast.MatchCase](p, delimitedConfig{
		Closing:       lexer.RBRACE,
		Separator:     lexer.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, func() (*ast.MatchCase, bool) {
		return p.parseMatchCase()
	})
	if !ok {
		return nil
	}

	return ast.NewMatchStmt(subject, cases, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}

// parseMatchCase parses "name <- Type => { ... }" with curTok at the
// binding name.
func (p *Parser) parseMatchCase() (*ast.MatchCase, bool) {
	if p.curTok.Type != lexer.IDENT {
		p.failExpected(p.curTok, lexer.IDENT)
		return nil, false
	}
	name := p.ident()

	if !p.expect(lexer.LARROW) {
		return nil, false
	}
	p.nextToken() // move to the case type

	typ := p.parseType()
	if typ == nil {
		return nil, false
	}

	if !p.expect(lexer.FATARROW) {
		return nil, false
	}
	if !p.expect(lexer.LBRACE) {
		return nil, false
	}
	body := p.parseBlock()
	if body == nil {
		return nil, false
	}

	span := p.spanWithFilename(mergeSpan(name.Span(), p.curTok.Span))
	return ast.NewMatchCase(name, typ, body, span), true
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	start := p.curTok.Span
	end := start

	var label *ast.Ident
	if p.peekTok.Type == lexer.IDENT {
		p.nextToken()
		label = p.ident()
		end = label.Span()
	}

	return ast.NewBreakStmt(label, p.spanWithFilename(mergeSpan(start, end)))
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	start := p.curTok.Span
	end := start

	var label *ast.Ident
	if p.peekTok.Type == lexer.IDENT {
		p.nextToken()
		label = p.ident()
		end = label.Span()
	}

	return ast.NewContinueStmt(label, p.spanWithFilename(mergeSpan(start, end)))
}

// parseReturnStmt parses "return (expr)?" with curTok at the return
// keyword. The value is present exactly when the next token can start an
// expression.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	if !tokenIn(p.peekTok.Type, primaryStart) && !tokenIn(p.peekTok.Type, unaryOps) {
		return ast.NewReturnStmt(nil, p.spanWithFilename(start))
	}

	p.nextToken() // move to the value
	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return ast.NewReturnStmt(value, p.spanWithFilename(mergeSpan(start, value.Span())))
}

// parseBlockStmt parses a nested block in statement position, optionally
// prefixed by flags, with curTok at '@' or '{'.
func (p *Parser) parseBlockStmt() ast.Stmt {
	start := p.curTok.Span

	flags, ok := p.parseFlags()
	if !ok {
		return nil
	}

	if p.curTok.Type != lexer.LBRACE {
		p.failExpected(p.curTok, lexer.LBRACE)
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewBlockStmt(flags, body, p.spanWithFilename(mergeSpan(start, p.curTok.Span)))
}
