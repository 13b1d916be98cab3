// Package ast defines the syntax tree produced by the parser. Nodes are
// constructed once during a parse pass and never mutated afterwards; every
// node's span fully contains the spans of its children. Identifier and
// literal text is sliced out of the source buffer, so the buffer must
// outlive the tree.
package ast

import "github.com/hail-lang/hail/internal/lexer"

// Node is any syntax node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Type is a type-annotation node.
type Type interface {
	Node
	typeNode()
}

// Stmt is a block-level statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Application is a member declaration usable inside apply blocks and
// contract types: either a value binding or a type declaration.
type Application interface {
	Node
	applicationNode()
}

// Unit is a parsed source unit: an ordered list of top-level statements.
type Unit struct {
	Stmts []*RootStmt
	span  lexer.Span
}

// Span returns the span covering the entire unit.
func (u *Unit) Span() lexer.Span { return u.span }

// NewUnit constructs a source unit node.
func NewUnit(stmts []*RootStmt, span lexer.Span) *Unit {
	return &Unit{Stmts: stmts, span: span}
}

// RootStmt is one top-level statement together with the flags that prefix
// it. The statement is either an ordinary block-level statement, an import,
// or an apply declaration.
type RootStmt struct {
	Flags []*Flag
	Stmt  Stmt
	span  lexer.Span
}

// Span returns the span covering the flags and the statement.
func (r *RootStmt) Span() lexer.Span { return r.span }

// NewRootStmt constructs a top-level statement node.
func NewRootStmt(flags []*Flag, stmt Stmt, span lexer.Span) *RootStmt {
	return &RootStmt{Flags: flags, Stmt: stmt, span: span}
}
