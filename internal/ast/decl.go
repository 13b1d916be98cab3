package ast

import "github.com/hail-lang/hail/internal/lexer"

// Flag is a compile-time annotation on a top-level statement or nested
// block: "@name" or "@!name".
type Flag struct {
	Negated bool
	Name    *Ident
	span    lexer.Span
}

func (f *Flag) Span() lexer.Span { return f.span }

// NewFlag constructs a flag node.
func NewFlag(negated bool, name *Ident, span lexer.Span) *Flag {
	return &Flag{Negated: negated, Name: name, span: span}
}

// Marker is a compile-time annotation on a routine signature: "#name".
type Marker struct {
	Name *Ident
	span lexer.Span
}

func (m *Marker) Span() lexer.Span { return m.span }

// NewMarker constructs a marker node.
func NewMarker(name *Ident, span lexer.Span) *Marker {
	return &Marker{Name: name, span: span}
}

// ImportItem is one imported name with an optional alias.
type ImportItem struct {
	Name  *Ident
	Alias *Ident // nil when unaliased
	span  lexer.Span
}

func (i *ImportItem) Span() lexer.Span { return i.span }

// NewImportItem constructs an import item node.
func NewImportItem(name, alias *Ident, span lexer.Span) *ImportItem {
	return &ImportItem{Name: name, Alias: alias, span: span}
}

// ImportDecl is an import declaration. The single form ("import a as b
// from unit") has exactly one item and an optional source unit; the multi
// form ("import { a, b as c } from unit") has a mandatory source unit.
type ImportDecl struct {
	Multi bool
	Items []*ImportItem
	From  *Ident // nil only in the single form
	span  lexer.Span
}

func (d *ImportDecl) Span() lexer.Span { return d.span }
func (*ImportDecl) stmtNode()          {}

// NewImportDecl constructs an import declaration node.
func NewImportDecl(multi bool, items []*ImportItem, from *Ident, span lexer.Span) *ImportDecl {
	return &ImportDecl{Multi: multi, Items: items, From: from, span: span}
}

// ApplyDecl attaches an ordered list of member declarations to a subject
// path, optionally "to" a target path: "apply Subject to Target { ... }".
type ApplyDecl struct {
	Subject Type
	To      Type // nil when absent
	Items   []Application
	span    lexer.Span
}

func (d *ApplyDecl) Span() lexer.Span { return d.span }
func (*ApplyDecl) stmtNode()          {}

// NewApplyDecl constructs an apply declaration node.
func NewApplyDecl(subject, to Type, items []Application, span lexer.Span) *ApplyDecl {
	return &ApplyDecl{Subject: subject, To: to, Items: items, span: span}
}
