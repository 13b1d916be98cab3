package ast

import "github.com/hail-lang/hail/internal/lexer"

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	span  lexer.Span
}

func (l *BoolLit) Span() lexer.Span { return l.span }
func (*BoolLit) exprNode()          {}

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

// Ident is an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

func (i *Ident) Span() lexer.Span { return i.span }
func (*Ident) exprNode()          {}

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// NumberKind is one of the four numeric literal subkinds.
type NumberKind int

const (
	NumberDec NumberKind = iota
	NumberHex
	NumberBin
	NumberFloat
)

func (k NumberKind) String() string {
	switch k {
	case NumberDec:
		return "dec"
	case NumberHex:
		return "hex"
	case NumberBin:
		return "bin"
	case NumberFloat:
		return "float"
	default:
		return "unknown"
	}
}

// NumberLit is a numeric literal. Text is the raw lexeme; value conversion
// is a later stage's concern.
type NumberLit struct {
	Kind NumberKind
	Text string
	span lexer.Span
}

func (l *NumberLit) Span() lexer.Span { return l.span }
func (*NumberLit) exprNode()          {}

// NewNumberLit constructs a numeric literal node.
func NewNumberLit(kind NumberKind, text string, span lexer.Span) *NumberLit {
	return &NumberLit{Kind: kind, Text: text, span: span}
}

// StringLit is a string literal. Text is the raw inter-quote text with no
// escape sequences interpreted.
type StringLit struct {
	Text string
	span lexer.Span
}

func (l *StringLit) Span() lexer.Span { return l.span }
func (*StringLit) exprNode()          {}

// NewStringLit constructs a string literal node.
func NewStringLit(text string, span lexer.Span) *StringLit {
	return &StringLit{Text: text, span: span}
}

// PathExpr is a "left::name" path segment.
type PathExpr struct {
	Left Expr
	Name *Ident
	span lexer.Span
}

func (e *PathExpr) Span() lexer.Span { return e.span }
func (*PathExpr) exprNode()          {}

// NewPathExpr constructs a path expression node.
func NewPathExpr(left Expr, name *Ident, span lexer.Span) *PathExpr {
	return &PathExpr{Left: left, Name: name, span: span}
}

// AccessExpr is a "left.name" field access.
type AccessExpr struct {
	Left Expr
	Name *Ident
	span lexer.Span
}

func (e *AccessExpr) Span() lexer.Span { return e.span }
func (*AccessExpr) exprNode()          {}

// NewAccessExpr constructs a field access node.
func NewAccessExpr(left Expr, name *Ident, span lexer.Span) *AccessExpr {
	return &AccessExpr{Left: left, Name: name, span: span}
}

// FieldInit is one "name = value" pair inside a struct construction.
type FieldInit struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

func (f *FieldInit) Span() lexer.Span { return f.span }

// NewFieldInit constructs a field initializer node.
func NewFieldInit(name *Ident, value Expr, span lexer.Span) *FieldInit {
	return &FieldInit{Name: name, Value: value, span: span}
}

// ConstructExpr builds a struct value from a subject path:
// "subject::{ a = 1, b = 2 }".
type ConstructExpr struct {
	Subject Expr
	Fields  []*FieldInit
	span    lexer.Span
}

func (e *ConstructExpr) Span() lexer.Span { return e.span }
func (*ConstructExpr) exprNode()          {}

// NewConstructExpr constructs a struct construction node.
func NewConstructExpr(subject Expr, fields []*FieldInit, span lexer.Span) *ConstructExpr {
	return &ConstructExpr{Subject: subject, Fields: fields, span: span}
}

// ConstructEnumExpr builds an enum variant from a subject path:
// "subject::(payload)".
type ConstructEnumExpr struct {
	Subject Expr
	Payload Expr
	span    lexer.Span
}

func (e *ConstructEnumExpr) Span() lexer.Span { return e.span }
func (*ConstructEnumExpr) exprNode()          {}

// NewConstructEnumExpr constructs an enum construction node.
func NewConstructEnumExpr(subject Expr, payload Expr, span lexer.Span) *ConstructEnumExpr {
	return &ConstructEnumExpr{Subject: subject, Payload: payload, span: span}
}

// CallExpr is a call with an ordered argument list.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

func (e *CallExpr) Span() lexer.Span { return e.span }
func (*CallExpr) exprNode()          {}

// NewCallExpr constructs a call node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expr
	span    lexer.Span
}

func (e *UnaryExpr) Span() lexer.Span { return e.span }
func (*UnaryExpr) exprNode()          {}

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op lexer.TokenType, operand Expr, span lexer.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: span}
}

// BinaryExpr is an infix binary expression.
type BinaryExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

func (e *BinaryExpr) Span() lexer.Span { return e.span }
func (*BinaryExpr) exprNode()          {}

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: span}
}

// AsExpr is a postfix cast: "operand as Target".
type AsExpr struct {
	Operand Expr
	Target  Type
	span    lexer.Span
}

func (e *AsExpr) Span() lexer.Span { return e.span }
func (*AsExpr) exprNode()          {}

// NewAsExpr constructs a cast node.
func NewAsExpr(operand Expr, target Type, span lexer.Span) *AsExpr {
	return &AsExpr{Operand: operand, Target: target, span: span}
}

// Param is one named routine parameter.
type Param struct {
	Name *Ident
	Type Type
	span lexer.Span
}

func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(name *Ident, typ Type, span lexer.Span) *Param {
	return &Param{Name: name, Type: typ, span: span}
}

// RoutineLit is a routine literal: markers, signature and body.
type RoutineLit struct {
	Markers []*Marker
	Params  []*Param
	Return  Type // nil when the routine returns nothing
	Body    *Block
	span    lexer.Span
}

func (e *RoutineLit) Span() lexer.Span { return e.span }
func (*RoutineLit) exprNode()          {}

// NewRoutineLit constructs a routine literal node.
func NewRoutineLit(markers []*Marker, params []*Param, ret Type, body *Block, span lexer.Span) *RoutineLit {
	return &RoutineLit{Markers: markers, Params: params, Return: ret, Body: body, span: span}
}
