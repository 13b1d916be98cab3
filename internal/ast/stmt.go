package ast

import "github.com/hail-lang/hail/internal/lexer"

// Block is a brace-delimited, semicolon-separated statement sequence. The
// trailing statement may omit its separator; it is stored like any other
// statement (whether a separator-less tail carries value semantics is a
// decision for the semantic layer, not the parser).
type Block struct {
	Stmts []Stmt
	span  lexer.Span
}

func (b *Block) Span() lexer.Span { return b.span }

// NewBlock constructs a block node.
func NewBlock(stmts []Stmt, span lexer.Span) *Block {
	return &Block{Stmts: stmts, span: span}
}

// AssignStmt is "target op value" where op is '=' or a compound-assign form.
type AssignStmt struct {
	Op     lexer.TokenType
	Target Expr
	Value  Expr
	span   lexer.Span
}

func (s *AssignStmt) Span() lexer.Span { return s.span }
func (*AssignStmt) stmtNode()          {}

// NewAssignStmt constructs an assignment node.
func NewAssignStmt(op lexer.TokenType, target, value Expr, span lexer.Span) *AssignStmt {
	return &AssignStmt{Op: op, Target: target, Value: value, span: span}
}

// ValStmt is a value binding: "val name (<- Type)? (= Expr)?". Both the
// annotation and the initializer are independently optional.
type ValStmt struct {
	Name  *Ident
	Type  Type // nil when unannotated
	Value Expr // nil when uninitialized
	span  lexer.Span
}

func (s *ValStmt) Span() lexer.Span { return s.span }
func (*ValStmt) stmtNode()          {}
func (*ValStmt) applicationNode()   {}

// NewValStmt constructs a value binding node.
func NewValStmt(name *Ident, typ Type, value Expr, span lexer.Span) *ValStmt {
	return &ValStmt{Name: name, Type: typ, Value: value, span: span}
}

// CallStmt is an expression evaluated in statement position.
type CallStmt struct {
	Expr Expr
	span lexer.Span
}

func (s *CallStmt) Span() lexer.Span { return s.span }
func (*CallStmt) stmtNode()          {}

// NewCallStmt constructs a call statement node.
func NewCallStmt(expr Expr, span lexer.Span) *CallStmt {
	return &CallStmt{Expr: expr, span: span}
}

// IfBranch is a trailing branch of an if statement: else-if or else.
type IfBranch interface {
	Node
	ifBranchNode()
}

// ElseIfBranch is an "else if cond { ... }" branch.
type ElseIfBranch struct {
	Cond Expr
	Body *Block
	span lexer.Span
}

func (b *ElseIfBranch) Span() lexer.Span { return b.span }
func (*ElseIfBranch) ifBranchNode()      {}

// NewElseIfBranch constructs an else-if branch node.
func NewElseIfBranch(cond Expr, body *Block, span lexer.Span) *ElseIfBranch {
	return &ElseIfBranch{Cond: cond, Body: body, span: span}
}

// ElseBranch is a final "else { ... }" branch.
type ElseBranch struct {
	Body *Block
	span lexer.Span
}

func (b *ElseBranch) Span() lexer.Span { return b.span }
func (*ElseBranch) ifBranchNode()      {}

// NewElseBranch constructs an else branch node.
func NewElseBranch(body *Block, span lexer.Span) *ElseBranch {
	return &ElseBranch{Body: body, span: span}
}

// IfStmt is a condition, a block, and zero or more trailing branches.
type IfStmt struct {
	Cond     Expr
	Body     *Block
	Branches []IfBranch
	span     lexer.Span
}

func (s *IfStmt) Span() lexer.Span { return s.span }
func (*IfStmt) stmtNode()          {}

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, body *Block, branches []IfBranch, span lexer.Span) *IfStmt {
	return &IfStmt{Cond: cond, Body: body, Branches: branches, span: span}
}

// WhileStmt is a loop with an optional leading "label:" prefix.
type WhileStmt struct {
	Label *Ident // nil when unlabeled
	Cond  Expr
	Body  *Block
	span  lexer.Span
}

func (s *WhileStmt) Span() lexer.Span { return s.span }
func (*WhileStmt) stmtNode()          {}

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(label *Ident, cond Expr, body *Block, span lexer.Span) *WhileStmt {
	return &WhileStmt{Label: label, Cond: cond, Body: body, span: span}
}

// MatchCase binds a name to a type and a block. Matching is type-directed.
type MatchCase struct {
	Name *Ident
	Type Type
	Body *Block
	span lexer.Span
}

func (c *MatchCase) Span() lexer.Span { return c.span }

// NewMatchCase constructs a match case node.
func NewMatchCase(name *Ident, typ Type, body *Block, span lexer.Span) *MatchCase {
	return &MatchCase{Name: name, Type: typ, Body: body, span: span}
}

// MatchStmt is a subject expression and its ordered case list.
type MatchStmt struct {
	Subject Expr
	Cases   []*MatchCase
	span    lexer.Span
}

func (s *MatchStmt) Span() lexer.Span { return s.span }
func (*MatchStmt) stmtNode()          {}

// NewMatchStmt constructs a match statement node.
func NewMatchStmt(subject Expr, cases []*MatchCase, span lexer.Span) *MatchStmt {
	return &MatchStmt{Subject: subject, Cases: cases, span: span}
}

// TypeDeclStmt is a type declaration: "type name (= Type)?".
type TypeDeclStmt struct {
	Name *Ident
	Type Type // nil for an opaque declaration
	span lexer.Span
}

func (s *TypeDeclStmt) Span() lexer.Span { return s.span }
func (*TypeDeclStmt) stmtNode()          {}
func (*TypeDeclStmt) applicationNode()   {}

// NewTypeDeclStmt constructs a type declaration node.
func NewTypeDeclStmt(name *Ident, typ Type, span lexer.Span) *TypeDeclStmt {
	return &TypeDeclStmt{Name: name, Type: typ, span: span}
}

// BreakStmt is "break" with an optional loop label.
type BreakStmt struct {
	Label *Ident
	span  lexer.Span
}

func (s *BreakStmt) Span() lexer.Span { return s.span }
func (*BreakStmt) stmtNode()          {}

// NewBreakStmt constructs a break statement node.
func NewBreakStmt(label *Ident, span lexer.Span) *BreakStmt {
	return &BreakStmt{Label: label, span: span}
}

// ContinueStmt is "continue" with an optional loop label.
type ContinueStmt struct {
	Label *Ident
	span  lexer.Span
}

func (s *ContinueStmt) Span() lexer.Span { return s.span }
func (*ContinueStmt) stmtNode()          {}

// NewContinueStmt constructs a continue statement node.
func NewContinueStmt(label *Ident, span lexer.Span) *ContinueStmt {
	return &ContinueStmt{Label: label, span: span}
}

// ReturnStmt is "return" with an optional value.
type ReturnStmt struct {
	Value Expr
	span  lexer.Span
}

func (s *ReturnStmt) Span() lexer.Span { return s.span }
func (*ReturnStmt) stmtNode()          {}

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

// BlockStmt is a nested block, optionally prefixed by flags.
type BlockStmt struct {
	Flags []*Flag
	Body  *Block
	span  lexer.Span
}

func (s *BlockStmt) Span() lexer.Span { return s.span }
func (*BlockStmt) stmtNode()          {}

// NewBlockStmt constructs a nested block statement node.
func NewBlockStmt(flags []*Flag, body *Block, span lexer.Span) *BlockStmt {
	return &BlockStmt{Flags: flags, Body: body, span: span}
}
