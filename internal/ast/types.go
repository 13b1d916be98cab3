package ast

import "github.com/hail-lang/hail/internal/lexer"

// NamedType is a plain type name.
type NamedType struct {
	Name *Ident
	span lexer.Span
}

func (t *NamedType) Span() lexer.Span { return t.span }
func (*NamedType) typeNode()          {}

// NewNamedType constructs a named type node.
func NewNamedType(name *Ident, span lexer.Span) *NamedType {
	return &NamedType{Name: name, span: span}
}

// PathType is a "left::name" type path segment.
type PathType struct {
	Left Type
	Name *Ident
	span lexer.Span
}

func (t *PathType) Span() lexer.Span { return t.span }
func (*PathType) typeNode()          {}

// NewPathType constructs a type path node.
func NewPathType(left Type, name *Ident, span lexer.Span) *PathType {
	return &PathType{Left: left, Name: name, span: span}
}

// RoutineType is a routine signature type: "routine(T, U) -> R".
type RoutineType struct {
	Params []Type
	Return Type // nil when the routine returns nothing
	span   lexer.Span
}

func (t *RoutineType) Span() lexer.Span { return t.span }
func (*RoutineType) typeNode()          {}

// NewRoutineType constructs a routine type node.
func NewRoutineType(params []Type, ret Type, span lexer.Span) *RoutineType {
	return &RoutineType{Params: params, Return: ret, span: span}
}

// StructField is one "name <- Type" member of a struct type.
type StructField struct {
	Name *Ident
	Type Type
	span lexer.Span
}

func (f *StructField) Span() lexer.Span { return f.span }

// NewStructField constructs a struct field node.
func NewStructField(name *Ident, typ Type, span lexer.Span) *StructField {
	return &StructField{Name: name, Type: typ, span: span}
}

// StructType is a structural record type literal.
type StructType struct {
	Fields []*StructField
	span   lexer.Span
}

func (t *StructType) Span() lexer.Span { return t.span }
func (*StructType) typeNode()          {}

// NewStructType constructs a struct type node.
func NewStructType(fields []*StructField, span lexer.Span) *StructType {
	return &StructType{Fields: fields, span: span}
}

// EnumVariant is one "name" or "name <- Type" variant of an enum type.
type EnumVariant struct {
	Name    *Ident
	Payload Type // nil for payload-less variants
	span    lexer.Span
}

func (v *EnumVariant) Span() lexer.Span { return v.span }

// NewEnumVariant constructs an enum variant node.
func NewEnumVariant(name *Ident, payload Type, span lexer.Span) *EnumVariant {
	return &EnumVariant{Name: name, Payload: payload, span: span}
}

// EnumType is a structural sum type literal.
type EnumType struct {
	Variants []*EnumVariant
	span     lexer.Span
}

func (t *EnumType) Span() lexer.Span { return t.span }
func (*EnumType) typeNode()          {}

// NewEnumType constructs an enum type node.
func NewEnumType(variants []*EnumVariant, span lexer.Span) *EnumType {
	return &EnumType{Variants: variants, span: span}
}

// ContractType is a structural capability set: an ordered list of member
// declarations.
type ContractType struct {
	Members []Application
	span    lexer.Span
}

func (t *ContractType) Span() lexer.Span { return t.span }
func (*ContractType) typeNode()          {}

// NewContractType constructs a contract type node.
func NewContractType(members []Application, span lexer.Span) *ContractType {
	return &ContractType{Members: members, span: span}
}

// SharedType is a "shared T" modifier type.
type SharedType struct {
	Inner Type
	span  lexer.Span
}

func (t *SharedType) Span() lexer.Span { return t.span }
func (*SharedType) typeNode()          {}

// NewSharedType constructs a shared type node.
func NewSharedType(inner Type, span lexer.Span) *SharedType {
	return &SharedType{Inner: inner, span: span}
}

// FluidType is a "fluid T" modifier type.
type FluidType struct {
	Inner Type
	span  lexer.Span
}

func (t *FluidType) Span() lexer.Span { return t.span }
func (*FluidType) typeNode()          {}

// NewFluidType constructs a fluid type node.
func NewFluidType(inner Type, span lexer.Span) *FluidType {
	return &FluidType{Inner: inner, span: span}
}

// RefType is a "&T" reference type.
type RefType struct {
	Inner Type
	span  lexer.Span
}

func (t *RefType) Span() lexer.Span { return t.span }
func (*RefType) typeNode()          {}

// NewRefType constructs a reference type node.
func NewRefType(inner Type, span lexer.Span) *RefType {
	return &RefType{Inner: inner, span: span}
}

// OptType is a "?T" optional type.
type OptType struct {
	Inner Type
	span  lexer.Span
}

func (t *OptType) Span() lexer.Span { return t.span }
func (*OptType) typeNode()          {}

// NewOptType constructs an optional type node.
func NewOptType(inner Type, span lexer.Span) *OptType {
	return &OptType{Inner: inner, span: span}
}

// ResultType is a "!ok : err" result type.
type ResultType struct {
	Ok   Type
	Err  Type
	span lexer.Span
}

func (t *ResultType) Span() lexer.Span { return t.span }
func (*ResultType) typeNode()          {}

// NewResultType constructs a result type node.
func NewResultType(ok, err Type, span lexer.Span) *ResultType {
	return &ResultType{Ok: ok, Err: err, span: span}
}
