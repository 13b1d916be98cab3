package ast

import (
	"fmt"
	"strings"
)

// Dump renders a node as an indented debug tree. The output is stable and
// is what the golden parser tests and "hailc parse" compare against.
func Dump(node Node) string {
	var sb strings.Builder
	dump(&sb, node, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func line(sb *strings.Builder, depth int, format string, args ...any) {
	indent(sb, depth)
	fmt.Fprintf(sb, format, args...)
	sb.WriteByte('\n')
}

func dump(sb *strings.Builder, node Node, depth int) {
	switch n := node.(type) {
	case *Unit:
		line(sb, depth, "unit")
		for _, stmt := range n.Stmts {
			dump(sb, stmt, depth+1)
		}

	case *RootStmt:
		for _, flag := range n.Flags {
			dump(sb, flag, depth)
		}
		dump(sb, n.Stmt, depth)

	case *Flag:
		if n.Negated {
			line(sb, depth, "@!%s", n.Name.Name)
		} else {
			line(sb, depth, "@%s", n.Name.Name)
		}

	case *Marker:
		line(sb, depth, "#%s", n.Name.Name)

	case *ImportDecl:
		if n.Multi {
			line(sb, depth, "import multi")
		} else {
			line(sb, depth, "import")
		}
		for _, item := range n.Items {
			if item.Alias != nil {
				line(sb, depth+1, "item %s as %s", item.Name.Name, item.Alias.Name)
			} else {
				line(sb, depth+1, "item %s", item.Name.Name)
			}
		}
		if n.From != nil {
			line(sb, depth+1, "from %s", n.From.Name)
		}

	case *ApplyDecl:
		line(sb, depth, "apply")
		line(sb, depth+1, "subject:")
		dump(sb, n.Subject, depth+2)
		if n.To != nil {
			line(sb, depth+1, "to:")
			dump(sb, n.To, depth+2)
		}
		for _, item := range n.Items {
			dump(sb, item, depth+1)
		}

	case *Block:
		line(sb, depth, "block")
		for _, stmt := range n.Stmts {
			dump(sb, stmt, depth+1)
		}

	case *AssignStmt:
		line(sb, depth, "assign %s", string(n.Op))
		dump(sb, n.Target, depth+1)
		dump(sb, n.Value, depth+1)

	case *ValStmt:
		line(sb, depth, "val %s", n.Name.Name)
		if n.Type != nil {
			line(sb, depth+1, "type:")
			dump(sb, n.Type, depth+2)
		}
		if n.Value != nil {
			line(sb, depth+1, "value:")
			dump(sb, n.Value, depth+2)
		}

	case *CallStmt:
		line(sb, depth, "call-stmt")
		dump(sb, n.Expr, depth+1)

	case *IfStmt:
		line(sb, depth, "if")
		dump(sb, n.Cond, depth+1)
		dump(sb, n.Body, depth+1)
		for _, branch := range n.Branches {
			dump(sb, branch, depth+1)
		}

	case *ElseIfBranch:
		line(sb, depth, "else-if")
		dump(sb, n.Cond, depth+1)
		dump(sb, n.Body, depth+1)

	case *ElseBranch:
		line(sb, depth, "else")
		dump(sb, n.Body, depth+1)

	case *WhileStmt:
		if n.Label != nil {
			line(sb, depth, "while %s:", n.Label.Name)
		} else {
			line(sb, depth, "while")
		}
		dump(sb, n.Cond, depth+1)
		dump(sb, n.Body, depth+1)

	case *MatchStmt:
		line(sb, depth, "match")
		dump(sb, n.Subject, depth+1)
		for _, c := range n.Cases {
			line(sb, depth+1, "case %s", c.Name.Name)
			dump(sb, c.Type, depth+2)
			dump(sb, c.Body, depth+2)
		}

	case *TypeDeclStmt:
		line(sb, depth, "type %s", n.Name.Name)
		if n.Type != nil {
			dump(sb, n.Type, depth+1)
		}

	case *BreakStmt:
		if n.Label != nil {
			line(sb, depth, "break %s", n.Label.Name)
		} else {
			line(sb, depth, "break")
		}

	case *ContinueStmt:
		if n.Label != nil {
			line(sb, depth, "continue %s", n.Label.Name)
		} else {
			line(sb, depth, "continue")
		}

	case *ReturnStmt:
		line(sb, depth, "return")
		if n.Value != nil {
			dump(sb, n.Value, depth+1)
		}

	case *BlockStmt:
		line(sb, depth, "nested-block")
		for _, flag := range n.Flags {
			dump(sb, flag, depth+1)
		}
		dump(sb, n.Body, depth+1)

	case *BoolLit:
		line(sb, depth, "bool %t", n.Value)

	case *Ident:
		line(sb, depth, "id %s", n.Name)

	case *NumberLit:
		line(sb, depth, "num %s %s", n.Kind, n.Text)

	case *StringLit:
		line(sb, depth, "str %q", n.Text)

	case *PathExpr:
		line(sb, depth, "path %s", n.Name.Name)
		dump(sb, n.Left, depth+1)

	case *AccessExpr:
		line(sb, depth, "access %s", n.Name.Name)
		dump(sb, n.Left, depth+1)

	case *ConstructExpr:
		line(sb, depth, "construct")
		dump(sb, n.Subject, depth+1)
		for _, field := range n.Fields {
			line(sb, depth+1, "field %s", field.Name.Name)
			dump(sb, field.Value, depth+2)
		}

	case *ConstructEnumExpr:
		line(sb, depth, "construct-enum")
		dump(sb, n.Subject, depth+1)
		dump(sb, n.Payload, depth+1)

	case *CallExpr:
		line(sb, depth, "call")
		dump(sb, n.Callee, depth+1)
		for _, arg := range n.Args {
			dump(sb, arg, depth+1)
		}

	case *UnaryExpr:
		line(sb, depth, "unary %s", string(n.Op))
		dump(sb, n.Operand, depth+1)

	case *BinaryExpr:
		line(sb, depth, "binary %s", string(n.Op))
		dump(sb, n.Left, depth+1)
		dump(sb, n.Right, depth+1)

	case *AsExpr:
		line(sb, depth, "as")
		dump(sb, n.Operand, depth+1)
		dump(sb, n.Target, depth+1)

	case *RoutineLit:
		line(sb, depth, "routine")
		for _, marker := range n.Markers {
			dump(sb, marker, depth+1)
		}
		for _, param := range n.Params {
			line(sb, depth+1, "param %s", param.Name.Name)
			dump(sb, param.Type, depth+2)
		}
		if n.Return != nil {
			line(sb, depth+1, "return:")
			dump(sb, n.Return, depth+2)
		}
		dump(sb, n.Body, depth+1)

	case *NamedType:
		line(sb, depth, "named %s", n.Name.Name)

	case *PathType:
		line(sb, depth, "type-path %s", n.Name.Name)
		dump(sb, n.Left, depth+1)

	case *RoutineType:
		line(sb, depth, "routine-type")
		for _, param := range n.Params {
			dump(sb, param, depth+1)
		}
		if n.Return != nil {
			line(sb, depth+1, "return:")
			dump(sb, n.Return, depth+2)
		}

	case *StructType:
		line(sb, depth, "struct")
		for _, field := range n.Fields {
			line(sb, depth+1, "field %s", field.Name.Name)
			dump(sb, field.Type, depth+2)
		}

	case *EnumType:
		line(sb, depth, "enum")
		for _, variant := range n.Variants {
			line(sb, depth+1, "variant %s", variant.Name.Name)
			if variant.Payload != nil {
				dump(sb, variant.Payload, depth+2)
			}
		}

	case *ContractType:
		line(sb, depth, "contract")
		for _, member := range n.Members {
			dump(sb, member, depth+1)
		}

	case *SharedType:
		line(sb, depth, "shared")
		dump(sb, n.Inner, depth+1)

	case *FluidType:
		line(sb, depth, "fluid")
		dump(sb, n.Inner, depth+1)

	case *RefType:
		line(sb, depth, "ref")
		dump(sb, n.Inner, depth+1)

	case *OptType:
		line(sb, depth, "opt")
		dump(sb, n.Inner, depth+1)

	case *ResultType:
		line(sb, depth, "result")
		dump(sb, n.Ok, depth+1)
		dump(sb, n.Err, depth+1)

	default:
		line(sb, depth, "<%T>", node)
	}
}
