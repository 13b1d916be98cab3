package ast

// Walk traverses the tree starting from node, calling fn for each node in
// source order. If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Unit:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *RootStmt:
		for _, flag := range n.Flags {
			Walk(flag, fn)
		}
		if n.Stmt != nil {
			Walk(n.Stmt, fn)
		}

	case *Flag:
		Walk(n.Name, fn)

	case *Marker:
		Walk(n.Name, fn)

	case *ImportItem:
		Walk(n.Name, fn)
		if n.Alias != nil {
			Walk(n.Alias, fn)
		}

	case *ImportDecl:
		for _, item := range n.Items {
			Walk(item, fn)
		}
		if n.From != nil {
			Walk(n.From, fn)
		}

	case *ApplyDecl:
		Walk(n.Subject, fn)
		if n.To != nil {
			Walk(n.To, fn)
		}
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *AssignStmt:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *ValStmt:
		Walk(n.Name, fn)
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *CallStmt:
		Walk(n.Expr, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)
		for _, branch := range n.Branches {
			Walk(branch, fn)
		}

	case *ElseIfBranch:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *ElseBranch:
		Walk(n.Body, fn)

	case *WhileStmt:
		if n.Label != nil {
			Walk(n.Label, fn)
		}
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *MatchStmt:
		Walk(n.Subject, fn)
		for _, c := range n.Cases {
			Walk(c, fn)
		}

	case *MatchCase:
		Walk(n.Name, fn)
		Walk(n.Type, fn)
		Walk(n.Body, fn)

	case *TypeDeclStmt:
		Walk(n.Name, fn)
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *BreakStmt:
		if n.Label != nil {
			Walk(n.Label, fn)
		}

	case *ContinueStmt:
		if n.Label != nil {
			Walk(n.Label, fn)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *BlockStmt:
		for _, flag := range n.Flags {
			Walk(flag, fn)
		}
		Walk(n.Body, fn)

	case *PathExpr:
		Walk(n.Left, fn)
		Walk(n.Name, fn)

	case *AccessExpr:
		Walk(n.Left, fn)
		Walk(n.Name, fn)

	case *FieldInit:
		Walk(n.Name, fn)
		Walk(n.Value, fn)

	case *ConstructExpr:
		Walk(n.Subject, fn)
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *ConstructEnumExpr:
		Walk(n.Subject, fn)
		Walk(n.Payload, fn)

	case *CallExpr:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *UnaryExpr:
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *AsExpr:
		Walk(n.Operand, fn)
		Walk(n.Target, fn)

	case *Param:
		Walk(n.Name, fn)
		Walk(n.Type, fn)

	case *RoutineLit:
		for _, marker := range n.Markers {
			Walk(marker, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Return != nil {
			Walk(n.Return, fn)
		}
		Walk(n.Body, fn)

	case *NamedType:
		Walk(n.Name, fn)

	case *PathType:
		Walk(n.Left, fn)
		Walk(n.Name, fn)

	case *RoutineType:
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Return != nil {
			Walk(n.Return, fn)
		}

	case *StructType:
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *StructField:
		Walk(n.Name, fn)
		Walk(n.Type, fn)

	case *EnumType:
		for _, variant := range n.Variants {
			Walk(variant, fn)
		}

	case *EnumVariant:
		Walk(n.Name, fn)
		if n.Payload != nil {
			Walk(n.Payload, fn)
		}

	case *ContractType:
		for _, member := range n.Members {
			Walk(member, fn)
		}

	case *SharedType:
		Walk(n.Inner, fn)
	case *FluidType:
		Walk(n.Inner, fn)
	case *RefType:
		Walk(n.Inner, fn)
	case *OptType:
		Walk(n.Inner, fn)

	case *ResultType:
		Walk(n.Ok, fn)
		Walk(n.Err, fn)

	case *BoolLit, *Ident, *NumberLit, *StringLit:
		// Leaves.
	}
}
