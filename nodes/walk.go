package nodes

// Walk visits node and its descendants in pre-order. Children are skipped
// when fn returns false.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Children returns the direct children of node in source order.
func Children(node Node) (ret []Node) {
	add := func(n Node) {
		if n != nil {
			ret = append(ret, n)
		}
	}
	switch n := node.(type) {
	case *Program:
		for _, def := range n.Defs {
			add(def)
		}
		for _, stmt := range n.Body {
			add(stmt)
		}
	case *Def:
		for _, param := range n.Params {
			add(param)
		}
		if n.Result != nil {
			add(n.Result)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *Param:
		if n.Type != nil {
			add(n.Type)
		}
	case *Block:
		for _, stmt := range n.Stmts {
			add(stmt)
		}
	case *ListType:
		if n.Elem != nil {
			add(n.Elem)
		}
	case *AssignStmt:
		addExprs(add, n.Target, n.Value)
	case *ExprStmt:
		addExprs(add, n.X)
	case *ReturnStmt:
		addExprs(add, n.Value)
	case *IfStmt:
		addExprs(add, n.Cond)
		if n.Body != nil {
			add(n.Body)
		}
		for _, elif := range n.Elifs {
			add(elif)
		}
		if n.Else != nil {
			add(n.Else)
		}
	case *ElifClause:
		addExprs(add, n.Cond)
		if n.Body != nil {
			add(n.Body)
		}
	case *WhileStmt:
		addExprs(add, n.Cond)
		if n.Body != nil {
			add(n.Body)
		}
	case *ForStmt:
		addExprs(add, n.Iter)
		if n.Body != nil {
			add(n.Body)
		}
	case *CondExpr:
		addExprs(add, n.Then, n.Cond, n.Else)
	case *BinaryExpr:
		addExprs(add, n.X, n.Y)
	case *UnaryExpr:
		addExprs(add, n.X)
	case *CallExpr:
		addExprs(add, n.Fn)
		addExprs(add, n.Args...)
	case *IndexExpr:
		addExprs(add, n.X, n.Index)
	case *ListExpr:
		addExprs(add, n.Elems...)
	case *ParenExpr:
		addExprs(add, n.X)
	}
	return
}

func addExprs(add func(Node), exprs ...Expr) {
	for _, e := range exprs {
		if e != nil {
			add(e)
		}
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) (n int) {
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return
}
