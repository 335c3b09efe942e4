package nodes

import (
	"strconv"
	"strings"

	"github.com/reusee/typy/tokens"
)

// Format renders the tree as an S-expression. Parentheses in the source are
// not rendered; grouping shows in the nesting.
func Format(node Node) string {
	var sb strings.Builder
	format(&sb, node)
	return sb.String()
}

func format(sb *strings.Builder, node Node) {
	list := func(head string, items ...func()) {
		sb.WriteString("(")
		sb.WriteString(head)
		for _, item := range items {
			sb.WriteString(" ")
			item()
		}
		sb.WriteString(")")
	}
	sub := func(n Node) func() {
		return func() {
			format(sb, n)
		}
	}
	word := func(s string) func() {
		return func() {
			sb.WriteString(s)
		}
	}

	switch n := node.(type) {

	case nil:
		sb.WriteString("_")

	case *Program:
		var items []func()
		for _, def := range n.Defs {
			items = append(items, sub(def))
		}
		for _, stmt := range n.Body {
			items = append(items, sub(stmt))
		}
		list("program", items...)

	case *Def:
		params := func() {
			sb.WriteString("(")
			for i, param := range n.Params {
				if i > 0 {
					sb.WriteString(" ")
				}
				format(sb, param)
			}
			sb.WriteString(")")
		}
		result := word("_")
		if n.Result != nil {
			result = sub(n.Result)
		}
		list("def", word(n.Name), params, result, sub(n.Body))

	case *Param:
		list(n.Name, sub(n.Type))

	case *Block:
		if n == nil {
			sb.WriteString("_")
			return
		}
		var items []func()
		for _, stmt := range n.Stmts {
			items = append(items, sub(stmt))
		}
		list("block", items...)

	case *NamedType:
		sb.WriteString(n.Name)

	case *ListType:
		sb.WriteString("[")
		format(sb, n.Elem)
		sb.WriteString("]")

	case *BadType:
		sb.WriteString("<bad-type>")

	case *AssignStmt:
		list("=", sub(n.Target), sub(n.Value))

	case *ExprStmt:
		list("expr", sub(n.X))

	case *PassStmt:
		sb.WriteString("pass")

	case *ReturnStmt:
		if n.Value == nil {
			list("return")
		} else {
			list("return", sub(n.Value))
		}

	case *IfStmt:
		items := []func(){sub(n.Cond), sub(n.Body)}
		for _, elif := range n.Elifs {
			items = append(items, sub(elif))
		}
		if n.Else != nil {
			items = append(items, func() {
				list("else", sub(n.Else))
			})
		}
		list("if", items...)

	case *ElifClause:
		list("elif", sub(n.Cond), sub(n.Body))

	case *WhileStmt:
		list("while", sub(n.Cond), sub(n.Body))

	case *ForStmt:
		list("for", word(n.Var), sub(n.Iter), sub(n.Body))

	case *BadStmt:
		sb.WriteString("<bad-stmt>")

	case *CondExpr:
		list("ifelse", sub(n.Cond), sub(n.Then), sub(n.Else))

	case *BinaryExpr:
		op := n.Op.String()
		if n.Op == tokens.Is && n.Negated {
			op = "is-not"
		}
		list(op, sub(n.X), sub(n.Y))

	case *UnaryExpr:
		list(n.Op.String(), sub(n.X))

	case *Ident:
		sb.WriteString(n.Name)

	case *CallExpr:
		items := []func(){sub(n.Fn)}
		for _, arg := range n.Args {
			items = append(items, sub(arg))
		}
		list("call", items...)

	case *IndexExpr:
		list("index", sub(n.X), sub(n.Index))

	case *IntLit:
		sb.WriteString(strconv.FormatInt(n.Value, 10))

	case *StringLit:
		sb.WriteString(strconv.Quote(n.Value))

	case *BoolLit:
		if n.Value {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}

	case *NoneLit:
		sb.WriteString("None")

	case *ListExpr:
		var items []func()
		for _, elem := range n.Elems {
			items = append(items, sub(elem))
		}
		list("list", items...)

	case *ParenExpr:
		format(sb, n.X)

	case *BadExpr:
		sb.WriteString("<bad-expr>")

	}
}
