package parsers

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/reusee/typy/nodes"
	"go.starlark.net/syntax"
)

func parseExpr(t *testing.T, src string) nodes.Expr {
	t.Helper()
	tree := mustAccept(t, src+"\n")
	if len(tree.Body) != 1 {
		t.Fatalf("got %v", nodes.Format(tree))
	}
	stmt, ok := tree.Body[0].(*nodes.ExprStmt)
	if !ok {
		t.Fatalf("got %T", tree.Body[0])
	}
	return stmt.X
}

func TestPrecedence(t *testing.T) {
	for _, c := range [][2]string{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"a % b / c", "(/ (% a b) c)"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"-x * y", "(* (- x) y)"},
		{"--x", "(- (- x))"},
		{"-f(x)[0]", "(- (index (call f x) 0))"},
		{"a or b and not c", "(or a (and b (not c)))"},
		{"a and b or c and d", "(or (and a b) (and c d))"},
		{"not a == b", "(not (== a b))"},
		{"not not a", "(not (not a))"},
		{"a + 1 <= b * 2", "(<= (+ a 1) (* b 2))"},
		{"x is None", "(is x None)"},
		{"x is not None", "(is-not x None)"},
		{"not x is not None", "(not (is-not x None))"},
		{"a if b else c", "(ifelse b a c)"},
		{"a if b else c if d else e", "(ifelse b a (ifelse d c e))"},
		{"a or b if c or d else e", "(ifelse (or c d) (or a b) e)"},
		{"f()", "(call f)"},
		{"f(1, 2)[0](x)", "(call (index (call f 1 2) 0) x)"},
		{"m[i][j]", "(index (index m i) j)"},
		{"[1, [2], []]", "(list 1 (list 2) (list))"},
		{"[a if b else c]", "(list (ifelse b a c))"},
		{`"a\tb"`, `"a\tb"`},
		{`'it\'s'`, `"it's"`},
		{"True and False or None", "(or (and True False) None)"},
		{"9223372036854775807", "9223372036854775807"},
	} {
		if got := nodes.Format(parseExpr(t, c[0])); got != c[1] {
			t.Fatalf("%s: got %s, want %s", c[0], got, c[1])
		}
	}
}

func TestNonAssociativeComparison(t *testing.T) {
	result := Parse("test.typy", "a < b < c\n")
	if result.Accepted() || len(result.Diagnostics) != 1 {
		t.Fatalf("got %v", result.Diagnostics)
	}
	if msg := result.Diagnostics[0].Message; msg != "unexpected '<' in expression" {
		t.Fatalf("got %s", msg)
	}
}

// formatStarlark renders a starlark expression the way nodes.Format renders ours.
func formatStarlark(expr syntax.Expr) string {
	switch e := expr.(type) {
	case *syntax.Ident:
		return e.Name
	case *syntax.Literal:
		return fmt.Sprint(e.Value)
	case *syntax.ParenExpr:
		return formatStarlark(e.X)
	case *syntax.UnaryExpr:
		return "(" + e.Op.String() + " " + formatStarlark(e.X) + ")"
	case *syntax.BinaryExpr:
		return "(" + e.Op.String() + " " + formatStarlark(e.X) + " " + formatStarlark(e.Y) + ")"
	case *syntax.CondExpr:
		return "(ifelse " + formatStarlark(e.Cond) + " " + formatStarlark(e.True) + " " + formatStarlark(e.False) + ")"
	case *syntax.CallExpr:
		parts := []string{"call", formatStarlark(e.Fn)}
		for _, arg := range e.Args {
			parts = append(parts, formatStarlark(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *syntax.IndexExpr:
		return "(index " + formatStarlark(e.X) + " " + formatStarlark(e.Y) + ")"
	case *syntax.ListExpr:
		parts := []string{"list"}
		for _, elem := range e.List {
			parts = append(parts, formatStarlark(elem))
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return fmt.Sprintf("<%T>", expr)
}

// exprGen derives random sentences of the expression grammar.
type exprGen struct {
	rand  *rand.Rand
	depth int
}

func (g *exprGen) pick(n int) int {
	return g.rand.IntN(n)
}

func (g *exprGen) deeper(fn func() string) string {
	g.depth++
	defer func() {
		g.depth--
	}()
	return fn()
}

func (g *exprGen) expr() string {
	s := g.orExpr()
	if g.depth < 4 && g.pick(6) == 0 {
		s += " if " + g.deeper(g.orExpr) + " else " + g.deeper(g.expr)
	}
	return s
}

func (g *exprGen) chain(operand func() string, ops ...string) string {
	s := operand()
	for g.depth < 4 && g.pick(3) == 0 {
		s += " " + ops[g.pick(len(ops))] + " " + g.deeper(operand)
	}
	return s
}

func (g *exprGen) orExpr() string {
	return g.chain(g.andExpr, "or")
}

func (g *exprGen) andExpr() string {
	return g.chain(g.notExpr, "and")
}

func (g *exprGen) notExpr() string {
	if g.pick(8) == 0 {
		return "not " + g.notExpr()
	}
	s := g.intExpr()
	if g.depth < 4 && g.pick(4) == 0 {
		ops := []string{"==", "!=", "<", "<=", ">", ">="}
		s += " " + ops[g.pick(len(ops))] + " " + g.deeper(g.intExpr)
	}
	return s
}

func (g *exprGen) intExpr() string {
	return g.chain(g.term, "+", "-")
}

func (g *exprGen) term() string {
	return g.chain(g.factor, "*", "/", "%")
}

func (g *exprGen) factor() string {
	n := 6
	if g.depth >= 4 {
		n = 3
	}
	switch g.pick(n) {
	case 0:
		return "-" + g.factor()
	case 1:
		return fmt.Sprint(g.pick(100))
	case 2:
		name := []string{"a", "b", "xs", "f"}[g.pick(4)]
		for g.depth < 4 && g.pick(4) == 0 {
			if g.pick(2) == 0 {
				name += "[" + g.deeper(g.expr) + "]"
			} else {
				var args []string
				for range g.pick(3) {
					args = append(args, g.deeper(g.expr))
				}
				name += "(" + strings.Join(args, ", ") + ")"
			}
		}
		return name
	case 3:
		return "(" + g.deeper(g.expr) + ")"
	case 4:
		var elems []string
		for range g.pick(3) {
			elems = append(elems, g.deeper(g.expr))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	default:
		return []string{"True", "False", "None"}[g.pick(3)]
	}
}

// starlark shares the precedence of this expression grammar
func TestPrecedenceAgainstStarlark(t *testing.T) {
	g := &exprGen{
		rand: rand.New(rand.NewPCG(3, 7)),
	}
	for range 500 {
		src := g.expr()
		want, err := syntax.ParseExpr("oracle", src, 0)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if got := nodes.Format(parseExpr(t, src)); got != formatStarlark(want) {
			t.Fatalf("%s: got %s, want %s", src, got, formatStarlark(want))
		}
	}
}
