package grammars

import (
	"strings"
	"sync"
	"testing"

	tk "github.com/reusee/typy/tokens"
)

func TestDefaultIsLL1(t *testing.T) {
	g := Default()
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(g.Conflicts()) != 0 {
		t.Fatalf("got %v", g.Conflicts())
	}
	for nt := Program; nt < numNonTerminals; nt++ {
		if len(g.Productions(nt)) == 0 {
			t.Fatalf("%s has no productions", nt)
		}
	}
}

// checks the LL(1) conditions directly on the sets, independent of the table
func TestDisjointAlternatives(t *testing.T) {
	g := Default()
	for nt := Program; nt < numNonTerminals; nt++ {
		prods := g.Productions(nt)
		if len(prods) < 2 {
			continue
		}
		for i, a := range prods {
			firstA, nullableA := g.FirstOf(a.Body)
			for _, b := range prods[i+1:] {
				firstB, nullableB := g.FirstOf(b.Body)
				if both := firstA.Intersect(firstB); !both.Empty() {
					t.Fatalf("%s: FIRST/FIRST overlap %v between %v and %v", nt, both, a, b)
				}
				if nullableA && nullableB {
					t.Fatalf("%s: two empty alternatives", nt)
				}
				if nullableA {
					if both := g.Follow(nt).Intersect(firstB); !both.Empty() {
						t.Fatalf("%s: FIRST/FOLLOW overlap %v with %v", nt, both, b)
					}
				}
				if nullableB {
					if both := g.Follow(nt).Intersect(firstA); !both.Empty() {
						t.Fatalf("%s: FIRST/FOLLOW overlap %v with %v", nt, both, a)
					}
				}
			}
		}
	}
}

func TestFirstAndFollow(t *testing.T) {
	g := Default()

	exprFirst := tk.SetOf(tk.Not, tk.Minus, tk.Ident, tk.None, tk.True, tk.False,
		tk.Integer, tk.String, tk.LBracket, tk.LParen)
	if got := g.First(Expr); got != exprFirst {
		t.Fatalf("got %v", got)
	}
	if got := g.First(Statement); got != exprFirst.Union(tk.SetOf(tk.Pass, tk.Return, tk.If, tk.While, tk.For)) {
		t.Fatalf("got %v", got)
	}
	if got := g.Follow(Expr); got != tk.SetOf(tk.Colon, tk.Assign, tk.Newline, tk.RParen, tk.RBracket, tk.Comma) {
		t.Fatalf("got %v", got)
	}
	if got := g.Follow(StatementList); got != tk.SetOf(tk.Dedent, tk.EOF) {
		t.Fatalf("got %v", got)
	}
	if got := g.Follow(SimpleStatement); got != tk.SetOf(tk.Newline) {
		t.Fatalf("got %v", got)
	}
	if got := g.Follow(TypedVarList); got != tk.SetOf(tk.RParen) {
		t.Fatalf("got %v", got)
	}
	if got := g.Follow(OrExpr); !got.Has(tk.Else) || !got.Has(tk.If) {
		t.Fatalf("got %v", got)
	}

	for _, nt := range []NonTerminal{DefList, StatementList, ElifList, Else, SSTail, ReturnExpr,
		CondTail, OrTail, AndTail, CompTail, IsTail, IntTail, TermTail, NameTail, ExprList,
		ExprListTail, TypedVarList, TypedVarListTail, Return} {
		if !g.Nullable(nt) {
			t.Fatalf("%s should be nullable", nt)
		}
	}
	for _, nt := range []NonTerminal{Program, Def, Block, Statement, Expr, Factor, Type, Name, Literal, List} {
		if g.Nullable(nt) {
			t.Fatalf("%s should not be nullable", nt)
		}
	}
}

func TestChoose(t *testing.T) {
	g := Default()

	p, ok := g.Choose(Statement, tk.If)
	if !ok || p.Index != 1 || p.Body[0] != T(tk.If) {
		t.Fatalf("got %v", p)
	}
	p, ok = g.Choose(Statement, tk.Ident)
	if !ok || p.Index != 0 {
		t.Fatalf("got %v", p)
	}
	p, ok = g.Choose(SSTail, tk.Newline)
	if !ok || !p.Empty() {
		t.Fatalf("got %v", p)
	}
	p, ok = g.Choose(Factor, tk.LBracket)
	if !ok || p.Body[0] != N(List) {
		t.Fatalf("got %v", p)
	}
	p, ok = g.Choose(NameTail, tk.LBracket)
	if !ok || p.Body[0] != N(Trailer) {
		t.Fatalf("got %v", p)
	}
	if _, ok := g.Choose(Factor, tk.Newline); ok {
		t.Fatal("should not predict")
	}
	if _, ok := g.Choose(Program, tk.Indent); ok {
		t.Fatal("should not predict")
	}
	p, ok = g.Choose(Program, tk.EOF)
	if !ok || p.Head != Program {
		t.Fatalf("got %v", p)
	}
}

func TestExpected(t *testing.T) {
	g := Default()
	if got := g.Expected(SSTail); got != tk.SetOf(tk.Assign, tk.Newline) {
		t.Fatalf("got %v", got)
	}
	if got := g.Expected(Type); got != tk.SetOf(tk.Int, tk.Str, tk.None, tk.LBracket) {
		t.Fatalf("got %v", got)
	}
}

func TestFirstFirstConflict(t *testing.T) {
	g := New(Type, []Rule{
		{Type, [][]Symbol{
			alt(T(tk.Int)),
			alt(T(tk.Int), T(tk.Str)),
		}},
	})
	conflicts := g.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("got %v", conflicts)
	}
	c := conflicts[0]
	if c.Kind != FirstFirst || c.NonTerminal != Type || c.Lookahead != tk.Int || c.Alternatives != [2]int{0, 1} {
		t.Fatalf("got %v", c)
	}
	if err := g.Validate(); err == nil || !strings.Contains(err.Error(), "FIRST/FIRST") {
		t.Fatalf("got %v", err)
	}
}

func TestFirstFollowConflict(t *testing.T) {
	g := New(Program, []Rule{
		{Program, [][]Symbol{
			alt(N(Return), T(tk.Arrow), T(tk.EOF)),
		}},
		{Return, [][]Symbol{
			alt(T(tk.Arrow), N(Type)),
			epsilon,
		}},
		{Type, [][]Symbol{
			alt(T(tk.Int)),
		}},
	})
	conflicts := g.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("got %v", conflicts)
	}
	if c := conflicts[0]; c.Kind != FirstFollow || c.NonTerminal != Return || c.Lookahead != tk.Arrow {
		t.Fatalf("got %v", c)
	}
}

func TestUndefinedNonTerminal(t *testing.T) {
	g := New(Program, []Rule{
		{Program, [][]Symbol{
			alt(N(Def), T(tk.EOF)),
		}},
	})
	err := g.Validate()
	if err == nil || !strings.Contains(err.Error(), "Def has no productions") {
		t.Fatalf("got %v", err)
	}
}

func TestFormat(t *testing.T) {
	out := Default().Format()
	for _, want := range []string{
		"Program → DefList StatementList EOF\n",
		"SSTail → ε\n",
		"Type → [ Type ]\n",
		"FOLLOW {NEWLINE}\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q", want)
		}
	}
}

func TestConcurrentChoose(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := Default()
			for nt := Program; nt < numNonTerminals; nt++ {
				for k := range tk.NumKinds {
					g.Choose(nt, tk.Kind(k))
				}
			}
		}()
	}
	wg.Wait()
}

func TestEBNF(t *testing.T) {
	g := Default()
	if err := g.VerifyEBNF(); err != nil {
		t.Fatal(err)
	}
	out := g.EBNF()
	for _, want := range []string{
		"Program = DefList StatementList \"EOF\" .\n",
		"DefList = [ Def DefList ] .\n",
		"Type = \"int\" | \"str\" | \"None\" | \"[\" Type \"]\" .\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}

func TestEBNFUnreachable(t *testing.T) {
	g := New(Program, []Rule{
		{Program, [][]Symbol{alt(T(tk.Pass))}},
		{Block, [][]Symbol{alt(T(tk.Pass))}},
	})
	if err := g.VerifyEBNF(); err == nil {
		t.Fatal("should fail")
	}
}
