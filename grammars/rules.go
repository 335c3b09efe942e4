package grammars

import (
	tk "github.com/reusee/typy/tokens"
)

// Rule lists the alternatives of one non-terminal in choice order. An empty
// alternative derives the empty string.
type Rule struct {
	Head         NonTerminal
	Alternatives [][]Symbol
}

func alt(syms ...Symbol) []Symbol {
	return syms
}

var epsilon = alt()

// Rules is the production table of the language.
var Rules = []Rule{
	{Program, [][]Symbol{
		alt(N(DefList), N(StatementList), T(tk.EOF)),
	}},
	{DefList, [][]Symbol{
		alt(N(Def), N(DefList)),
		epsilon,
	}},
	{Def, [][]Symbol{
		alt(T(tk.Def), T(tk.Ident), T(tk.LParen), N(TypedVarList), T(tk.RParen), N(Return), T(tk.Colon), N(Block)),
	}},
	{TypedVar, [][]Symbol{
		alt(T(tk.Ident), T(tk.Colon), N(Type)),
	}},
	{Type, [][]Symbol{
		alt(T(tk.Int)),
		alt(T(tk.Str)),
		alt(T(tk.None)),
		alt(T(tk.LBracket), N(Type), T(tk.RBracket)),
	}},
	{TypedVarList, [][]Symbol{
		alt(N(TypedVar), N(TypedVarListTail)),
		epsilon,
	}},
	{TypedVarListTail, [][]Symbol{
		alt(T(tk.Comma), N(TypedVar), N(TypedVarListTail)),
		epsilon,
	}},
	{Return, [][]Symbol{
		alt(T(tk.Arrow), N(Type)),
		epsilon,
	}},
	{Block, [][]Symbol{
		alt(T(tk.Newline), T(tk.Indent), N(Statement), N(StatementList), T(tk.Dedent)),
	}},
	{StatementList, [][]Symbol{
		alt(N(Statement), N(StatementList)),
		epsilon,
	}},
	{Statement, [][]Symbol{
		alt(N(SimpleStatement), T(tk.Newline)),
		alt(T(tk.If), N(Expr), T(tk.Colon), N(Block), N(ElifList), N(Else)),
		alt(T(tk.While), N(Expr), T(tk.Colon), N(Block)),
		alt(T(tk.For), T(tk.Ident), T(tk.In), N(Expr), T(tk.Colon), N(Block)),
	}},
	{ElifList, [][]Symbol{
		alt(N(Elif), N(ElifList)),
		epsilon,
	}},
	{Elif, [][]Symbol{
		alt(T(tk.Elif), N(Expr), T(tk.Colon), N(Block)),
	}},
	{Else, [][]Symbol{
		alt(T(tk.Else), T(tk.Colon), N(Block)),
		epsilon,
	}},
	{SimpleStatement, [][]Symbol{
		alt(N(Expr), N(SSTail)),
		alt(T(tk.Pass)),
		alt(T(tk.Return), N(ReturnExpr)),
	}},
	{SSTail, [][]Symbol{
		alt(T(tk.Assign), N(Expr)),
		epsilon,
	}},
	{ReturnExpr, [][]Symbol{
		alt(N(Expr)),
		epsilon,
	}},
	{Expr, [][]Symbol{
		alt(N(OrExpr), N(CondTail)),
	}},
	{CondTail, [][]Symbol{
		alt(T(tk.If), N(OrExpr), T(tk.Else), N(Expr)),
		epsilon,
	}},
	{OrExpr, [][]Symbol{
		alt(N(AndExpr), N(OrTail)),
	}},
	{OrTail, [][]Symbol{
		alt(T(tk.Or), N(AndExpr), N(OrTail)),
		epsilon,
	}},
	{AndExpr, [][]Symbol{
		alt(N(NotExpr), N(AndTail)),
	}},
	{AndTail, [][]Symbol{
		alt(T(tk.And), N(NotExpr), N(AndTail)),
		epsilon,
	}},
	{NotExpr, [][]Symbol{
		alt(T(tk.Not), N(NotExpr)),
		alt(N(CompExpr)),
	}},
	{CompExpr, [][]Symbol{
		alt(N(IntExpr), N(CompTail)),
	}},
	{CompTail, [][]Symbol{
		alt(N(CompOp), N(IntExpr)),
		epsilon,
	}},
	{CompOp, [][]Symbol{
		alt(T(tk.Equal)),
		alt(T(tk.NotEqual)),
		alt(T(tk.Less)),
		alt(T(tk.LessEqual)),
		alt(T(tk.Greater)),
		alt(T(tk.GreaterEqual)),
		alt(T(tk.Is), N(IsTail)),
	}},
	{IsTail, [][]Symbol{
		alt(T(tk.Not)),
		epsilon,
	}},
	{IntExpr, [][]Symbol{
		alt(N(Term), N(IntTail)),
	}},
	{IntTail, [][]Symbol{
		alt(T(tk.Plus), N(Term), N(IntTail)),
		alt(T(tk.Minus), N(Term), N(IntTail)),
		epsilon,
	}},
	{Term, [][]Symbol{
		alt(N(Factor), N(TermTail)),
	}},
	{TermTail, [][]Symbol{
		alt(T(tk.Star), N(Factor), N(TermTail)),
		alt(T(tk.Slash), N(Factor), N(TermTail)),
		alt(T(tk.Percent), N(Factor), N(TermTail)),
		epsilon,
	}},
	{Factor, [][]Symbol{
		alt(T(tk.Minus), N(Factor)),
		alt(N(Name)),
		alt(N(Literal)),
		alt(N(List)),
		alt(T(tk.LParen), N(Expr), T(tk.RParen)),
	}},
	{Name, [][]Symbol{
		alt(T(tk.Ident), N(NameTail)),
	}},
	{NameTail, [][]Symbol{
		alt(N(Trailer), N(NameTail)),
		epsilon,
	}},
	{Trailer, [][]Symbol{
		alt(T(tk.LParen), N(ExprList), T(tk.RParen)),
		alt(T(tk.LBracket), N(Expr), T(tk.RBracket)),
	}},
	{Literal, [][]Symbol{
		alt(T(tk.None)),
		alt(T(tk.True)),
		alt(T(tk.False)),
		alt(T(tk.Integer)),
		alt(T(tk.String)),
	}},
	{List, [][]Symbol{
		alt(T(tk.LBracket), N(ExprList), T(tk.RBracket)),
	}},
	{ExprList, [][]Symbol{
		alt(N(Expr), N(ExprListTail)),
		epsilon,
	}},
	{ExprListTail, [][]Symbol{
		alt(T(tk.Comma), N(Expr), N(ExprListTail)),
		epsilon,
	}},
}
