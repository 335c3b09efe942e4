package parsers

import (
	"github.com/reusee/typy/grammars"
	"github.com/reusee/typy/nodes"
	"github.com/reusee/typy/tokens"
)

func (p *Parser) bad(at tokens.Pos) nodes.Expr {
	return &nodes.BadExpr{At: at}
}

func (p *Parser) expr() nodes.Expr {
	at := p.tok.Pos
	if _, ok := p.choose(grammars.Expr); !ok {
		return p.bad(at)
	}
	x := p.orExpr()
	prod, ok := p.choose(grammars.CondTail)
	if !ok || prod.Empty() {
		return x
	}
	p.next()
	cond := &nodes.CondExpr{
		Then: x,
		Cond: p.orExpr(),
		At:   at,
	}
	if _, ok := p.expect(tokens.Else, grammars.CondTail); !ok {
		cond.Else = p.bad(p.tok.Pos)
		return cond
	}
	cond.Else = p.expr()
	return cond
}

// binary parses a left-associative chain of operands joined by the
// operators predicted by tail.
func (p *Parser) binary(
	head grammars.NonTerminal,
	tail grammars.NonTerminal,
	operand func() nodes.Expr,
) nodes.Expr {
	at := p.tok.Pos
	if _, ok := p.choose(head); !ok {
		return p.bad(at)
	}
	x := operand()
	for {
		prod, ok := p.choose(tail)
		if !ok || prod.Empty() {
			return x
		}
		op := p.tok.Kind
		p.next()
		x = &nodes.BinaryExpr{
			Op: op,
			X:  x,
			Y:  operand(),
			At: at,
		}
	}
}

func (p *Parser) orExpr() nodes.Expr {
	return p.binary(grammars.OrExpr, grammars.OrTail, p.andExpr)
}

func (p *Parser) andExpr() nodes.Expr {
	return p.binary(grammars.AndExpr, grammars.AndTail, p.notExpr)
}

func (p *Parser) notExpr() nodes.Expr {
	at := p.tok.Pos
	prod, ok := p.choose(grammars.NotExpr)
	if !ok {
		return p.bad(at)
	}
	if prod.Body[0] == grammars.T(tokens.Not) {
		p.next()
		return &nodes.UnaryExpr{
			Op: tokens.Not,
			X:  p.notExpr(),
			At: at,
		}
	}
	return p.compExpr()
}

// comparisons do not chain
func (p *Parser) compExpr() nodes.Expr {
	at := p.tok.Pos
	if _, ok := p.choose(grammars.CompExpr); !ok {
		return p.bad(at)
	}
	x := p.intExpr()
	prod, ok := p.choose(grammars.CompTail)
	if !ok || prod.Empty() {
		return x
	}
	op, negated := p.compOp()
	return &nodes.BinaryExpr{
		Op:      op,
		Negated: negated,
		X:       x,
		Y:       p.intExpr(),
		At:      at,
	}
}

func (p *Parser) compOp() (op tokens.Kind, negated bool) {
	op = p.tok.Kind
	if _, ok := p.choose(grammars.CompOp); !ok {
		return
	}
	p.next()
	if op == tokens.Is {
		if prod, ok := p.choose(grammars.IsTail); ok && !prod.Empty() {
			p.next()
			negated = true
		}
	}
	return
}

func (p *Parser) intExpr() nodes.Expr {
	return p.binary(grammars.IntExpr, grammars.IntTail, p.term)
}

func (p *Parser) term() nodes.Expr {
	return p.binary(grammars.Term, grammars.TermTail, p.factor)
}

func (p *Parser) factor() nodes.Expr {
	at := p.tok.Pos
	prod, ok := p.choose(grammars.Factor)
	if !ok {
		return p.bad(at)
	}

	switch prod.Body[0] {

	case grammars.T(tokens.Minus):
		p.next()
		return &nodes.UnaryExpr{
			Op: tokens.Minus,
			X:  p.factor(),
			At: at,
		}

	case grammars.N(grammars.Name):
		return p.nameExpr()

	case grammars.N(grammars.Literal):
		return p.literal()

	case grammars.N(grammars.List):
		return p.list()

	case grammars.T(tokens.LParen):
		p.next()
		paren := &nodes.ParenExpr{
			X:  p.expr(),
			At: at,
		}
		p.expect(tokens.RParen, grammars.Factor)
		return paren

	}
	return p.bad(at)
}

func (p *Parser) nameExpr() nodes.Expr {
	at := p.tok.Pos
	if _, ok := p.choose(grammars.Name); !ok {
		return p.bad(at)
	}
	var x nodes.Expr = &nodes.Ident{
		Name: p.tok.Lexeme,
		At:   at,
	}
	p.next()
	for {
		prod, ok := p.choose(grammars.NameTail)
		if !ok || prod.Empty() {
			return x
		}
		x = p.trailer(x)
	}
}

func (p *Parser) trailer(x nodes.Expr) nodes.Expr {
	prod, ok := p.choose(grammars.Trailer)
	if !ok {
		return x
	}
	p.next()
	if prod.Body[0] == grammars.T(tokens.LParen) {
		call := &nodes.CallExpr{
			Fn:   x,
			Args: p.exprList(),
			At:   x.Pos(),
		}
		p.expect(tokens.RParen, grammars.Trailer)
		return call
	}
	index := &nodes.IndexExpr{
		X:     x,
		Index: p.expr(),
		At:    x.Pos(),
	}
	p.expect(tokens.RBracket, grammars.Trailer)
	return index
}

func (p *Parser) literal() nodes.Expr {
	tok := p.tok
	if _, ok := p.choose(grammars.Literal); !ok {
		return p.bad(tok.Pos)
	}
	p.next()
	switch tok.Kind {
	case tokens.None:
		return &nodes.NoneLit{At: tok.Pos}
	case tokens.True, tokens.False:
		return &nodes.BoolLit{
			Value: tok.Kind == tokens.True,
			At:    tok.Pos,
		}
	case tokens.Integer:
		value, _ := tok.Literal.(int64)
		return &nodes.IntLit{
			Value: value,
			At:    tok.Pos,
		}
	case tokens.String:
		value, _ := tok.Literal.(string)
		return &nodes.StringLit{
			Value: value,
			At:    tok.Pos,
		}
	}
	return p.bad(tok.Pos)
}

func (p *Parser) list() nodes.Expr {
	at := p.tok.Pos
	if _, ok := p.choose(grammars.List); !ok {
		return p.bad(at)
	}
	p.next()
	list := &nodes.ListExpr{
		Elems: p.exprList(),
		At:    at,
	}
	p.expect(tokens.RBracket, grammars.List)
	return list
}

func (p *Parser) exprList() []nodes.Expr {
	prod, ok := p.choose(grammars.ExprList)
	if !ok || prod.Empty() {
		return nil
	}
	exprs := []nodes.Expr{p.expr()}
	for {
		prod, ok := p.choose(grammars.ExprListTail)
		if !ok || prod.Empty() {
			return exprs
		}
		p.next()
		exprs = append(exprs, p.expr())
	}
}
