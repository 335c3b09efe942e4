package parsers

import (
	"github.com/reusee/typy/grammars"
	"github.com/reusee/typy/nodes"
	"github.com/reusee/typy/tokens"
)

func (p *Parser) program() *nodes.Program {
	prog := &nodes.Program{
		At: p.tok.Pos,
	}
	// parsing goes on after a failed prediction so later definitions are still checked
	p.choose(grammars.Program)
	prog.Defs = p.defList()
	prog.Body = p.statementList()
	p.expect(tokens.EOF, grammars.Program)
	return prog
}

func (p *Parser) defList() (defs []*nodes.Def) {
	for {
		p.resync()
		before := p.consumed
		prod, ok := p.choose(grammars.DefList)
		if !ok {
			if p.tok.Kind == tokens.EOF {
				return
			}
			p.progress(before)
			continue
		}
		if prod.Empty() {
			return
		}
		defs = append(defs, p.def())
	}
}

func (p *Parser) def() *nodes.Def {
	at := p.tok.Pos
	def := &nodes.Def{
		At:   at,
		Body: &nodes.Block{At: at},
	}
	if _, ok := p.choose(grammars.Def); !ok {
		return def
	}
	p.next()

	name, ok := p.expect(tokens.Ident, grammars.Def)
	if !ok {
		return def
	}
	def.Name = name.Lexeme
	if _, ok := p.expect(tokens.LParen, grammars.Def); !ok {
		return def
	}
	def.Params = p.typedVarList()
	if _, ok := p.expect(tokens.RParen, grammars.Def); !ok {
		return def
	}
	def.Result = p.returnType()
	if _, ok := p.expect(tokens.Colon, grammars.Def); !ok {
		return def
	}
	def.Body = p.block()
	return def
}

func (p *Parser) typedVarList() []*nodes.Param {
	prod, ok := p.choose(grammars.TypedVarList)
	if !ok || prod.Empty() {
		return nil
	}
	params := []*nodes.Param{p.typedVar()}
	for {
		prod, ok := p.choose(grammars.TypedVarListTail)
		if !ok || prod.Empty() {
			return params
		}
		p.next()
		params = append(params, p.typedVar())
	}
}

func (p *Parser) typedVar() *nodes.Param {
	at := p.tok.Pos
	param := &nodes.Param{
		Type: &nodes.BadType{At: at},
		At:   at,
	}
	if _, ok := p.choose(grammars.TypedVar); !ok {
		return param
	}
	param.Name = p.tok.Lexeme
	p.next()
	if _, ok := p.expect(tokens.Colon, grammars.TypedVar); !ok {
		return param
	}
	param.Type = p.typ()
	return param
}

func (p *Parser) typ() nodes.Type {
	at := p.tok.Pos
	prod, ok := p.choose(grammars.Type)
	if !ok {
		return &nodes.BadType{At: at}
	}
	if prod.Body[0] == grammars.T(tokens.LBracket) {
		p.next()
		elem := p.typ()
		p.expect(tokens.RBracket, grammars.Type)
		return &nodes.ListType{
			Elem: elem,
			At:   at,
		}
	}
	name := p.tok.Lexeme
	p.next()
	return &nodes.NamedType{
		Name: name,
		At:   at,
	}
}

func (p *Parser) returnType() nodes.Type {
	prod, ok := p.choose(grammars.Return)
	if !ok || prod.Empty() {
		return nil
	}
	p.next()
	return p.typ()
}

func (p *Parser) block() *nodes.Block {
	block := &nodes.Block{
		At: p.tok.Pos,
	}
	if _, ok := p.choose(grammars.Block); !ok {
		return block
	}
	if _, ok := p.expect(tokens.Newline, grammars.Block); !ok {
		return block
	}
	if _, ok := p.expect(tokens.Indent, grammars.Block); !ok {
		return block
	}
	p.resync()
	block.Stmts = append(block.Stmts, p.statement())
	block.Stmts = append(block.Stmts, p.statementList()...)
	p.expect(tokens.Dedent, grammars.Block)
	return block
}

func (p *Parser) statementList() (stmts []nodes.Stmt) {
	for {
		p.resync()
		before := p.consumed
		prod, ok := p.choose(grammars.StatementList)
		if !ok {
			if p.tok.Kind == tokens.EOF {
				return
			}
			p.progress(before)
			continue
		}
		if prod.Empty() {
			return
		}
		stmts = append(stmts, p.statement())
	}
}

func (p *Parser) statement() nodes.Stmt {
	at := p.tok.Pos
	prod, ok := p.choose(grammars.Statement)
	if !ok {
		return &nodes.BadStmt{At: at}
	}

	switch prod.Body[0] {

	case grammars.T(tokens.If):
		p.next()
		stmt := &nodes.IfStmt{
			Cond: p.expr(),
			At:   at,
		}
		if _, ok := p.expect(tokens.Colon, grammars.Statement); !ok {
			return &nodes.BadStmt{At: at}
		}
		stmt.Body = p.block()
		stmt.Elifs = p.elifList()
		stmt.Else = p.elseClause()
		return stmt

	case grammars.T(tokens.While):
		p.next()
		stmt := &nodes.WhileStmt{
			Cond: p.expr(),
			At:   at,
		}
		if _, ok := p.expect(tokens.Colon, grammars.Statement); !ok {
			return &nodes.BadStmt{At: at}
		}
		stmt.Body = p.block()
		return stmt

	case grammars.T(tokens.For):
		p.next()
		name, ok := p.expect(tokens.Ident, grammars.Statement)
		if !ok {
			return &nodes.BadStmt{At: at}
		}
		if _, ok := p.expect(tokens.In, grammars.Statement); !ok {
			return &nodes.BadStmt{At: at}
		}
		stmt := &nodes.ForStmt{
			Var:  name.Lexeme,
			Iter: p.expr(),
			At:   at,
		}
		if _, ok := p.expect(tokens.Colon, grammars.Statement); !ok {
			return &nodes.BadStmt{At: at}
		}
		stmt.Body = p.block()
		return stmt

	default:
		stmt := p.simpleStatement()
		p.expect(tokens.Newline, grammars.Statement)
		return stmt
	}
}

func (p *Parser) elifList() (elifs []*nodes.ElifClause) {
	for {
		prod, ok := p.choose(grammars.ElifList)
		if !ok || prod.Empty() {
			return
		}
		elifs = append(elifs, p.elif())
	}
}

func (p *Parser) elif() *nodes.ElifClause {
	at := p.tok.Pos
	clause := &nodes.ElifClause{
		Body: &nodes.Block{At: at},
		At:   at,
	}
	if _, ok := p.choose(grammars.Elif); !ok {
		return clause
	}
	p.next()
	clause.Cond = p.expr()
	if _, ok := p.expect(tokens.Colon, grammars.Elif); !ok {
		return clause
	}
	clause.Body = p.block()
	return clause
}

func (p *Parser) elseClause() *nodes.Block {
	at := p.tok.Pos
	prod, ok := p.choose(grammars.Else)
	if !ok || prod.Empty() {
		return nil
	}
	p.next()
	if _, ok := p.expect(tokens.Colon, grammars.Else); !ok {
		return &nodes.Block{At: at}
	}
	return p.block()
}

func (p *Parser) simpleStatement() nodes.Stmt {
	at := p.tok.Pos
	prod, ok := p.choose(grammars.SimpleStatement)
	if !ok {
		return &nodes.BadStmt{At: at}
	}

	switch prod.Body[0] {

	case grammars.T(tokens.Pass):
		p.next()
		return &nodes.PassStmt{At: at}

	case grammars.T(tokens.Return):
		p.next()
		stmt := &nodes.ReturnStmt{At: at}
		if prod, ok := p.choose(grammars.ReturnExpr); ok && !prod.Empty() {
			stmt.Value = p.expr()
		}
		return stmt

	default:
		x := p.expr()
		if prod, ok := p.choose(grammars.SSTail); !ok || prod.Empty() {
			return &nodes.ExprStmt{
				X:  x,
				At: at,
			}
		}
		p.next()
		return &nodes.AssignStmt{
			Target: x,
			Value:  p.expr(),
			At:     at,
		}
	}
}
