package nodes

import (
	"github.com/reusee/typy/tokens"
)

type Node interface {
	Pos() tokens.Pos
	node()
}

type Stmt interface {
	Node
	stmt()
}

type Expr interface {
	Node
	expr()
}

type Type interface {
	Node
	typ()
}

type Program struct {
	Defs []*Def
	Body []Stmt
	At   tokens.Pos
}

type Def struct {
	Name   string
	Params []*Param
	// nil when the return type is omitted
	Result Type
	Body   *Block
	At     tokens.Pos
}

type Param struct {
	Name string
	Type Type
	At   tokens.Pos
}

type Block struct {
	Stmts []Stmt
	At    tokens.Pos
}

// types

// NamedType is int, str or None.
type NamedType struct {
	Name string
	At   tokens.Pos
}

type ListType struct {
	Elem Type
	At   tokens.Pos
}

type BadType struct {
	At tokens.Pos
}

// statements

type AssignStmt struct {
	Target Expr
	Value  Expr
	At     tokens.Pos
}

type ExprStmt struct {
	X  Expr
	At tokens.Pos
}

type PassStmt struct {
	At tokens.Pos
}

type ReturnStmt struct {
	// nil for a bare return
	Value Expr
	At    tokens.Pos
}

type IfStmt struct {
	Cond  Expr
	Body  *Block
	Elifs []*ElifClause
	// nil without an else clause
	Else *Block
	At   tokens.Pos
}

type ElifClause struct {
	Cond Expr
	Body *Block
	At   tokens.Pos
}

type WhileStmt struct {
	Cond Expr
	Body *Block
	At   tokens.Pos
}

type ForStmt struct {
	Var  string
	Iter Expr
	Body *Block
	At   tokens.Pos
}

type BadStmt struct {
	At tokens.Pos
}

// expressions

// CondExpr is `Then if Cond else Else`.
type CondExpr struct {
	Then Expr
	Cond Expr
	Else Expr
	At   tokens.Pos
}

type BinaryExpr struct {
	Op tokens.Kind
	// true for `is not`
	Negated bool
	X       Expr
	Y       Expr
	At      tokens.Pos
}

// UnaryExpr is `not X` or `-X`.
type UnaryExpr struct {
	Op tokens.Kind
	X  Expr
	At tokens.Pos
}

type Ident struct {
	Name string
	At   tokens.Pos
}

type CallExpr struct {
	Fn   Expr
	Args []Expr
	At   tokens.Pos
}

type IndexExpr struct {
	X     Expr
	Index Expr
	At    tokens.Pos
}

type IntLit struct {
	Value int64
	At    tokens.Pos
}

type StringLit struct {
	Value string
	At    tokens.Pos
}

type BoolLit struct {
	Value bool
	At    tokens.Pos
}

type NoneLit struct {
	At tokens.Pos
}

type ListExpr struct {
	Elems []Expr
	At    tokens.Pos
}

type ParenExpr struct {
	X  Expr
	At tokens.Pos
}

type BadExpr struct {
	At tokens.Pos
}

func (n *Program) Pos() tokens.Pos    { return n.At }
func (n *Def) Pos() tokens.Pos        { return n.At }
func (n *Param) Pos() tokens.Pos      { return n.At }
func (n *Block) Pos() tokens.Pos      { return n.At }
func (n *NamedType) Pos() tokens.Pos  { return n.At }
func (n *ListType) Pos() tokens.Pos   { return n.At }
func (n *BadType) Pos() tokens.Pos    { return n.At }
func (n *AssignStmt) Pos() tokens.Pos { return n.At }
func (n *ExprStmt) Pos() tokens.Pos   { return n.At }
func (n *PassStmt) Pos() tokens.Pos   { return n.At }
func (n *ReturnStmt) Pos() tokens.Pos { return n.At }
func (n *IfStmt) Pos() tokens.Pos     { return n.At }
func (n *ElifClause) Pos() tokens.Pos { return n.At }
func (n *WhileStmt) Pos() tokens.Pos  { return n.At }
func (n *ForStmt) Pos() tokens.Pos    { return n.At }
func (n *BadStmt) Pos() tokens.Pos    { return n.At }
func (n *CondExpr) Pos() tokens.Pos   { return n.At }
func (n *BinaryExpr) Pos() tokens.Pos { return n.At }
func (n *UnaryExpr) Pos() tokens.Pos  { return n.At }
func (n *Ident) Pos() tokens.Pos      { return n.At }
func (n *CallExpr) Pos() tokens.Pos   { return n.At }
func (n *IndexExpr) Pos() tokens.Pos  { return n.At }
func (n *IntLit) Pos() tokens.Pos     { return n.At }
func (n *StringLit) Pos() tokens.Pos  { return n.At }
func (n *BoolLit) Pos() tokens.Pos    { return n.At }
func (n *NoneLit) Pos() tokens.Pos    { return n.At }
func (n *ListExpr) Pos() tokens.Pos   { return n.At }
func (n *ParenExpr) Pos() tokens.Pos  { return n.At }
func (n *BadExpr) Pos() tokens.Pos    { return n.At }

func (*Program) node()    {}
func (*Def) node()        {}
func (*Param) node()      {}
func (*Block) node()      {}
func (*NamedType) node()  {}
func (*ListType) node()   {}
func (*BadType) node()    {}
func (*AssignStmt) node() {}
func (*ExprStmt) node()   {}
func (*PassStmt) node()   {}
func (*ReturnStmt) node() {}
func (*IfStmt) node()     {}
func (*ElifClause) node() {}
func (*WhileStmt) node()  {}
func (*ForStmt) node()    {}
func (*BadStmt) node()    {}
func (*CondExpr) node()   {}
func (*BinaryExpr) node() {}
func (*UnaryExpr) node()  {}
func (*Ident) node()      {}
func (*CallExpr) node()   {}
func (*IndexExpr) node()  {}
func (*IntLit) node()     {}
func (*StringLit) node()  {}
func (*BoolLit) node()    {}
func (*NoneLit) node()    {}
func (*ListExpr) node()   {}
func (*ParenExpr) node()  {}
func (*BadExpr) node()    {}

func (*NamedType) typ() {}
func (*ListType) typ()  {}
func (*BadType) typ()   {}

func (*AssignStmt) stmt() {}
func (*ExprStmt) stmt()   {}
func (*PassStmt) stmt()   {}
func (*ReturnStmt) stmt() {}
func (*IfStmt) stmt()     {}
func (*WhileStmt) stmt()  {}
func (*ForStmt) stmt()    {}
func (*BadStmt) stmt()    {}

func (*CondExpr) expr()   {}
func (*BinaryExpr) expr() {}
func (*UnaryExpr) expr()  {}
func (*Ident) expr()      {}
func (*CallExpr) expr()   {}
func (*IndexExpr) expr()  {}
func (*IntLit) expr()     {}
func (*StringLit) expr()  {}
func (*BoolLit) expr()    {}
func (*NoneLit) expr()    {}
func (*ListExpr) expr()   {}
func (*ParenExpr) expr()  {}
func (*BadExpr) expr()    {}
