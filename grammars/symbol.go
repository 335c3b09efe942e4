package grammars

import (
	"fmt"
	"strings"

	"github.com/reusee/typy/tokens"
)

type NonTerminal uint8

const (
	NoNonTerminal NonTerminal = iota

	Program
	DefList
	Def
	TypedVar
	Type
	TypedVarList
	TypedVarListTail
	Return
	Block
	StatementList
	Statement
	ElifList
	Elif
	Else
	SimpleStatement
	SSTail
	ReturnExpr
	Expr
	CondTail
	OrExpr
	OrTail
	AndExpr
	AndTail
	NotExpr
	CompExpr
	CompTail
	CompOp
	IsTail
	IntExpr
	IntTail
	Term
	TermTail
	Factor
	Name
	NameTail
	Trailer
	Literal
	List
	ExprList
	ExprListTail

	numNonTerminals
)

const NumNonTerminals = int(numNonTerminals)

var nonTerminalNames = [...]string{
	NoNonTerminal:    "<none>",
	Program:          "Program",
	DefList:          "DefList",
	Def:              "Def",
	TypedVar:         "TypedVar",
	Type:             "Type",
	TypedVarList:     "TypedVarList",
	TypedVarListTail: "TypedVarListTail",
	Return:           "Return",
	Block:            "Block",
	StatementList:    "StatementList",
	Statement:        "Statement",
	ElifList:         "ElifList",
	Elif:             "Elif",
	Else:             "Else",
	SimpleStatement:  "SimpleStatement",
	SSTail:           "SSTail",
	ReturnExpr:       "ReturnExpr",
	Expr:             "Expr",
	CondTail:         "CondTail",
	OrExpr:           "OrExpr",
	OrTail:           "OrTail",
	AndExpr:          "AndExpr",
	AndTail:          "AndTail",
	NotExpr:          "NotExpr",
	CompExpr:         "CompExpr",
	CompTail:         "CompTail",
	CompOp:           "CompOp",
	IsTail:           "IsTail",
	IntExpr:          "IntExpr",
	IntTail:          "IntTail",
	Term:             "Term",
	TermTail:         "TermTail",
	Factor:           "Factor",
	Name:             "Name",
	NameTail:         "NameTail",
	Trailer:          "Trailer",
	Literal:          "Literal",
	List:             "List",
	ExprList:         "ExprList",
	ExprListTail:     "ExprListTail",
}

func (n NonTerminal) String() string {
	if n < numNonTerminals {
		return nonTerminalNames[n]
	}
	return fmt.Sprintf("NonTerminal(%d)", n)
}

// Symbol is either a terminal token kind or a non-terminal.
type Symbol struct {
	Terminal    tokens.Kind
	NonTerminal NonTerminal
}

func T(kind tokens.Kind) Symbol {
	return Symbol{Terminal: kind}
}

func N(nt NonTerminal) Symbol {
	return Symbol{NonTerminal: nt}
}

func (s Symbol) IsTerminal() bool {
	return s.NonTerminal == NoNonTerminal
}

func (s Symbol) String() string {
	if s.IsTerminal() {
		return s.Terminal.String()
	}
	return s.NonTerminal.String()
}

type Production struct {
	Head NonTerminal
	// position among the alternatives of Head
	Index int
	Body  []Symbol
}

func (p Production) Empty() bool {
	return len(p.Body) == 0
}

func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(p.Head.String())
	sb.WriteString(" →")
	if p.Empty() {
		sb.WriteString(" ε")
	}
	for _, sym := range p.Body {
		sb.WriteString(" ")
		sb.WriteString(sym.String())
	}
	return sb.String()
}

var descriptions = map[NonTerminal]string{
	Program:          "program",
	DefList:          "definitions",
	Def:              "function definition",
	TypedVar:         "parameter",
	Type:             "type",
	TypedVarList:     "parameter list",
	TypedVarListTail: "parameter list",
	Return:           "return type",
	Block:            "block",
	StatementList:    "statements",
	Statement:        "statement",
	ElifList:         "elif clause",
	Elif:             "elif clause",
	Else:             "else clause",
	SimpleStatement:  "statement",
	SSTail:           "statement",
	ReturnExpr:       "return statement",
	CompOp:           "comparison",
	IsTail:           "comparison",
	Name:             "name",
	NameTail:         "call or index",
	Trailer:          "call or index",
	Literal:          "literal",
	List:             "list",
	ExprList:         "expression list",
	ExprListTail:     "expression list",
}

// Description names the construct for diagnostics.
func (n NonTerminal) Description() string {
	if desc, ok := descriptions[n]; ok {
		return desc
	}
	return "expression"
}
