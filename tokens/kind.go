package tokens

import "fmt"

type Kind uint8

const (
	Illegal Kind = iota

	// structural
	EOF
	Newline
	Indent
	Dedent

	// identifiers and literals
	Ident
	Integer
	String

	// keywords
	Def
	If
	Elif
	Else
	While
	For
	In
	Return
	Pass
	And
	Or
	Not
	Is
	None
	True
	False
	Int
	Str

	// operators and punctuation
	Plus
	Minus
	Star
	Slash
	Percent
	Less
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
	Assign
	LParen
	RParen
	LBracket
	RBracket
	Comma
	Colon
	Arrow

	numKinds
)

// NumKinds is the number of token kinds, including Illegal.
const NumKinds = int(numKinds)

var kindNames = [...]string{
	Illegal: "ILLEGAL",

	EOF:     "EOF",
	Newline: "NEWLINE",
	Indent:  "INDENT",
	Dedent:  "DEDENT",

	Ident:   "ID",
	Integer: "INTEGER",
	String:  "STRING",

	Def:    "def",
	If:     "if",
	Elif:   "elif",
	Else:   "else",
	While:  "while",
	For:    "for",
	In:     "in",
	Return: "return",
	Pass:   "pass",
	And:    "and",
	Or:     "or",
	Not:    "not",
	Is:     "is",
	None:   "None",
	True:   "True",
	False:  "False",
	Int:    "int",
	Str:    "str",

	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Equal:        "==",
	NotEqual:     "!=",
	Assign:       "=",
	LParen:       "(",
	RParen:       ")",
	LBracket:     "[",
	RBracket:     "]",
	Comma:        ",",
	Colon:        ":",
	Arrow:        "->",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) IsKeyword() bool {
	return k >= Def && k <= Str
}

func (k Kind) IsOperator() bool {
	return k >= Plus && k <= Arrow
}

// Quoted renders the kind the way diagnostics mention it: lexemes quoted,
// structural and class kinds bare.
func (k Kind) Quoted() string {
	if k.IsKeyword() || k.IsOperator() {
		return "'" + k.String() + "'"
	}
	return k.String()
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := Def; k <= Str; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// Lookup maps an identifier to its keyword kind, or Ident.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}
