package tokens

import "fmt"

type Pos struct {
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

type Token struct {
	Kind   Kind
	Lexeme string
	// int64 for Integer, string for String, nil otherwise
	Literal any
	Pos     Pos
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Integer:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
	case String:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	}
	return t.Kind.String()
}

// Describe renders the token for diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case Integer:
		return fmt.Sprintf("integer %s", t.Lexeme)
	case String:
		return fmt.Sprintf("string %s", t.Lexeme)
	}
	return t.Kind.Quoted()
}
