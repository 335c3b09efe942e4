package diags

import (
	"fmt"
	"slices"

	"github.com/reusee/typy/tokens"
)

type Kind uint8

const (
	Lexical Kind = iota + 1
	Syntax
	Indentation
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical error"
	case Syntax:
		return "syntax error"
	case Indentation:
		return "indentation error"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Lexical:
		return []byte("lexical"), nil
	case Syntax:
		return []byte("syntax"), nil
	case Indentation:
		return []byte("indentation"), nil
	}
	return nil, fmt.Errorf("bad diagnostic kind: %d", k)
}

type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     tokens.Pos
}

var _ error = Diagnostic{}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Kind, d.Message)
}

// Collector accumulates the diagnostics of one parse. The zero value is ready to use.
type Collector struct {
	list []Diagnostic
}

func (c *Collector) Add(kind Kind, pos tokens.Pos, format string, args ...any) {
	c.list = append(c.list, Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

func (c *Collector) Len() int {
	return len(c.list)
}

func (c *Collector) Count(kind Kind) (n int) {
	for _, d := range c.list {
		if d.Kind == kind {
			n++
		}
	}
	return
}

// All returns the diagnostics in source order. Diagnostics at the same
// position keep the order they were added in.
func (c *Collector) All() []Diagnostic {
	ret := slices.Clone(c.list)
	slices.SortStableFunc(ret, func(a, b Diagnostic) int {
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line - b.Pos.Line
		}
		return a.Pos.Column - b.Pos.Column
	})
	return ret
}
