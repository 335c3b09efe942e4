package grammars

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// EBNF renders the productions in the notation of golang.org/x/exp/ebnf.
// Terminals are quoted token kinds. A rule with an empty alternative
// renders as an option.
func (g *Grammar) EBNF() string {
	var sb strings.Builder
	for nt := range g.productions {
		if len(g.productions[nt]) == 0 {
			continue
		}
		var alts []string
		optional := false
		for _, p := range g.productions[nt] {
			if p.Empty() {
				optional = true
				continue
			}
			syms := make([]string, 0, len(p.Body))
			for _, sym := range p.Body {
				if sym.IsTerminal() {
					syms = append(syms, strconv.Quote(sym.Terminal.String()))
				} else {
					syms = append(syms, sym.NonTerminal.String())
				}
			}
			alts = append(alts, strings.Join(syms, " "))
		}
		body := strings.Join(alts, " | ")
		if optional {
			body = "[ " + body + " ]"
		}
		fmt.Fprintf(&sb, "%s = %s .\n", NonTerminal(nt), body)
	}
	return sb.String()
}

// VerifyEBNF checks that every rule in the EBNF rendering is defined and
// reachable from the start symbol.
func (g *Grammar) VerifyEBNF() error {
	grammar, err := ebnf.Parse(g.start.String()+".ebnf", strings.NewReader(g.EBNF()))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, g.start.String())
}
