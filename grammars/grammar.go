package grammars

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/reusee/typy/tokens"
)

// Grammar is an immutable LL(1) grammar with precomputed FIRST and FOLLOW
// sets and a prediction table. It is safe for concurrent use.
type Grammar struct {
	start       NonTerminal
	productions [numNonTerminals][]Production
	first       [numNonTerminals]tokens.Set
	nullable    [numNonTerminals]bool
	follow      [numNonTerminals]tokens.Set
	// index of the predicted alternative plus one, zero when none
	table     [numNonTerminals][tokens.NumKinds]uint8
	conflicts []Conflict
	undefined []NonTerminal
}

type ConflictKind uint8

const (
	FirstFirst ConflictKind = iota + 1
	FirstFollow
)

func (c ConflictKind) String() string {
	switch c {
	case FirstFirst:
		return "FIRST/FIRST"
	case FirstFollow:
		return "FIRST/FOLLOW"
	}
	return fmt.Sprintf("ConflictKind(%d)", c)
}

type Conflict struct {
	Kind        ConflictKind
	NonTerminal NonTerminal
	Lookahead   tokens.Kind
	// the two alternatives predicted for Lookahead
	Alternatives [2]int
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in %s on %s between alternatives %d and %d",
		c.Kind, c.NonTerminal, c.Lookahead, c.Alternatives[0], c.Alternatives[1])
}

func New(start NonTerminal, rules []Rule) *Grammar {
	g := &Grammar{
		start: start,
	}
	for _, rule := range rules {
		for _, body := range rule.Alternatives {
			g.productions[rule.Head] = append(g.productions[rule.Head], Production{
				Head:  rule.Head,
				Index: len(g.productions[rule.Head]),
				Body:  body,
			})
		}
	}

	seen := make(map[NonTerminal]bool)
	for _, rule := range rules {
		for _, body := range rule.Alternatives {
			for _, sym := range body {
				if sym.IsTerminal() || seen[sym.NonTerminal] {
					continue
				}
				seen[sym.NonTerminal] = true
				if len(g.productions[sym.NonTerminal]) == 0 {
					g.undefined = append(g.undefined, sym.NonTerminal)
				}
			}
		}
	}

	g.computeFirst()
	g.computeFollow()
	g.buildTable()
	return g
}

func (g *Grammar) computeFirst() {
	for changed := true; changed; {
		changed = false
		for nt := range g.productions {
			for _, p := range g.productions[nt] {
				set, nullable := g.FirstOf(p.Body)
				if merged := g.first[nt].Union(set); merged != g.first[nt] {
					g.first[nt] = merged
					changed = true
				}
				if nullable && !g.nullable[nt] {
					g.nullable[nt] = true
					changed = true
				}
			}
		}
	}
}

func (g *Grammar) computeFollow() {
	g.follow[g.start] = tokens.SetOf(tokens.EOF)
	for changed := true; changed; {
		changed = false
		for nt := range g.productions {
			for _, p := range g.productions[nt] {
				for i, sym := range p.Body {
					if sym.IsTerminal() {
						continue
					}
					set, nullable := g.FirstOf(p.Body[i+1:])
					if nullable {
						set = set.Union(g.follow[nt])
					}
					if merged := g.follow[sym.NonTerminal].Union(set); merged != g.follow[sym.NonTerminal] {
						g.follow[sym.NonTerminal] = merged
						changed = true
					}
				}
			}
		}
	}
}

func (g *Grammar) buildTable() {
	for nt := range g.productions {
		for _, p := range g.productions[nt] {
			set, nullable := g.FirstOf(p.Body)
			for k := range set.All() {
				g.predict(NonTerminal(nt), k, p.Index, FirstFirst)
			}
			if nullable {
				for k := range g.follow[nt].All() {
					g.predict(NonTerminal(nt), k, p.Index, FirstFollow)
				}
			}
		}
	}
}

func (g *Grammar) predict(nt NonTerminal, k tokens.Kind, index int, kind ConflictKind) {
	if existing := g.table[nt][k]; existing != 0 {
		if int(existing)-1 != index {
			g.conflicts = append(g.conflicts, Conflict{
				Kind:         kind,
				NonTerminal:  nt,
				Lookahead:    k,
				Alternatives: [2]int{int(existing) - 1, index},
			})
		}
		return
	}
	g.table[nt][k] = uint8(index + 1)
}

func (g *Grammar) Start() NonTerminal {
	return g.start
}

func (g *Grammar) Productions(nt NonTerminal) []Production {
	return g.productions[nt]
}

func (g *Grammar) First(nt NonTerminal) tokens.Set {
	return g.first[nt]
}

// Nullable reports whether nt can derive the empty string.
func (g *Grammar) Nullable(nt NonTerminal) bool {
	return g.nullable[nt]
}

func (g *Grammar) Follow(nt NonTerminal) tokens.Set {
	return g.follow[nt]
}

// FirstOf returns the FIRST set of a symbol sequence and whether the whole
// sequence can derive the empty string.
func (g *Grammar) FirstOf(body []Symbol) (ret tokens.Set, nullable bool) {
	for _, sym := range body {
		if sym.IsTerminal() {
			return ret.Add(sym.Terminal), false
		}
		ret = ret.Union(g.first[sym.NonTerminal])
		if !g.nullable[sym.NonTerminal] {
			return ret, false
		}
	}
	return ret, true
}

// Expected is the set of lookaheads for which nt has a prediction.
func (g *Grammar) Expected(nt NonTerminal) tokens.Set {
	ret := g.first[nt]
	if g.nullable[nt] {
		ret = ret.Union(g.follow[nt])
	}
	return ret
}

// Choose predicts the production of nt for the lookahead.
func (g *Grammar) Choose(nt NonTerminal, lookahead tokens.Kind) (Production, bool) {
	if int(lookahead) >= tokens.NumKinds {
		return Production{}, false
	}
	i := g.table[nt][lookahead]
	if i == 0 {
		return Production{}, false
	}
	return g.productions[nt][i-1], true
}

func (g *Grammar) Conflicts() []Conflict {
	return g.conflicts
}

// Validate reports LL(1) conflicts and non-terminals used without productions.
func (g *Grammar) Validate() error {
	var errs []error
	for _, nt := range g.undefined {
		errs = append(errs, fmt.Errorf("non-terminal %s has no productions", nt))
	}
	for _, c := range g.conflicts {
		errs = append(errs, errors.New(c.String()))
	}
	return errors.Join(errs...)
}

// Format lists the productions with their FIRST and FOLLOW sets.
func (g *Grammar) Format() string {
	var sb strings.Builder
	for nt := range g.productions {
		if len(g.productions[nt]) == 0 {
			continue
		}
		for _, p := range g.productions[nt] {
			sb.WriteString(p.String())
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("  FIRST %s nullable=%v\n", g.first[nt], g.nullable[nt]))
		sb.WriteString(fmt.Sprintf("  FOLLOW %s\n", g.follow[nt]))
	}
	return sb.String()
}

// Default returns the shared grammar of the language.
var Default = sync.OnceValue(func() *Grammar {
	g := New(Program, Rules)
	if err := g.Validate(); err != nil {
		panic(err)
	}
	return g
})
