package tokens

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a set of token kinds.
type Set uint64

var _ = [64 - NumKinds]struct{}{} // Set must hold every Kind

func SetOf(kinds ...Kind) (s Set) {
	for _, k := range kinds {
		s = s.Add(k)
	}
	return
}

func (s Set) Has(k Kind) bool {
	return s&(1<<k) != 0
}

func (s Set) Add(k Kind) Set {
	return s | 1<<k
}

func (s Set) Union(o Set) Set {
	return s | o
}

func (s Set) Intersect(o Set) Set {
	return s & o
}

func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

func (s Set) Empty() bool {
	return s == 0
}

func (s Set) All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := Kind(0); k < numKinds; k++ {
			if s.Has(k) && !yield(k) {
				return
			}
		}
	}
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for k := range s.All() {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		sb.WriteString(k.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Describe renders the set for diagnostics, e.g. "'(' or ID".
func (s Set) Describe() string {
	var parts []string
	for k := range s.All() {
		parts = append(parts, k.Quoted())
	}
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
