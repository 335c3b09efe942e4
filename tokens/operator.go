package tokens

import "strings"

type OperatorRule struct {
	Lexeme string
	Kind   Kind
	// higher wins when several rules match at the same position
	Priority int
}

// OperatorRules lists every operator and punctuation lexeme. Priority is
// the lexeme length, so the longest match wins regardless of table order.
var OperatorRules = func() []OperatorRule {
	var rules []OperatorRule
	for k := Plus; k <= Arrow; k++ {
		lexeme := kindNames[k]
		rules = append(rules, OperatorRule{
			Lexeme:   lexeme,
			Kind:     k,
			Priority: len(lexeme),
		})
	}
	return rules
}()

// MatchOperator returns the highest priority rule that is a prefix of src.
func MatchOperator(src string) (rule OperatorRule, ok bool) {
	for _, r := range OperatorRules {
		if !strings.HasPrefix(src, r.Lexeme) {
			continue
		}
		if !ok || r.Priority > rule.Priority {
			rule = r
			ok = true
		}
	}
	return
}
