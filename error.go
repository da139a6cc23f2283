package cfgnorm

import "fmt"

// InvalidGrammarError is returned when a grammar violates the structural
// preconditions of the normalizer.
//
// It carries the offending production so callers can report exactly which
// rule is at fault.
type InvalidGrammarError struct {
	Production Production
	Message    string
}

func (e *InvalidGrammarError) Error() string {
	return fmt.Sprintf("invalid grammar: %s: %s", e.Production, e.Message)
}

// Validate checks the grammar invariants: every LHS is a non-terminal, the
// start symbol has at least one production, and every non-terminal used in
// a RHS is defined as some production's LHS.
//
// The transformations assume a valid grammar; Validate exists for the
// parsing boundary and for callers constructing grammars by hand.
func Validate(g Grammar) error {
	defined := map[Symbol]bool{}
	for _, p := range g.Productions {
		if p.LHS.Terminal() {
			return &InvalidGrammarError{Production: p, Message: "left-hand side must be a non-terminal"}
		}
		defined[p.LHS] = true
	}
	if !defined[g.Start] {
		return &InvalidGrammarError{
			Production: Production{LHS: g.Start},
			Message:    "start symbol has no productions",
		}
	}
	for _, p := range g.Productions {
		for _, s := range p.RHS {
			if s.Nonterminal() && !defined[s] {
				return &InvalidGrammarError{
					Production: p,
					Message:    fmt.Sprintf("undefined non-terminal %q", string(s)),
				}
			}
		}
	}
	return nil
}
