package cfgnorm

import (
	"sort"
	"strings"
)

// String renders the grammar in the rule notation it was parsed from: the
// start symbol's rule first, remaining rules sorted by LHS, alternatives
// sorted within each rule and "%" standing for the empty string.
func (g Grammar) String() string {
	var sb strings.Builder
	if alts := g.alternatives(g.Start); len(alts) > 0 {
		writeRule(&sb, g.Start, alts)
	}
	var rest []Symbol
	for _, lhs := range g.Nonterminals() {
		if lhs != g.Start {
			rest = append(rest, lhs)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, lhs := range rest {
		writeRule(&sb, lhs, g.alternatives(lhs))
	}
	return sb.String()
}

func writeRule(sb *strings.Builder, lhs Symbol, alts []Production) {
	sorted := make([]Production, len(alts))
	copy(sorted, alts)
	sort.Slice(sorted, func(i, j int) bool {
		return compareRHS(sorted[i].RHS, sorted[j].RHS) < 0
	})
	sb.WriteString(string(lhs))
	sb.WriteString(" -> ")
	for i, p := range sorted {
		if i > 0 {
			sb.WriteString(" | ")
		}
		if len(p.RHS) == 0 {
			sb.WriteString("%")
			continue
		}
		for j, s := range p.RHS {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(string(s))
		}
	}
	sb.WriteString(" ;;\n")
}
