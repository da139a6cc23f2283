package cfgnorm

import "fmt"

// Binarize splits every right-hand side longer than two symbols into a
// chain of binary productions through fresh non-terminals:
//
//	A -> X1 X2 X3 X4
//
// becomes A -> X1 A_1:1, A_1:1 -> X2 A_1:2, A_1:2 -> X3 X4. Chain symbols
// are named by content — LHS, the production's index among that LHS's
// alternatives, and the chain position — so repeated runs produce the same
// names. Productions of length two or less pass through unchanged.
func (g Grammar) Binarize(names *Names) Grammar {
	b := newBuilder(g.Start)
	index := map[Symbol]int{}

	for _, p := range g.Productions {
		i := index[p.LHS]
		index[p.LHS]++
		if len(p.RHS) <= 2 {
			b.add(p)
			continue
		}
		lhs := p.LHS
		for j := 0; j < len(p.RHS)-2; j++ {
			next := names.Claim(Symbol(fmt.Sprintf("%s_%d:%d", p.LHS, i, j+1)))
			b.add(Production{LHS: lhs, RHS: []Symbol{p.RHS[j], next}})
			lhs = next
		}
		b.add(Production{LHS: lhs, RHS: p.RHS[len(p.RHS)-2:]})
	}
	return b.grammar()
}
