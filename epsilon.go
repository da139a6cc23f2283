package cfgnorm

// Nullable returns the non-terminals that can derive the empty string, in
// order of first appearance as a LHS.
//
// Computed by fixpoint: a non-terminal is nullable if it has an empty
// production or a production whose RHS is entirely nullable. The set only
// grows and is bounded by the non-terminal count, so iteration terminates.
func (g Grammar) Nullable() []Symbol {
	nullable := g.nullableSet()
	var out []Symbol
	for _, nt := range g.Nonterminals() {
		if nullable[nt] {
			out = append(out, nt)
		}
	}
	return out
}

func (g Grammar) nullableSet() map[Symbol]bool {
	nullable := map[Symbol]bool{}
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if nullable[p.LHS] {
				continue
			}
			all := true
			for _, s := range p.RHS {
				if !nullable[s] {
					all = false
					break
				}
			}
			if all {
				nullable[p.LHS] = true
				changed = true
			}
		}
	}
	return nullable
}

// EliminateEpsilon removes all empty productions, keeping at most one:
// Start -> %, present exactly when the original start symbol derives the
// empty string.
//
// Every production is compensated by adding each variant obtained by
// deleting some subset of its nullable symbols, so the generated language
// is unchanged apart from the relocated empty string.
func (g Grammar) EliminateEpsilon() Grammar {
	nullable := g.nullableSet()
	b := newBuilder(g.Start)

	for _, p := range g.Productions {
		if len(p.RHS) == 0 {
			continue
		}
		var positions []int
		for i, s := range p.RHS {
			if nullable[s] {
				positions = append(positions, i)
			}
		}
		// Enumerate kept-subsets of the nullable positions, the full RHS
		// first so compensation variants follow their original.
		for mask := (1 << len(positions)) - 1; mask >= 0; mask-- {
			kept := map[int]bool{}
			for bit, pos := range positions {
				if mask&(1<<bit) != 0 {
					kept[pos] = true
				}
			}
			var rhs []Symbol
			for i, s := range p.RHS {
				if !nullable[s] || kept[i] {
					rhs = append(rhs, s)
				}
			}
			if len(rhs) == 0 {
				continue
			}
			if len(rhs) == 1 && rhs[0] == p.LHS {
				// A -> A derives nothing new.
				continue
			}
			b.add(Production{LHS: p.LHS, RHS: rhs})
		}
	}

	if nullable[g.Start] {
		b.add(Production{LHS: g.Start})
	}
	return b.grammar()
}
