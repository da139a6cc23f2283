package cfgnorm

// EliminateUnits removes all productions of the form A -> B where B is a
// single non-terminal.
//
// For each non-terminal A the unit closure — every non-terminal reachable
// from A through chained unit productions, A included — is computed by a
// breadth-first walk with a visited set, so unit cycles terminate. A's
// productions are then replaced by the non-unit productions of everything
// in its closure.
func (g Grammar) EliminateUnits() Grammar {
	b := newBuilder(g.Start)
	for _, a := range g.Nonterminals() {
		for _, c := range g.unitClosure(a) {
			for _, p := range g.alternatives(c) {
				if p.unit() {
					continue
				}
				b.add(Production{LHS: a, RHS: p.RHS})
			}
		}
	}
	return b.grammar()
}

func (g Grammar) unitClosure(a Symbol) []Symbol {
	closure := []Symbol{a}
	visited := map[Symbol]bool{a: true}
	for i := 0; i < len(closure); i++ {
		for _, p := range g.alternatives(closure[i]) {
			if !p.unit() || visited[p.RHS[0]] {
				continue
			}
			visited[p.RHS[0]] = true
			closure = append(closure, p.RHS[0])
		}
	}
	return closure
}
