package cfgnorm

// Reachable returns every symbol reachable from the start symbol, the
// start symbol included, in order of first appearance.
func (g Grammar) Reachable() []Symbol {
	reachable := map[Symbol]bool{g.Start: true}
	order := []Symbol{g.Start}
	for i := 0; i < len(order); i++ {
		for _, p := range g.alternatives(order[i]) {
			for _, s := range p.RHS {
				if !reachable[s] {
					reachable[s] = true
					order = append(order, s)
				}
			}
		}
	}
	return order
}

// Productive returns every symbol that derives some terminal string:
// terminals themselves plus, by fixpoint, each non-terminal with a
// production whose RHS is entirely productive.
func (g Grammar) Productive() []Symbol {
	productive := map[Symbol]bool{}
	var order []Symbol
	for _, t := range g.Terminals() {
		productive[t] = true
		order = append(order, t)
	}
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if productive[p.LHS] {
				continue
			}
			all := true
			for _, s := range p.RHS {
				if !productive[s] {
					all = false
					break
				}
			}
			if all {
				productive[p.LHS] = true
				order = append(order, p.LHS)
				changed = true
			}
		}
	}
	return order
}

// KeepReachable drops every production involving a symbol the start
// symbol cannot reach.
func (g Grammar) KeepReachable() Grammar {
	keep := map[Symbol]bool{}
	for _, s := range g.Reachable() {
		keep[s] = true
	}
	return g.withSymbols(keep)
}

// KeepProductive drops every production involving a symbol that derives
// no terminal string.
func (g Grammar) KeepProductive() Grammar {
	keep := map[Symbol]bool{}
	for _, s := range g.Productive() {
		keep[s] = true
	}
	return g.withSymbols(keep)
}

// RemoveUseless drops unproductive symbols and then unreachable ones.
// Pruning in that order is required: removing unproductive symbols can
// strand previously reachable ones, but not the other way around.
func (g Grammar) RemoveUseless() Grammar {
	return g.KeepProductive().KeepReachable()
}
