package cfgnorm

// IsolateStart guarantees the start symbol occurs on no right-hand side.
//
// If the start symbol is referenced by any RHS, a fresh start symbol is
// introduced with a single unit production to the old one; otherwise the
// grammar passes through unchanged. Running this first lets epsilon
// elimination keep its one permitted empty production on a symbol nothing
// else can reintroduce.
func (g Grammar) IsolateStart(names *Names) Grammar {
	referenced := false
	for _, p := range g.Productions {
		for _, s := range p.RHS {
			if s == g.Start {
				referenced = true
			}
		}
	}
	if !referenced {
		return g
	}

	start := names.Fresh(g.Start)
	b := newBuilder(start)
	b.add(Production{LHS: start, RHS: []Symbol{g.Start}})
	for _, p := range g.Productions {
		b.add(p)
	}
	return b.grammar()
}
