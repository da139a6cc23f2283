package cfgnorm

// IsolateTerminals removes terminals from every right-hand side of length
// two or more, substituting a non-terminal that derives exactly that
// terminal.
//
// One substitute is shared by all occurrences of the same terminal; its
// name is the terminal with a "#" suffix, as in a# -> a. Single-symbol
// productions A -> a are already valid terminal rules and pass through
// untouched.
func (g Grammar) IsolateTerminals(names *Names) Grammar {
	b := newBuilder(g.Start)
	subs := map[Symbol]Symbol{}
	var subOrder []Symbol

	for _, p := range g.Productions {
		if len(p.RHS) < 2 {
			b.add(p)
			continue
		}
		rhs := make([]Symbol, len(p.RHS))
		for i, s := range p.RHS {
			if !s.Terminal() {
				rhs[i] = s
				continue
			}
			sub, ok := subs[s]
			if !ok {
				sub = names.Claim(s + "#")
				subs[s] = sub
				subOrder = append(subOrder, s)
			}
			rhs[i] = sub
		}
		b.add(Production{LHS: p.LHS, RHS: rhs})
	}

	for _, t := range subOrder {
		b.add(Production{LHS: subs[t], RHS: []Symbol{t}})
	}
	return b.grammar()
}
