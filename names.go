package cfgnorm

// Names allocates fresh non-terminal names for one normalization run.
//
// It is seeded with every symbol of the input grammar and records each
// name it hands out, so names stay unique across all stages of a pipeline
// run. Allocation is deterministic: the same grammar and the same sequence
// of requests yield the same names.
type Names struct {
	used map[Symbol]bool
}

// NewNames returns an allocator seeded with every symbol of g.
func NewNames(g Grammar) *Names {
	n := &Names{used: map[Symbol]bool{}}
	for s := range g.symbols() {
		n.used[s] = true
	}
	return n
}

// Claim reserves want, priming it with "'" until it collides with nothing
// already in use, and returns the reserved name.
func (n *Names) Claim(want Symbol) Symbol {
	if want == "" {
		panic("cfgnorm: empty fresh symbol")
	}
	for n.used[want] {
		want += "'"
	}
	n.used[want] = true
	return want
}

// Fresh reserves a new name derived from base, conventionally base'.
func (n *Names) Fresh(base Symbol) Symbol {
	return n.Claim(base + "'")
}
