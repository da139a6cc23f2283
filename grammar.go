package cfgnorm

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol is a grammar symbol. Parsed symbols are single characters;
// symbols introduced during normalization may carry a suffix (eg. "S'",
// "a#") and are always non-terminals.
type Symbol string

// Terminal reports whether s matches literal input rather than being
// subject to expansion. A terminal is a single lower-case letter or digit.
func (s Symbol) Terminal() bool {
	r, size := utf8.DecodeRuneInString(string(s))
	return len(s) == size && (unicode.IsLower(r) || unicode.IsDigit(r))
}

// Nonterminal reports whether s is subject to expansion.
func (s Symbol) Nonterminal() bool { return !s.Terminal() }

// Production is a single rewrite rule. An empty RHS denotes the epsilon
// production for its LHS.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

func (p Production) String() string {
	out := []string{string(p.LHS), "->"}
	if len(p.RHS) == 0 {
		out = append(out, "%")
	}
	for _, s := range p.RHS {
		out = append(out, string(s))
	}
	return strings.Join(out, " ")
}

// unit reports whether p rewrites to exactly one non-terminal.
func (p Production) unit() bool {
	return len(p.RHS) == 1 && p.RHS[0].Nonterminal()
}

func (p Production) key() string {
	parts := make([]string, 0, len(p.RHS)+1)
	parts = append(parts, string(p.LHS))
	for _, s := range p.RHS {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, "\x00")
}

// Grammar is a start symbol plus an ordered set of productions.
//
// Productions behave as a set: a (LHS, RHS) pair occurs at most once. The
// stored order is construction order, which transformations keep stable so
// output is reproducible run to run. Transformations never mutate their
// receiver; each returns a freshly built Grammar.
type Grammar struct {
	Start       Symbol
	Productions []Production
}

// builder accumulates productions with set semantics, preserving first
// insertion order.
type builder struct {
	start Symbol
	prods []Production
	seen  map[string]bool
}

func newBuilder(start Symbol) *builder {
	return &builder{start: start, seen: map[string]bool{}}
}

func (b *builder) add(p Production) {
	k := p.key()
	if b.seen[k] {
		return
	}
	b.seen[k] = true
	rhs := make([]Symbol, len(p.RHS))
	copy(rhs, p.RHS)
	b.prods = append(b.prods, Production{LHS: p.LHS, RHS: rhs})
}

func (b *builder) grammar() Grammar {
	return Grammar{Start: b.start, Productions: b.prods}
}

// Nonterminals returns the grammar's non-terminals in order of first
// appearance as a LHS.
func (g Grammar) Nonterminals() []Symbol {
	var out []Symbol
	seen := map[Symbol]bool{}
	for _, p := range g.Productions {
		if !seen[p.LHS] {
			seen[p.LHS] = true
			out = append(out, p.LHS)
		}
	}
	return out
}

// Terminals returns the sorted terminal alphabet.
func (g Grammar) Terminals() []Symbol {
	seen := map[Symbol]bool{}
	var out []Symbol
	for _, p := range g.Productions {
		for _, s := range p.RHS {
			if s.Terminal() && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// symbols returns every symbol occurring in the grammar.
func (g Grammar) symbols() map[Symbol]bool {
	out := map[Symbol]bool{g.Start: true}
	for _, p := range g.Productions {
		out[p.LHS] = true
		for _, s := range p.RHS {
			out[s] = true
		}
	}
	return out
}

// alternatives returns the productions for lhs, in stored order.
func (g Grammar) alternatives(lhs Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.LHS == lhs {
			out = append(out, p)
		}
	}
	return out
}

// withSymbols rebuilds the grammar keeping only productions whose LHS is
// in keep and whose RHS mentions nothing outside keep.
func (g Grammar) withSymbols(keep map[Symbol]bool) Grammar {
	b := newBuilder(g.Start)
outer:
	for _, p := range g.Productions {
		if !keep[p.LHS] {
			continue
		}
		for _, s := range p.RHS {
			if !keep[s] {
				continue outer
			}
		}
		b.add(p)
	}
	return b.grammar()
}

func compareRHS(a, b []Symbol) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}
