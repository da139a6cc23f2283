package cfgnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullableFixpoint(t *testing.T) {
	g := mustParse(t, "S -> A B ;; A -> a | % ;; B -> A | b ;;")
	// A directly, B through A, S through A B.
	assert.Equal(t, []Symbol{"S", "A", "B"}, g.Nullable())
}

func TestNullableNone(t *testing.T) {
	g := mustParse(t, "S -> a S | b ;;")
	assert.Empty(t, g.Nullable())
}

func TestEliminateEpsilonKeepsStartEpsilon(t *testing.T) {
	g := mustParse(t, "S -> a S a | % ;;")
	out := g.EliminateEpsilon()
	assert.Equal(t, "S -> % | a S a | a a ;;\n", out.String())
	assertSameLanguage(t, g, out, 6)
}

func TestEliminateEpsilonCompensatesOmissions(t *testing.T) {
	g := mustParse(t, "S -> A b A ;; A -> a | % ;;")
	out := g.EliminateEpsilon()
	assert.Equal(t, "S -> A b | A b A | b | b A ;;\nA -> a ;;\n", out.String())
	assertSameLanguage(t, g, out, 4)
}

func TestEliminateEpsilonIndirectlyNullableStart(t *testing.T) {
	// S never has a literal epsilon rule but still derives the empty
	// string, so the start epsilon must be introduced.
	g := mustParse(t, "S -> A ;; A -> a | % ;;")
	out := g.EliminateEpsilon()
	empties := 0
	for _, p := range out.Productions {
		if len(p.RHS) == 0 {
			empties++
			assert.Equal(t, out.Start, p.LHS)
		}
	}
	assert.Equal(t, 1, empties)
	assertSameLanguage(t, g, out, 3)
}

func TestEliminateEpsilonAllNullableRHSKeepsVariants(t *testing.T) {
	g := mustParse(t, "S -> A B ;; A -> a | % ;; B -> b | % ;;")
	out := g.EliminateEpsilon()
	assert.Equal(t, "S -> % | A | A B | B ;;\nA -> a ;;\nB -> b ;;\n", out.String())
	assertSameLanguage(t, g, out, 3)
}

func TestNoEpsilonPropagation(t *testing.T) {
	g := mustParse(t, "S -> A B C ;; A -> a | % ;; B -> A A | % ;; C -> c ;;")
	out := g.EliminateEpsilon()
	for _, p := range out.Productions {
		if len(p.RHS) == 0 {
			assert.Equal(t, out.Start, p.LHS, "epsilon survived on %s", p)
		}
	}
	assertSameLanguage(t, g, out, 4)
}
