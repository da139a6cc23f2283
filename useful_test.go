package cfgnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReachable(t *testing.T) {
	g := mustParse(t, "S -> a A ;; A -> b ;; B -> c ;;")
	assert.Equal(t, []Symbol{"S", "a", "A", "b"}, g.Reachable())
}

func TestProductive(t *testing.T) {
	g := mustParse(t, "S -> A | b ;; A -> a A ;;")
	// A -> a A never bottoms out, so A stays unproductive.
	assert.Equal(t, []Symbol{"a", "b", "S"}, g.Productive())
}

func TestKeepReachableDropsOrphans(t *testing.T) {
	g := mustParse(t, "S -> a ;; A -> b ;;")
	out := g.KeepReachable()
	assert.Equal(t, "S -> a ;;\n", out.String())
}

func TestKeepProductiveDropsBottomless(t *testing.T) {
	g := mustParse(t, "S -> A | b ;; A -> a A ;;")
	out := g.KeepProductive()
	assert.Equal(t, "S -> b ;;\n", out.String())
}

func TestRemoveUselessOrder(t *testing.T) {
	// B is unproductive; dropping it strands A, which only reachability
	// pruning after productivity pruning will remove.
	g := mustParse(t, "S -> a | A B ;; A -> a ;; B -> b B ;;")
	out := g.RemoveUseless()
	assert.Equal(t, "S -> a ;;\n", out.String())
}

func TestRemoveUselessKeepsStartEpsilon(t *testing.T) {
	g := mustParse(t, "S -> a S | % ;;")
	out := g.RemoveUseless()
	assert.Equal(t, g.String(), out.String())
}
