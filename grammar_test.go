package cfgnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) Grammar {
	t.Helper()
	g, err := ParseString("", source)
	require.NoError(t, err)
	return g
}

// language returns every terminal string of length at most max derivable
// from g's start symbol, by breadth-first expansion of sentential forms.
// Forms already holding more than max terminals cannot shrink, so they are
// pruned; a small length cap bounds epsilon-heavy detours.
func language(g Grammar, max int) map[string]bool {
	out := map[string]bool{}
	seen := map[string]bool{}
	queue := [][]Symbol{{g.Start}}
	for len(queue) > 0 {
		form := queue[0]
		queue = queue[1:]

		terminals := 0
		expand := -1
		for i, s := range form {
			if s.Terminal() {
				terminals++
			} else if expand < 0 {
				expand = i
			}
		}
		if terminals > max || len(form) > max+8 {
			continue
		}
		if expand < 0 {
			var sb strings.Builder
			for _, s := range form {
				sb.WriteString(string(s))
			}
			out[sb.String()] = true
			continue
		}
		for _, p := range g.alternatives(form[expand]) {
			next := make([]Symbol, 0, len(form)+len(p.RHS)-1)
			next = append(next, form[:expand]...)
			next = append(next, p.RHS...)
			next = append(next, form[expand+1:]...)
			keyParts := make([]string, len(next))
			for i, s := range next {
				keyParts[i] = string(s)
			}
			key := strings.Join(keyParts, "\x00")
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, next)
		}
	}
	return out
}

func assertSameLanguage(t *testing.T, expected, actual Grammar, max int) {
	t.Helper()
	require.Equal(t, language(expected, max), language(actual, max))
}

func assertCNF(t *testing.T, g Grammar) {
	t.Helper()
	for _, p := range g.Productions {
		switch len(p.RHS) {
		case 0:
			assert.Equal(t, g.Start, p.LHS, "epsilon rule not on the start symbol: %s", p)
		case 1:
			assert.True(t, p.RHS[0].Terminal(), "unit rule survived: %s", p)
		case 2:
			for _, s := range p.RHS {
				assert.True(t, s.Nonterminal(), "terminal in binary rule: %s", p)
				assert.NotEqual(t, g.Start, s, "start symbol on a RHS: %s", p)
			}
		default:
			t.Fatalf("overlong rule: %s", p)
		}
	}
}

func TestSymbolClassification(t *testing.T) {
	assert.True(t, Symbol("a").Terminal())
	assert.True(t, Symbol("3").Terminal())
	assert.True(t, Symbol("A").Nonterminal())
	assert.True(t, Symbol("S'").Nonterminal())
	assert.True(t, Symbol("a#").Nonterminal())
	assert.True(t, Symbol("S_0:1").Nonterminal())
}

func TestProductionString(t *testing.T) {
	assert.Equal(t, "S -> a S b", Production{LHS: "S", RHS: []Symbol{"a", "S", "b"}}.String())
	assert.Equal(t, "S -> %", Production{LHS: "S"}.String())
}

func TestDuplicateAlternativesCollapse(t *testing.T) {
	g := mustParse(t, "S -> a | a ;; S -> a ;;")
	require.Len(t, g.Productions, 1)
}

func TestNonterminalsAndTerminals(t *testing.T) {
	g := mustParse(t, "S -> A b ;; A -> a | c A ;;")
	assert.Equal(t, []Symbol{"S", "A"}, g.Nonterminals())
	assert.Equal(t, []Symbol{"a", "b", "c"}, g.Terminals())
}

func TestStringStartRuleFirst(t *testing.T) {
	g := mustParse(t, "Z -> A ;; A -> b | a A ;;")
	expected := "Z -> A ;;\nA -> a A | b ;;\n"
	assert.Equal(t, expected, g.String())
}

func TestStringEpsilonNotation(t *testing.T) {
	g := mustParse(t, "S -> a S a | % ;;")
	assert.Equal(t, "S -> % | a S a ;;\n", g.String())
}

func TestLanguageEnumeration(t *testing.T) {
	g := mustParse(t, "S -> a S b | % ;;")
	expected := map[string]bool{"": true, "ab": true, "aabb": true}
	assert.Equal(t, expected, language(g, 4))
}
