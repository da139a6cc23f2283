package cfgnorm

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Arrow", Pattern: `->`},
		{Name: "End", Pattern: `;;`},
		{Name: "Pipe", Pattern: `\|`},
		{Name: "Epsilon", Pattern: `%`},
		{Name: "Symbol", Pattern: `[A-Za-z0-9]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	ruleParser = participle.MustBuild[ruleSet](
		participle.Lexer(ruleLexer),
		participle.Elide("Whitespace"),
	)
)

// ruleSet is the AST for the textual rule notation.
type ruleSet struct {
	Rules []*rule `parser:"@@+"`
}

type rule struct {
	LHS  string         `parser:"@Symbol '->'"`
	Alts []*alternative `parser:"@@ ( '|' @@ )* ';;'"`
}

type alternative struct {
	Epsilon bool     `parser:"  @'%'"`
	Symbols []string `parser:"| @Symbol+"`
}

// ParseString parses grammar text in the rule notation. The first rule's
// LHS becomes the start symbol. The resulting grammar is validated.
func ParseString(name, source string) (Grammar, error) {
	ast, err := ruleParser.ParseString(name, source)
	if err != nil {
		return Grammar{}, err
	}
	return fromAST(ast)
}

// Parse parses grammar text from r. See ParseString.
func Parse(name string, r io.Reader) (Grammar, error) {
	ast, err := ruleParser.Parse(name, r)
	if err != nil {
		return Grammar{}, err
	}
	return fromAST(ast)
}

func fromAST(ast *ruleSet) (Grammar, error) {
	b := newBuilder(Symbol(ast.Rules[0].LHS))
	for _, r := range ast.Rules {
		lhs := Symbol(r.LHS)
		for _, alt := range r.Alts {
			var rhs []Symbol
			for _, s := range alt.Symbols {
				rhs = append(rhs, Symbol(s))
			}
			b.add(Production{LHS: lhs, RHS: rhs})
		}
	}
	g := b.grammar()
	if err := Validate(g); err != nil {
		return Grammar{}, err
	}
	return g, nil
}
