// Package cfgnorm transforms context-free grammars into Chomsky Normal
// Form: every production is either two non-terminals, a single terminal,
// or the start symbol's epsilon rule when the grammar derives the empty
// string.
//
// Grammars are written in a small rule notation, one rule per ";;":
//
//	S -> a S b | % ;;
//
// Upper-case letters are non-terminals, lower-case letters and digits are
// terminals, "%" is the empty string and "|" separates alternatives. The
// first rule's left-hand side is the start symbol.
//
// Normalize runs the full conversion:
//
//	g, err := cfgnorm.ParseString("", "S -> a S b | % ;;")
//	if err != nil { ... }
//	fmt.Print(cfgnorm.Normalize(g))
//
// The individual transformations are also exposed as Grammar methods and
// as composable Pipeline stages, so partial normalizations — say, only
// epsilon and unit elimination — can be assembled from the same parts.
package cfgnorm
