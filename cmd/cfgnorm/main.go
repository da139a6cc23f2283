package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"cfgnorm"
)

var cli struct {
	File    string `arg:"" optional:"" type:"existingfile" help:"Grammar file (defaults to stdin)."`
	Null    bool   `short:"n" help:"Eliminate null rules."`
	Unit    bool   `short:"u" help:"Eliminate unit rules."`
	Reach   bool   `short:"r" help:"Eliminate unreachable symbols."`
	Prod    bool   `short:"p" help:"Eliminate nonproductive symbols."`
	Useless bool   `short:"l" help:"Eliminate useless symbols."`
	CNF     bool   `short:"c" help:"Convert to Chomsky Normal Form."`
	Verbose bool   `short:"v" help:"Print derived symbol sets."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Normalize context-free grammars.

Rules are written one per ";;", eg. "S -> a S b | % ;;". With no
transformation flags the grammar is only parsed and printed back.`),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	g, err := parseInput()
	if err != nil {
		return err
	}

	fmt.Println("Original")
	fmt.Println(g)

	if cli.Verbose {
		fmt.Print("nullable: ")
		repr.Println(g.Nullable())
		fmt.Print("reachable: ")
		repr.Println(g.Reachable())
		fmt.Print("productive: ")
		repr.Println(g.Productive())
	}

	p := cfgnorm.NewPipeline()
	if cli.Null {
		p.Add(cfgnorm.StageEliminateEpsilon)
	}
	if cli.Unit {
		p.Add(cfgnorm.StageEliminateUnits)
	}
	if cli.Reach {
		p.Add(cfgnorm.StageKeepReachable)
	}
	if cli.Prod {
		p.Add(cfgnorm.StageKeepProductive)
	}
	if cli.Useless {
		p.Add(cfgnorm.StageRemoveUseless)
	}
	if cli.CNF {
		p.Add(cfgnorm.CNFStages()...)
	}
	p.Observe = func(name string, g cfgnorm.Grammar) {
		fmt.Println(title(name))
		fmt.Println(g)
	}
	p.Run(g)
	return nil
}

func parseInput() (cfgnorm.Grammar, error) {
	if cli.File == "" {
		return cfgnorm.Parse("<stdin>", os.Stdin)
	}
	f, err := os.Open(cli.File)
	if err != nil {
		return cfgnorm.Grammar{}, err
	}
	defer f.Close()
	return cfgnorm.Parse(cli.File, f)
}

func title(name string) string {
	out := []rune(name)
	up := true
	for i, r := range out {
		if up && r != ' ' {
			out[i] = r - 'a' + 'A'
		}
		up = r == ' '
	}
	return string(out)
}
