package cfgnorm

// Stage is one named grammar-to-grammar transformation in a Pipeline. All
// stages share the pipeline's Names allocator so fresh symbols stay unique
// across the whole run.
type Stage struct {
	Name  string
	Apply func(Grammar, *Names) Grammar
}

// The individual transformations as pipeline stages.
var (
	StageIsolateStart     = Stage{"isolate start", func(g Grammar, n *Names) Grammar { return g.IsolateStart(n) }}
	StageEliminateEpsilon = Stage{"eliminate epsilon rules", func(g Grammar, n *Names) Grammar { return g.EliminateEpsilon() }}
	StageEliminateUnits   = Stage{"eliminate unit rules", func(g Grammar, n *Names) Grammar { return g.EliminateUnits() }}
	StageKeepProductive   = Stage{"keep productive symbols", func(g Grammar, n *Names) Grammar { return g.KeepProductive() }}
	StageKeepReachable    = Stage{"keep reachable symbols", func(g Grammar, n *Names) Grammar { return g.KeepReachable() }}
	StageRemoveUseless    = Stage{"remove useless symbols", func(g Grammar, n *Names) Grammar { return g.RemoveUseless() }}
	StageIsolateTerminals = Stage{"isolate terminals", func(g Grammar, n *Names) Grammar { return g.IsolateTerminals(n) }}
	StageBinarize         = Stage{"binarize", func(g Grammar, n *Names) Grammar { return g.Binarize(n) }}
)

// CNFStages returns the full normalization pipeline. The order matters:
// start isolation reserves a symbol for the lone permitted epsilon rule,
// epsilon elimination can create new unit rules, unit elimination can
// strand symbols, and both terminal isolation and binarization assume no
// epsilon or unit rules remain.
func CNFStages() []Stage {
	return []Stage{
		StageIsolateStart,
		StageEliminateEpsilon,
		StageEliminateUnits,
		StageRemoveUseless,
		StageIsolateTerminals,
		StageBinarize,
	}
}

// Pipeline applies a sequence of stages to a grammar. The zero value is an
// empty pipeline.
type Pipeline struct {
	stages []Stage

	// Observe, if set, is called with each stage's name and output.
	Observe func(name string, g Grammar)
}

// NewPipeline returns a pipeline running the given stages in order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Add appends stages to the pipeline.
func (p *Pipeline) Add(stages ...Stage) {
	p.stages = append(p.stages, stages...)
}

// Run threads g through every stage, sharing one fresh-name allocator
// seeded from g, and returns the final grammar.
func (p *Pipeline) Run(g Grammar) Grammar {
	names := NewNames(g)
	for _, s := range p.stages {
		g = s.Apply(g, names)
		if p.Observe != nil {
			p.Observe(s.Name, g)
		}
	}
	return g
}

// Normalize converts g to Chomsky Normal Form: every production is either
// two non-terminals, a single terminal, or the start symbol's epsilon rule
// when g derives the empty string.
func Normalize(g Grammar) Grammar {
	return NewPipeline(CNFStages()...).Run(g)
}
