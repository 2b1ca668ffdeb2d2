package report

import (
	"github.com/arguelabs/clarity-engine/internal/bias"
	"github.com/arguelabs/clarity-engine/internal/centrality"
	"github.com/arguelabs/clarity-engine/internal/contradiction"
	"github.com/arguelabs/clarity-engine/internal/cycle"
	"github.com/arguelabs/clarity-engine/internal/fallacy"
	"github.com/arguelabs/clarity-engine/internal/graphmodel"
	"github.com/arguelabs/clarity-engine/internal/scorer"
	"github.com/arguelabs/clarity-engine/internal/toposort"
)

// Report is the full output of a single Analyze call.
type Report struct {
	Contradictions    []contradiction.Contradiction
	Fallacies         []fallacy.Fallacy
	Biases            []bias.CognitiveBias
	ArgumentScores    []scorer.ArgumentScore
	Cycles            [][]string
	TopologicalOrder  []string
}

// Analyze runs the full pipeline over g and returns the assembled Report.
func Analyze(g *graphmodel.Graph) Report {
	ids := make([]string, 0, len(g.Propositions()))
	for _, p := range g.Propositions() {
		ids = append(ids, p.ID)
	}
	adj := g.DependencyAdjacency()

	contradictions := contradiction.Detect(g)
	cycles := cycle.Detect(ids, adj)
	topoOrder := toposort.Sort(ids, adj)
	centralityScores := centrality.Compute(ids, adj)

	scores := scorer.Score(g, contradictions, centralityScores)
	fallacies := fallacy.Detect(g, cycles)
	biases := bias.Detect(g, centralityScores)

	return Report{
		Contradictions:   contradictions,
		Fallacies:        fallacies,
		Biases:           biases,
		ArgumentScores:   scores,
		Cycles:           cycles,
		TopologicalOrder: topoOrder,
	}
}
