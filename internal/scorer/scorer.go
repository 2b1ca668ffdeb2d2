package scorer

import (
	"github.com/arguelabs/clarity-engine/internal/contradiction"
	"github.com/arguelabs/clarity-engine/internal/graphmodel"
)

// ArgumentScore is a proposition's computed support score along with the
// raw counts that produced it.
type ArgumentScore struct {
	PropositionID         string
	Score                 float64
	EvidencePaths         uint32
	ContradictionCount    uint32
	VulnerableAssumptions uint32
}

// Score computes an ArgumentScore for every proposition in g.
//
// score = clamp(base - penalty + bonus, 0, 1), where
//   base    = evidencePaths / (evidencePaths + 1)
//   penalty = contradictionCount*0.3 + vulnerableAssumptions*0.2
//   bonus   = centrality*0.1
func Score(g *graphmodel.Graph, contradictions []contradiction.Contradiction, centrality map[string]float64) []ArgumentScore {
	out := make([]ArgumentScore, 0, len(g.Propositions()))

	for _, p := range g.Propositions() {
		evidencePaths := uint32(0)
		for _, r := range g.RelationshipsTo(p.ID) {
			if r.Kind == graphmodel.RelSupports {
				evidencePaths++
			}
		}

		contradictionCount := uint32(0)
		for _, c := range contradictions {
			if containsID(c.PropositionIDs, p.ID) {
				contradictionCount++
			}
		}

		vulnerable := countVulnerableAssumptions(g, p.ID)

		base := float64(evidencePaths) / (float64(evidencePaths) + 1.0)
		penalty := float64(contradictionCount)*0.3 + float64(vulnerable)*0.2
		bonus := centrality[p.ID] * 0.1

		score := base - penalty + bonus
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}

		out = append(out, ArgumentScore{
			PropositionID:         p.ID,
			Score:                 score,
			EvidencePaths:         evidencePaths,
			ContradictionCount:    contradictionCount,
			VulnerableAssumptions: vulnerable,
		})
	}

	return out
}

// countVulnerableAssumptions walks the depends_on/assumes edges in both
// directions from propID, counting load-bearing assumptions with zero
// supporting evidence.
func countVulnerableAssumptions(g *graphmodel.Graph, propID string) uint32 {
	count := uint32(0)

	isVulnerable := func(p *graphmodel.Proposition) bool {
		if p.Kind != graphmodel.KindAssumption || !p.IsLoadBearing {
			return false
		}
		for _, r := range g.RelationshipsTo(p.ID) {
			if r.Kind == graphmodel.RelSupports {
				return false
			}
		}

		return true
	}

	for _, r := range g.RelationshipsFrom(propID) {
		if r.Kind != graphmodel.RelDependsOn && r.Kind != graphmodel.RelAssumes {
			continue
		}
		if target, ok := g.Proposition(r.To); ok && isVulnerable(target) {
			count++
		}
	}

	for _, r := range g.RelationshipsTo(propID) {
		if r.Kind != graphmodel.RelDependsOn && r.Kind != graphmodel.RelAssumes {
			continue
		}
		if source, ok := g.Proposition(r.From); ok && isVulnerable(source) {
			count++
		}
	}

	return count
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
