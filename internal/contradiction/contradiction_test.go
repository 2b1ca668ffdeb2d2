package contradiction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arguelabs/clarity-engine/internal/contradiction"
	"github.com/arguelabs/clarity-engine/internal/graphmodel"
)

func prop(id string, kind graphmodel.PropositionKind, loadBearing bool) graphmodel.Proposition {
	return graphmodel.Proposition{
		ID:         id,
		Statement:  id,
		Kind:       kind,
		Confidence: graphmodel.ConfidenceHigh,
		IsLoadBearing: loadBearing,
	}
}

func TestDetect_ExplicitContradiction(t *testing.T) {
	p1 := prop("p1", graphmodel.KindClaim, false)
	p1.Statement = "We should pivot to Enterprise"
	p1.FormalExpression = "pivot_enterprise → optimal_outcome"

	p2 := prop("p2", graphmodel.KindConstraint, true)
	p2.Statement = "Rebuild takes >12 months"
	p2.FormalExpression = "time(rebuild) > 12_months"

	g := graphmodel.NewGraph(
		[]graphmodel.Proposition{p1, p2},
		[]graphmodel.Relationship{{ID: "r1", From: "p2", To: "p1", Kind: graphmodel.RelContradicts}},
	)

	result := contradiction.Detect(g)
	assert.Len(t, result, 1)
	assert.Equal(t, contradiction.TypeLogical, result[0].Type)
	assert.Equal(t, contradiction.SeverityCritical, result[0].Severity)
	assert.ElementsMatch(t, []string{"p1", "p2"}, result[0].PropositionIDs)
}

func TestDetect_NoContradictions(t *testing.T) {
	g := graphmodel.NewGraph(
		[]graphmodel.Proposition{prop("p1", graphmodel.KindClaim, false), prop("p2", graphmodel.KindEvidence, false)},
		[]graphmodel.Relationship{{ID: "r1", From: "p2", To: "p1", Kind: graphmodel.RelSupports}},
	)
	assert.Empty(t, contradiction.Detect(g))
}

func TestDetect_LogicalImplicationConflict(t *testing.T) {
	p1 := prop("p1", graphmodel.KindClaim, false)
	p1.FormalExpression = "growth → success"
	p2 := prop("p2", graphmodel.KindClaim, false)
	p2.FormalExpression = "growth → ¬success"

	g := graphmodel.NewGraph([]graphmodel.Proposition{p1, p2}, nil)
	result := contradiction.Detect(g)
	assert.NotEmpty(t, result)
	found := false
	for _, c := range result {
		if c.Type == contradiction.TypeLogical {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetect_TemporalConflict(t *testing.T) {
	p1 := prop("p1", graphmodel.KindConstraint, false)
	p1.Statement = "rebuild takes > 12 months"
	p2 := prop("p2", graphmodel.KindConstraint, false)
	p2.Statement = "results needed in < 6 months"

	g := graphmodel.NewGraph([]graphmodel.Proposition{p1, p2}, nil)
	result := contradiction.Detect(g)
	found := false
	for _, c := range result {
		if c.Type == contradiction.TypeTemporal {
			found = true
		}
	}
	assert.True(t, found)
}
