package bias

import (
	"fmt"
	"strings"

	"github.com/arguelabs/clarity-engine/internal/graphmodel"
	"github.com/arguelabs/clarity-engine/internal/textutil"
)

// Severity levels a CognitiveBias can carry, derived from the affected
// node's betweenness centrality.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// CognitiveBias is a detected deviation from rational argument
// construction, traced back to a specific chapter of Kahneman's dual
// process account.
type CognitiveBias struct {
	ID                string
	Name              string
	KahnemanReference string
	Description       string
	AffectedNodeIDs   []string
	Severity          string
	System            int
}

var subjectiveIndicators = []string{
	"feels", "seems", "looks like", "appears", "intuition",
	"gut", "sense", "impression", "vibe",
}

// Detect runs all five bias detectors over g, scaling severity with
// centrality (the output of the betweenness-centrality pass).
func Detect(g *graphmodel.Graph, centrality map[string]float64) []CognitiveBias {
	var out []CognitiveBias
	counter := 0

	detectAnchoring(g, centrality, &out, &counter)
	detectConfirmation(g, centrality, &out, &counter)
	detectAvailability(g, centrality, &out, &counter)
	detectPlanningFallacy(g, centrality, &out, &counter)
	detectAttributeSubstitution(g, centrality, &out, &counter)

	return out
}

func severityFromCentrality(centrality map[string]float64, id string) string {
	v, ok := centrality[id]
	switch {
	case ok && v > 0.3:
		return SeverityHigh
	case ok && v > 0.1:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func detectAnchoring(g *graphmodel.Graph, centrality map[string]float64, out *[]CognitiveBias, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindAssumption || p.Confidence != graphmodel.ConfidenceUnstatedAsAbsolute {
			continue
		}

		supportCount := 0
		for _, r := range g.RelationshipsTo(p.ID) {
			if r.Kind == graphmodel.RelSupports {
				supportCount++
			}
		}
		if supportCount != 0 {
			continue
		}

		(*counter)++
		anchorNote := "Consider what evidence would be needed to verify this assumption."
		if p.IsAnchored {
			anchorNote = "This proposition has been flagged as an anchoring point."
		}

		*out = append(*out, CognitiveBias{
			ID:                fmt.Sprintf("bias-anchoring-%d", *counter),
			Name:              "Anchoring Effect",
			KahnemanReference: "Thinking, Fast and Slow, Chapter 11: Anchors",
			Description: fmt.Sprintf(
				"The assumption %q is stated as an absolute without any supporting "+
					"evidence. This is a classic anchoring pattern: an initial value or belief "+
					"is accepted by System 1 without verification, and all subsequent reasoning "+
					"is adjusted relative to this anchor rather than being independently evaluated. "+
					"%s",
				p.Statement, anchorNote,
			),
			AffectedNodeIDs: []string{p.ID},
			Severity:        severityFromCentrality(centrality, p.ID),
			System:          1,
		})
	}
}

func detectConfirmation(g *graphmodel.Graph, centrality map[string]float64, out *[]CognitiveBias, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindClaim {
			continue
		}

		incoming := g.RelationshipsTo(p.ID)
		if len(incoming) == 0 {
			continue
		}

		var supporterIDs []string
		challengeCount := 0
		for _, r := range incoming {
			switch r.Kind {
			case graphmodel.RelSupports:
				supporterIDs = append(supporterIDs, r.From)
			case graphmodel.RelContradicts, graphmodel.RelAttacks:
				challengeCount++
			}
		}

		if len(supporterIDs) < 2 || challengeCount != 0 {
			continue
		}

		(*counter)++
		*out = append(*out, CognitiveBias{
			ID:                fmt.Sprintf("bias-confirmation-%d", *counter),
			Name:              "Confirmation Bias",
			KahnemanReference: "Thinking, Fast and Slow, Chapter 7: A Machine for Jumping to Conclusions",
			Description: fmt.Sprintf(
				"The claim %q has %d supporting pieces of evidence but zero "+
					"contradicting or challenging inputs. This one-sided evidence pattern "+
					"suggests confirmation bias: the reasoner sought only evidence that "+
					"supports their conclusion and did not actively look for counter-evidence. "+
					"A robust argument should include and address opposing viewpoints.",
				p.Statement, len(supporterIDs),
			),
			AffectedNodeIDs: append([]string{p.ID}, supporterIDs...),
			Severity:        severityFromCentrality(centrality, p.ID),
			System:          1,
		})
	}
}

func detectAvailability(g *graphmodel.Graph, centrality map[string]float64, out *[]CognitiveBias, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindEvidence {
			continue
		}
		if p.Confidence != graphmodel.ConfidenceHigh && p.Confidence != graphmodel.ConfidenceMedium {
			continue
		}

		stmtLower := strings.ToLower(p.Statement)
		exprLower := strings.ToLower(p.FormalExpression)

		triggerWord := ""
		for _, kw := range subjectiveIndicators {
			if strings.Contains(stmtLower, kw) || strings.Contains(exprLower, kw) {
				triggerWord = kw
				break
			}
		}
		if triggerWord == "" {
			continue
		}

		(*counter)++
		*out = append(*out, CognitiveBias{
			ID:                fmt.Sprintf("bias-availability-%d", *counter),
			Name:              "Availability Heuristic",
			KahnemanReference: "Thinking, Fast and Slow, Chapter 12: The Science of Availability",
			Description: fmt.Sprintf(
				"The evidence %q uses the subjective term %q which suggests "+
					"a System 1 judgment based on what is easily available in memory rather "+
					"than systematic analysis. Vivid, recent, or emotionally salient information "+
					"is being treated as representative data. This evidence should be "+
					"supplemented with objective measurements.",
				p.Statement, triggerWord,
			),
			AffectedNodeIDs: []string{p.ID},
			Severity:        severityFromCentrality(centrality, p.ID),
			System:          1,
		})
	}
}

func detectPlanningFallacy(g *graphmodel.Graph, centrality map[string]float64, out *[]CognitiveBias, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindClaim || !p.IsLoadBearing {
			continue
		}

		outgoingDeps := 0
		for _, r := range g.RelationshipsFrom(p.ID) {
			if r.Kind == graphmodel.RelDependsOn || r.Kind == graphmodel.RelAssumes {
				outgoingDeps++
			}
		}
		if outgoingDeps != 0 || p.Confidence != graphmodel.ConfidenceHigh {
			continue
		}

		hasConstraints := false
		for _, r := range g.RelationshipsTo(p.ID) {
			src, ok := g.Proposition(r.From)
			if ok && (src.Kind == graphmodel.KindConstraint || src.Kind == graphmodel.KindRisk) {
				hasConstraints = true
				break
			}
		}
		if hasConstraints {
			continue
		}

		(*counter)++
		*out = append(*out, CognitiveBias{
			ID:                fmt.Sprintf("bias-planning-%d", *counter),
			Name:              "Planning Fallacy",
			KahnemanReference: "Thinking, Fast and Slow, Chapter 23: The Outside View",
			Description: fmt.Sprintf(
				"The claim %q is load-bearing and stated with high confidence, "+
					"but has no decomposition into sub-tasks, dependencies, or constraints. "+
					"This is a hallmark of the Planning Fallacy: overly optimistic planning "+
					"that fails to account for the complexity of execution. "+
					"Consider breaking this into concrete, measurable sub-goals.",
				p.Statement,
			),
			AffectedNodeIDs: []string{p.ID},
			Severity:        severityFromCentrality(centrality, p.ID),
			System:          1,
		})
	}
}

func detectAttributeSubstitution(g *graphmodel.Graph, centrality map[string]float64, out *[]CognitiveBias, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindClaim {
			continue
		}

		claimVars := textutil.ExtractVariables(p.FormalExpression)
		if len(claimVars) == 0 {
			continue
		}

		var supporters []graphmodel.Proposition
		for _, r := range g.RelationshipsTo(p.ID) {
			if r.Kind != graphmodel.RelSupports {
				continue
			}
			if sp, ok := g.Proposition(r.From); ok {
				supporters = append(supporters, *sp)
			}
		}

		for _, evidence := range supporters {
			evidenceVars := textutil.ExtractVariables(evidence.FormalExpression)
			if len(evidenceVars) == 0 {
				continue
			}

			if overlaps(claimVars, evidenceVars) {
				continue
			}

			(*counter)++
			*out = append(*out, CognitiveBias{
				ID:                fmt.Sprintf("bias-substitution-%d", *counter),
				Name:              "Attribute Substitution",
				KahnemanReference: "Thinking, Fast and Slow, Chapter 9: Answering an Easier Question",
				Description: fmt.Sprintf(
					"The claim %q appears to be about [%s], but the supporting evidence "+
						"%q measures [%s]. System 1 may be substituting an easy-to-measure "+
						"proxy for the actual question being asked. Verify that the evidence "+
						"directly addresses the claim's core variable.",
					p.Statement, strings.Join(claimVars, ", "),
					evidence.Statement, strings.Join(evidenceVars, ", "),
				),
				AffectedNodeIDs: []string{p.ID, evidence.ID},
				Severity:        severityFromCentrality(centrality, p.ID),
				System:          1,
			})
		}
	}
}

func overlaps(a, b []string) bool {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	for _, v := range a {
		if set[v] {
			return true
		}
	}

	return false
}
