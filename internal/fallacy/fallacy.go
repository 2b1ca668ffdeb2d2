package fallacy

import (
	"fmt"
	"strings"

	"github.com/arguelabs/clarity-engine/internal/graphmodel"
)

// Pattern types a Fallacy can carry.
const (
	PatternCycle               = "cycle"
	PatternHastyGeneralization = "hasty_generalization"
	PatternFalseDilemma        = "false_dilemma"
	PatternAppealToAuthority   = "appeal_to_authority"
)

// Fallacy is a detected reasoning pattern, named after its classical or
// informal-logic label.
type Fallacy struct {
	ID              string
	Name            string
	Description     string
	AffectedNodeIDs []string
	PatternType     string
}

const minEvidenceThreshold = 2

var binaryIndicators = []string{"or", "either", "only", "∨"}

var authorityPatterns = []string{
	"says", "according", "expert", "authority", "believes", "argues", "claims", "stated",
}

// Detect runs all four fallacy detectors over g. cycles is the output of
// the cycle-detection pass, already restricted to dependency edges and
// deduplicated by rotation.
func Detect(g *graphmodel.Graph, cycles [][]string) []Fallacy {
	var out []Fallacy
	counter := 0

	detectCircular(g, cycles, &out, &counter)
	detectHastyGeneralization(g, &out, &counter)
	detectFalseDilemma(g, &out, &counter)
	detectAppealToAuthority(g, &out, &counter)

	return out
}

func detectCircular(g *graphmodel.Graph, cycles [][]string, out *[]Fallacy, counter *int) {
	for _, cyc := range cycles {
		(*counter)++
		var labels []string
		for _, id := range cyc {
			if p, ok := g.Proposition(id); ok {
				labels = append(labels, fmt.Sprintf("%q", p.Statement))
			}
		}

		*out = append(*out, Fallacy{
			ID:   fmt.Sprintf("fallacy-circular-%d", *counter),
			Name: "Circular Reasoning (Petitio Principii)",
			Description: fmt.Sprintf(
				"A circular dependency was detected: %s form a logical loop where each "+
					"proposition ultimately depends on itself. This means the argument is "+
					"self-supporting with no independent foundation.",
				strings.Join(labels, " → "),
			),
			AffectedNodeIDs: append([]string(nil), cyc...),
			PatternType:     PatternCycle,
		})
	}
}

func detectHastyGeneralization(g *graphmodel.Graph, out *[]Fallacy, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindClaim || p.Confidence != graphmodel.ConfidenceHigh {
			continue
		}

		incoming := g.RelationshipsTo(p.ID)
		var supporterIDs []string
		var supporterLabels []string
		for _, r := range incoming {
			if r.Kind != graphmodel.RelSupports {
				continue
			}
			supporterIDs = append(supporterIDs, r.From)
			if sp, ok := g.Proposition(r.From); ok {
				supporterLabels = append(supporterLabels, fmt.Sprintf("%q", sp.Statement))
			}
		}

		supportCount := len(supporterIDs)
		if supportCount == 0 || supportCount >= minEvidenceThreshold {
			continue
		}

		(*counter)++
		*out = append(*out, Fallacy{
			ID:   fmt.Sprintf("fallacy-hasty-%d", *counter),
			Name: "Hasty Generalization",
			Description: fmt.Sprintf(
				"The claim %q is stated with high confidence but is supported by only %d "+
					"piece(s) of evidence: %s. High-confidence conclusions typically require "+
					"multiple independent lines of evidence. No counter-evidence has been "+
					"considered.",
				p.Statement, supportCount, strings.Join(supporterLabels, ", "),
			),
			AffectedNodeIDs: append([]string{p.ID}, supporterIDs...),
			PatternType:     PatternHastyGeneralization,
		})
	}
}

func detectFalseDilemma(g *graphmodel.Graph, out *[]Fallacy, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindClaim {
			continue
		}

		incoming := g.RelationshipsTo(p.ID)
		var supportEdges []graphmodel.Relationship
		contradictCount := 0
		for _, r := range incoming {
			switch r.Kind {
			case graphmodel.RelSupports:
				supportEdges = append(supportEdges, r)
			case graphmodel.RelContradicts, graphmodel.RelAttacks:
				contradictCount++
			}
		}

		if len(supportEdges) != 2 || contradictCount != 0 {
			continue
		}

		var supporters []graphmodel.Proposition
		for _, r := range supportEdges {
			if sp, ok := g.Proposition(r.From); ok {
				supporters = append(supporters, *sp)
			}
		}

		hasBinaryFraming := false
		for _, s := range supporters {
			expr := strings.ToLower(s.FormalExpression)
			stmt := strings.ToLower(s.Statement)
			for _, kw := range binaryIndicators {
				if strings.Contains(expr, kw) || strings.Contains(stmt, kw) {
					hasBinaryFraming = true
					break
				}
			}
			if hasBinaryFraming {
				break
			}
		}

		if !hasBinaryFraming {
			continue
		}

		(*counter)++
		affected := []string{p.ID}
		for _, s := range supporters {
			affected = append(affected, s.ID)
		}

		*out = append(*out, Fallacy{
			ID:   fmt.Sprintf("fallacy-dilemma-%d", *counter),
			Name: "False Dilemma",
			Description: fmt.Sprintf(
				"The claim %q is presented as depending on exactly two options, "+
					"with no alternatives considered. This binary framing may exclude "+
					"viable middle-ground positions or alternative approaches.",
				p.Statement,
			),
			AffectedNodeIDs: affected,
			PatternType:     PatternFalseDilemma,
		})
	}
}

func detectAppealToAuthority(g *graphmodel.Graph, out *[]Fallacy, counter *int) {
	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindEvidence {
			continue
		}

		exprLower := strings.ToLower(p.FormalExpression)
		stmtLower := strings.ToLower(p.Statement)

		hasAuthority := false
		for _, kw := range authorityPatterns {
			if strings.Contains(exprLower, kw) || strings.Contains(stmtLower, kw) {
				hasAuthority = true
				break
			}
		}
		if !hasAuthority {
			continue
		}

		backing := 0
		for _, r := range g.RelationshipsTo(p.ID) {
			if r.Kind == graphmodel.RelSupports {
				backing++
			}
		}
		if backing != 0 {
			continue
		}

		(*counter)++
		*out = append(*out, Fallacy{
			ID:   fmt.Sprintf("fallacy-authority-%d", *counter),
			Name: "Appeal to Authority",
			Description: fmt.Sprintf(
				"The evidence %q references an authority or source rather than "+
					"providing independent logical justification. Authority-based evidence "+
					"should be supplemented with verifiable data.",
				p.Statement,
			),
			AffectedNodeIDs: []string{p.ID},
			PatternType:     PatternAppealToAuthority,
		})
	}
}
