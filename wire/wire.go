package wire

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/arguelabs/clarity-engine/internal/bias"
	"github.com/arguelabs/clarity-engine/internal/contradiction"
	"github.com/arguelabs/clarity-engine/internal/fallacy"
	"github.com/arguelabs/clarity-engine/internal/graphmodel"
	"github.com/arguelabs/clarity-engine/internal/scorer"
	"github.com/arguelabs/clarity-engine/report"
)

type inputGraph struct {
	Propositions  []inputProposition  `json:"propositions"`
	Relationships []inputRelationship `json:"relationships"`
}

type inputProposition struct {
	ID               string `json:"id"`
	Statement        string `json:"statement"`
	FormalExpression string `json:"formalExpression"`
	Type             string `json:"type"`
	Confidence       string `json:"confidence"`
	IsImplicit       bool   `json:"isImplicit"`
	IsLoadBearing    bool   `json:"isLoadBearing"`
	IsAnchored       bool   `json:"isAnchored"`
}

type inputRelationship struct {
	ID       string `json:"id"`
	FromID   string `json:"fromId"`
	ToID     string `json:"toId"`
	Type     string `json:"type"`
	Strength string `json:"strength"`
	Label    string `json:"label,omitempty"`
}

// validate reports the first missing required field, matching spec's
// "every other field required" rule for propositions and relationships.
// Booleans carry no required-ness check since their zero value is valid.
func (g inputGraph) validate() error {
	for _, p := range g.Propositions {
		switch {
		case p.ID == "":
			return errors.New("proposition missing required field: id")
		case p.Statement == "":
			return errors.New("proposition missing required field: statement")
		case p.FormalExpression == "":
			return errors.New("proposition missing required field: formalExpression")
		case p.Type == "":
			return errors.New("proposition missing required field: type")
		case p.Confidence == "":
			return errors.New("proposition missing required field: confidence")
		}
	}

	for _, r := range g.Relationships {
		switch {
		case r.ID == "":
			return errors.New("relationship missing required field: id")
		case r.FromID == "":
			return errors.New("relationship missing required field: fromId")
		case r.ToID == "":
			return errors.New("relationship missing required field: toId")
		case r.Type == "":
			return errors.New("relationship missing required field: type")
		case r.Strength == "":
			return errors.New("relationship missing required field: strength")
		}
	}

	return nil
}

func (g inputGraph) toGraph() *graphmodel.Graph {
	props := make([]graphmodel.Proposition, len(g.Propositions))
	for i, p := range g.Propositions {
		props[i] = graphmodel.Proposition{
			ID:               p.ID,
			Statement:        p.Statement,
			FormalExpression: p.FormalExpression,
			Kind:             graphmodel.PropositionKind(p.Type),
			Confidence:       graphmodel.Confidence(p.Confidence),
			IsImplicit:       p.IsImplicit,
			IsLoadBearing:    p.IsLoadBearing,
			IsAnchored:       p.IsAnchored,
		}
	}

	rels := make([]graphmodel.Relationship, len(g.Relationships))
	for i, r := range g.Relationships {
		rels[i] = graphmodel.Relationship{
			ID:       r.ID,
			From:     r.FromID,
			To:       r.ToID,
			Kind:     graphmodel.RelationshipKind(r.Type),
			Strength: graphmodel.Strength(r.Strength),
			Label:    r.Label,
		}
	}

	return graphmodel.NewGraph(props, rels)
}

type outputReport struct {
	Contradictions   []outputContradiction  `json:"contradictions"`
	Fallacies        []outputFallacy        `json:"fallacies"`
	Biases           []outputBias           `json:"biases"`
	ArgumentScores   []outputArgumentScore  `json:"argumentScores"`
	Cycles           [][]string             `json:"cycles"`
	TopologicalOrder []string               `json:"topologicalOrder"`
}

type outputContradiction struct {
	ID                string   `json:"id"`
	PropositionIDs    []string `json:"propositionIds"`
	ContradictionType string   `json:"contradictionType"`
	Severity          string   `json:"severity"`
	FormalProof       string   `json:"formalProof"`
	HumanExplanation  string   `json:"humanExplanation"`
}

type outputFallacy struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	AffectedNodeIDs []string `json:"affectedNodeIds"`
	PatternType     string   `json:"patternType"`
}

type outputBias struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	KahnemanReference string   `json:"kahnemanReference"`
	Description       string   `json:"description"`
	AffectedNodeIDs   []string `json:"affectedNodeIds"`
	Severity          string   `json:"severity"`
	System            int      `json:"system"`
}

type outputArgumentScore struct {
	PropositionID         string  `json:"propositionId"`
	Score                 float64 `json:"score"`
	EvidencePaths         uint32  `json:"evidencePaths"`
	ContradictionCount    uint32  `json:"contradictionCount"`
	VulnerableAssumptions uint32  `json:"vulnerableAssumptions"`
}

func toOutputReport(r report.Report) outputReport {
	return outputReport{
		Contradictions:   toOutputContradictions(r.Contradictions),
		Fallacies:        toOutputFallacies(r.Fallacies),
		Biases:           toOutputBiases(r.Biases),
		ArgumentScores:   toOutputScores(r.ArgumentScores),
		Cycles:           r.Cycles,
		TopologicalOrder: r.TopologicalOrder,
	}
}

func toOutputContradictions(cs []contradiction.Contradiction) []outputContradiction {
	out := make([]outputContradiction, len(cs))
	for i, c := range cs {
		out[i] = outputContradiction{
			ID:                c.ID,
			PropositionIDs:    c.PropositionIDs,
			ContradictionType: c.Type,
			Severity:          c.Severity,
			FormalProof:       c.FormalProof,
			HumanExplanation:  c.HumanExplanation,
		}
	}

	return out
}

func toOutputFallacies(fs []fallacy.Fallacy) []outputFallacy {
	out := make([]outputFallacy, len(fs))
	for i, f := range fs {
		out[i] = outputFallacy{
			ID:              f.ID,
			Name:            f.Name,
			Description:     f.Description,
			AffectedNodeIDs: f.AffectedNodeIDs,
			PatternType:     f.PatternType,
		}
	}

	return out
}

func toOutputBiases(bs []bias.CognitiveBias) []outputBias {
	out := make([]outputBias, len(bs))
	for i, b := range bs {
		out[i] = outputBias{
			ID:                b.ID,
			Name:              b.Name,
			KahnemanReference: b.KahnemanReference,
			Description:       b.Description,
			AffectedNodeIDs:   b.AffectedNodeIDs,
			Severity:          b.Severity,
			System:            b.System,
		}
	}

	return out
}

func toOutputScores(ss []scorer.ArgumentScore) []outputArgumentScore {
	out := make([]outputArgumentScore, len(ss))
	for i, s := range ss {
		out[i] = outputArgumentScore{
			PropositionID:         s.PropositionID,
			Score:                 s.Score,
			EvidencePaths:         s.EvidencePaths,
			ContradictionCount:    s.ContradictionCount,
			VulnerableAssumptions: s.VulnerableAssumptions,
		}
	}

	return out
}

// AnalyzeJSON decodes input as a graph document, runs the full analysis
// pipeline, and encodes the resulting report. On decode failure it returns
// an error prefixed "Parse error:"; on encode failure, "Serialize error:".
// Both are terminal — no partial result is ever returned.
func AnalyzeJSON(input string) (string, error) {
	var g inputGraph
	if err := json.Unmarshal([]byte(input), &g); err != nil {
		return "", fmt.Errorf("Parse error: %w", err)
	}

	if err := g.validate(); err != nil {
		return "", fmt.Errorf("Parse error: %w", err)
	}

	r := report.Analyze(g.toGraph())

	out, err := json.Marshal(toOutputReport(r))
	if err != nil {
		return "", fmt.Errorf("Serialize error: %w", err)
	}

	return string(out), nil
}
