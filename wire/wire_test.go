package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"github.com/arguelabs/clarity-engine/wire"
)

func TestAnalyzeJSON_EmptyGraph(t *testing.T) {
	out, err := wire.AnalyzeJSON(`{"propositions":[],"relationships":[]}`)
	require.NoError(t, err)
	assert.Contains(t, out, "contradictions")
	assert.Contains(t, out, "fallacies")
	assert.Contains(t, out, "biases")
	assert.Contains(t, out, "argumentScores")
	assert.Contains(t, out, "topologicalOrder")
}

func TestAnalyzeJSON_InvalidJSON(t *testing.T) {
	_, err := wire.AnalyzeJSON("not valid json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parse error")
}

func TestAnalyzeJSON_MissingPropositionFieldIsParseError(t *testing.T) {
	input := `{
		"propositions": [{
			"id": "p1",
			"statement": "Test claim",
			"type": "claim",
			"confidence": "high"
		}],
		"relationships": []
	}`

	_, err := wire.AnalyzeJSON(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parse error")
	assert.Contains(t, err.Error(), "formalExpression")
}

func TestAnalyzeJSON_MissingRelationshipFieldIsParseError(t *testing.T) {
	input := `{
		"propositions": [
			{"id": "p1", "statement": "a", "formalExpression": "a", "type": "claim", "confidence": "high"},
			{"id": "p2", "statement": "b", "formalExpression": "b", "type": "claim", "confidence": "high"}
		],
		"relationships": [
			{"id": "r1", "fromId": "p1", "toId": "p2", "strength": "strong"}
		]
	}`

	_, err := wire.AnalyzeJSON(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parse error")
	assert.Contains(t, err.Error(), "type")
}

func TestAnalyzeJSON_SingleProposition(t *testing.T) {
	input := `{
		"propositions": [{
			"id": "p1",
			"statement": "Test claim",
			"formalExpression": "test → true",
			"type": "claim",
			"confidence": "high",
			"isImplicit": false,
			"isLoadBearing": true,
			"isAnchored": false
		}],
		"relationships": []
	}`

	out, err := wire.AnalyzeJSON(input)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	scores, ok := decoded["argumentScores"].([]interface{})
	require.True(t, ok)
	assert.Len(t, scores, 1)
}

func TestAnalyzeJSON_FounderPivotScenario(t *testing.T) {
	input := `{
		"propositions": [
			{"id": "fp-p1", "statement": "We should pivot to Enterprise", "formalExpression": "pivot_enterprise → optimal_outcome", "type": "claim", "confidence": "high", "isImplicit": false, "isLoadBearing": true, "isAnchored": false},
			{"id": "fp-p2", "statement": "Enterprise deal sizes are 5x larger", "formalExpression": "deal_size(enterprise) > 5 * deal_size(smb)", "type": "evidence", "confidence": "high", "isImplicit": false, "isLoadBearing": false, "isAnchored": false},
			{"id": "fp-p3", "statement": "Current SMB growth is stalling", "formalExpression": "growth_rate(smb) <= 0.03", "type": "evidence", "confidence": "medium", "isImplicit": false, "isLoadBearing": false, "isAnchored": false},
			{"id": "fp-p4", "statement": "Larger deals necessarily lead to better outcomes", "formalExpression": "deal_size(x) > deal_size(y) → outcome(x) > outcome(y)", "type": "assumption", "confidence": "unstated_as_absolute", "isImplicit": true, "isLoadBearing": true, "isAnchored": true},
			{"id": "fp-p5", "statement": "Product rebuild would take >12 months", "formalExpression": "time(rebuild_enterprise) > 12_months", "type": "constraint", "confidence": "high", "isImplicit": false, "isLoadBearing": false, "isAnchored": false}
		],
		"relationships": [
			{"id": "r1", "fromId": "fp-p2", "toId": "fp-p1", "type": "supports", "strength": "strong"},
			{"id": "r2", "fromId": "fp-p3", "toId": "fp-p1", "type": "supports", "strength": "moderate"},
			{"id": "r3", "fromId": "fp-p1", "toId": "fp-p4", "type": "depends_on", "strength": "strong"},
			{"id": "r4", "fromId": "fp-p5", "toId": "fp-p1", "type": "contradicts", "strength": "strong"}
		]
	}`

	out, err := wire.AnalyzeJSON(input)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	contradictions, _ := decoded["contradictions"].([]interface{})
	assert.NotEmpty(t, contradictions)

	biases, _ := decoded["biases"].([]interface{})
	foundAnchoring := false
	for _, b := range biases {
		bm := b.(map[string]interface{})
		if name, _ := bm["name"].(string); name == "Anchoring Effect" {
			foundAnchoring = true
		}
	}
	assert.True(t, foundAnchoring)

	scores, _ := decoded["argumentScores"].([]interface{})
	assert.Len(t, scores, 5)
}
