package contradiction

import (
	"fmt"
	"strings"

	"github.com/arguelabs/clarity-engine/internal/graphmodel"
	"github.com/arguelabs/clarity-engine/internal/textutil"
)

// Severity levels a Contradiction can carry.
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
)

// Type classifies how a Contradiction was found.
const (
	TypeLogical   = "logical"
	TypeTemporal  = "temporal"
	TypeEmpirical = "empirical"
)

// Contradiction is a detected inconsistency between two or more
// propositions, with a machine-readable proof sketch and a prose
// explanation aimed at a human reader.
type Contradiction struct {
	ID               string
	PropositionIDs   []string
	Type             string
	Severity         string
	FormalProof      string
	HumanExplanation string
}

var timeKeywords = []string{
	"month", "year", "week", "day", "quarter", "time", "duration",
	"deadline", "runway", "period",
}

// Detect runs all four contradiction strategies over g and returns every
// contradiction found, in strategy order (explicit, temporal, logical,
// resource) and, within a strategy, in input order (relationship order for
// explicit contradictions, proposition order for the others).
func Detect(g *graphmodel.Graph) []Contradiction {
	var out []Contradiction
	counter := 0

	detectExplicit(g, &out, &counter)
	detectTemporal(g, &out, &counter)
	detectLogical(g, &out, &counter)
	detectResource(g, &out, &counter)

	return out
}

func detectExplicit(g *graphmodel.Graph, out *[]Contradiction, counter *int) {
	for _, rel := range g.Relationships() {
		if rel.Kind != graphmodel.RelContradicts {
			continue
		}
		from, ok1 := g.Proposition(rel.From)
		to, ok2 := g.Proposition(rel.To)
		if !ok1 || !ok2 {
			continue
		}

		(*counter)++
		severity := SeverityMajor
		if from.IsLoadBearing || to.IsLoadBearing {
			severity = SeverityCritical
		}

		*out = append(*out, Contradiction{
			ID:             fmt.Sprintf("contradiction-explicit-%d", *counter),
			PropositionIDs: []string{rel.From, rel.To},
			Type:           TypeLogical,
			Severity:       severity,
			FormalProof:    fmt.Sprintf("%s ∧ %s → ⊥", from.FormalExpression, to.FormalExpression),
			HumanExplanation: fmt.Sprintf(
				"%q directly contradicts %q. These two propositions cannot both be true simultaneously.",
				from.Statement, to.Statement,
			),
		})
	}
}

func detectTemporal(g *graphmodel.Graph, out *[]Contradiction, counter *int) {
	var timeProps []graphmodel.Proposition
	for _, p := range g.Propositions() {
		exprLower := strings.ToLower(p.FormalExpression)
		stmtLower := strings.ToLower(p.Statement)
		if containsAny(exprLower, timeKeywords) || containsAny(stmtLower, timeKeywords) {
			timeProps = append(timeProps, p)
		}
	}

	for i := 0; i < len(timeProps); i++ {
		for j := i + 1; j < len(timeProps); j++ {
			a, b := timeProps[i], timeProps[j]
			explanation, ok := temporalConflict(a, b)
			if !ok {
				continue
			}

			(*counter)++
			severity := SeverityMajor
			if a.IsLoadBearing || b.IsLoadBearing {
				severity = SeverityCritical
			}

			*out = append(*out, Contradiction{
				ID:             fmt.Sprintf("contradiction-temporal-%d", *counter),
				PropositionIDs: []string{a.ID, b.ID},
				Type:           TypeTemporal,
				Severity:       severity,
				FormalProof:    fmt.Sprintf("%s ∧ %s → temporal_conflict", a.FormalExpression, b.FormalExpression),
				HumanExplanation: explanation,
			})
		}
	}
}

func temporalConflict(a, b graphmodel.Proposition) (string, bool) {
	aExpr, bExpr := strings.ToLower(a.FormalExpression), strings.ToLower(b.FormalExpression)
	aStmt, bStmt := strings.ToLower(a.Statement), strings.ToLower(b.Statement)

	aOp, aVal, aOk := durationOf(aExpr, aStmt)
	bOp, bVal, bOk := durationOf(bExpr, bStmt)

	if aOk && bOk {
		if aOp == ">" && bOp == "<" && aVal > bVal {
			return fmt.Sprintf(
				"Temporal conflict: %q implies a duration of more than %g months, "+
					"but %q requires completion within %g months. "+
					"These time constraints are incompatible.",
				a.Statement, aVal, b.Statement, bVal,
			), true
		}
		if bOp == ">" && aOp == "<" && bVal > aVal {
			return fmt.Sprintf(
				"Temporal conflict: %q implies a duration of more than %g months, "+
					"but %q requires completion within %g months. "+
					"These time constraints are incompatible.",
				b.Statement, bVal, a.Statement, aVal,
			), true
		}
	}

	aUrgent := containsAny(aStmt, []string{"now", "immediately", "should"})
	bUrgent := containsAny(bStmt, []string{"now", "immediately", "should"})
	aLong := containsAny(aStmt, []string{">12", "over a year", "> 12"})
	bLong := containsAny(bStmt, []string{">12", "over a year", "> 12"})

	if (aUrgent && bLong) || (bUrgent && aLong) {
		urgentStmt, longStmt := b.Statement, a.Statement
		if aUrgent && bLong {
			urgentStmt, longStmt = a.Statement, b.Statement
		}

		return fmt.Sprintf(
			"Temporal conflict: %q implies urgency, "+
				"but %q indicates a lengthy timeline. "+
				"The urgency and the required duration are incompatible.",
			urgentStmt, longStmt,
		), true
	}

	return "", false
}

func durationOf(expr, stmt string) (string, float64, bool) {
	if op, val, ok := textutil.ExtractDuration(expr); ok {
		return op, val, true
	}

	return textutil.ExtractDuration(stmt)
}

func detectLogical(g *graphmodel.Graph, out *[]Contradiction, counter *int) {
	props := g.Propositions()
	for i := 0; i < len(props); i++ {
		for j := i + 1; j < len(props); j++ {
			a, b := props[i], props[j]
			explanation, ok := logicalConflict(a, b)
			if !ok {
				continue
			}

			(*counter)++
			severity := SeverityMajor
			if a.IsLoadBearing && b.IsLoadBearing {
				severity = SeverityCritical
			}

			*out = append(*out, Contradiction{
				ID:               fmt.Sprintf("contradiction-logical-%d", *counter),
				PropositionIDs:   []string{a.ID, b.ID},
				Type:             TypeLogical,
				Severity:         severity,
				FormalProof:      fmt.Sprintf("%s ∧ %s → ⊥", a.FormalExpression, b.FormalExpression),
				HumanExplanation: explanation,
			})
		}
	}
}

func logicalConflict(a, b graphmodel.Proposition) (string, bool) {
	aLHS, aRHS, aOk := textutil.ParseImplication(a.FormalExpression)
	bLHS, bRHS, bOk := textutil.ParseImplication(b.FormalExpression)
	if !aOk || !bOk || aLHS != bLHS {
		return "", false
	}

	aNegated := "¬" + aRHS
	bNegated := "¬" + bRHS
	aStripped := strings.TrimSpace(strings.TrimPrefix(aRHS, "¬"))
	bStripped := strings.TrimSpace(strings.TrimPrefix(bRHS, "¬"))

	if aRHS == bNegated || bRHS == aNegated || (aStripped == bStripped && aRHS != bRHS) {
		return fmt.Sprintf(
			"Logical conflict: %q implies %s → %s, "+
				"but %q implies %s → %s. "+
				"Given the same condition (%s), these lead to contradictory conclusions.",
			a.Statement, aLHS, aRHS,
			b.Statement, bLHS, bRHS,
			aLHS,
		), true
	}

	return "", false
}

func detectResource(g *graphmodel.Graph, out *[]Contradiction, counter *int) {
	type numericProp struct {
		prop graphmodel.Proposition
		val  float64
	}

	var numericProps []numericProp
	for _, p := range g.Propositions() {
		val, ok := textutil.ExtractNumericValue(p.FormalExpression)
		if !ok {
			val, ok = textutil.ExtractNumericValue(p.Statement)
		}
		if ok {
			numericProps = append(numericProps, numericProp{p, val})
		}
	}

	for _, p := range g.Propositions() {
		if p.Kind != graphmodel.KindAssumption {
			continue
		}
		if !strings.Contains(p.FormalExpression, "≥") &&
			!strings.Contains(p.FormalExpression, ">=") &&
			!strings.Contains(strings.ToLower(p.Statement), "sufficient") {
			continue
		}

		related := make(map[string]bool)
		for _, r := range g.RelationshipsFrom(p.ID) {
			related[r.To] = true
		}
		for _, r := range g.RelationshipsTo(p.ID) {
			related[r.From] = true
		}

		var relatedNums []numericProp
		for _, np := range numericProps {
			if related[np.prop.ID] {
				relatedNums = append(relatedNums, np)
			}
		}

		if len(relatedNums) < 2 {
			continue
		}

		(*counter)++
		severity := SeverityMajor
		if p.IsLoadBearing {
			severity = SeverityCritical
		}

		affected := []string{p.ID}
		var parts []string
		for _, np := range relatedNums {
			affected = append(affected, np.prop.ID)
			parts = append(parts, fmt.Sprintf("%q (%g)", np.prop.Statement, np.val))
		}

		*out = append(*out, Contradiction{
			ID:             fmt.Sprintf("contradiction-resource-%d", *counter),
			PropositionIDs: affected,
			Type:           TypeEmpirical,
			Severity:       severity,
			FormalProof:    fmt.Sprintf("%s — requires verification against numeric constraints", p.FormalExpression),
			HumanExplanation: fmt.Sprintf(
				"The assumption %q may not hold when checked against the actual numbers: %s. "+
					"Verify that the math supports this claim.",
				p.Statement, strings.Join(parts, ", "),
			),
		})
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}

	return false
}
