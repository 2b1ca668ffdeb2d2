// Package contradiction detects four classes of contradictions between
// propositions: explicit ("contradicts" relationships), temporal (conflicting
// duration or urgency language), logical (same antecedent, negated
// consequent across two formal expressions), and resource/empirical
// (an assumption stated with "≥"/">=" or "sufficient" that is linked, by
// any relationship in either direction, to two or more propositions
// carrying a numeric value worth double-checking). It never runs inside a cycle or
// orders propositions itself — it only reads the graph as given.
package contradiction
