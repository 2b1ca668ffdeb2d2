// Package bias detects five cognitive biases from Kahneman's dual-process
// theory, each keyed to a structural signature in the argument graph:
// anchoring (an unstated-as-absolute assumption with no support),
// confirmation bias (a claim with only supporting, never challenging,
// inputs), the availability heuristic (confident evidence phrased in
// subjective rather than data-driven language), the planning fallacy (a
// load-bearing, high-confidence claim with no decomposition), and
// attribute substitution (a claim and its supporting evidence that share
// no formal-expression variables). Severity scales with a node's
// betweenness centrality: the more argument paths run through a biased
// node, the more severe the bias.
package bias
