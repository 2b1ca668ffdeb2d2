// Package graphmodel defines the Proposition and Relationship types that make
// up an argument graph, and the read-only Graph aggregate built from them.
//
// Unlike a general-purpose mutable graph, a Graph here is constructed once
// from a caller-supplied proposition/relationship set and never mutated
// again: the whole analysis pipeline (cycle detection, topological order,
// centrality, and the interpreting passes) runs against a single immutable
// snapshot, so there is no locking and no copy-on-write story to get right.
//
// Dangling edges (an edge endpoint with no matching proposition) are dropped
// at construction time rather than causing a panic or an error — callers are
// trusted to hand over a well-formed graph, but a single bad edge should
// never take down an otherwise-valid analysis.
package graphmodel
