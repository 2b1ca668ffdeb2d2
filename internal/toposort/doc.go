// Package toposort orders propositions by dependency using Kahn's
// algorithm over the dependency subgraph (supports/depends_on/assumes
// edges only). Ties in the ready queue are broken by lexicographic
// identifier order so the result is deterministic for a given input.
//
// Propositions that participate in a dependency cycle never reach
// in-degree zero and are therefore omitted from the result entirely — the
// output is the acyclic subset of the graph, in a valid dependency order.
//
// Complexity: O(V + E).
package toposort
