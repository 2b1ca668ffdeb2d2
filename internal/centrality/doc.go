// Package centrality computes betweenness centrality over the dependency
// subgraph using Brandes' algorithm: for every source node, a
// breadth-first search builds shortest-path counts and predecessor lists,
// then a reverse pass over the BFS stack accumulates each node's pair
// dependency. Centrality is the sum of a node's dependency contributions
// across all sources, excluding the case where the node is itself the
// source.
//
// Raw scores are normalised by dividing by (n-1)(n-2) when there are more
// than two propositions, then clamped to [0,1]; with fewer than two
// propositions every score is 0.
//
// Complexity: O(V·(V+E)).
package centrality
