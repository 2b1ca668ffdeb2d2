// Package cycle finds cycles in the dependency subgraph of an argument
// graph using depth-first search with three-colour marking
// (white/gray/black). A gray hit closes a cycle back to the first
// occurrence of the target on the current DFS path; edges into black
// nodes close nothing, so not every simple cycle is necessarily reported.
//
// Results are deduplicated by rotational equivalence: each cycle is
// normalised by rotating it so its lexicographically smallest proposition
// ID comes first, and duplicates by that normalised signature are dropped.
// Cycles are returned in first-discovery order after dedup, as node-ID
// sequences with no trailing repeat of the first node.
//
// Complexity: O(V + E + C·L) where C is the number of cycles and L their
// average length; memory is O(V + L_max) for the recursion stack and
// signature set.
package cycle
