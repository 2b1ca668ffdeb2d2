package toposort

import "sort"

// Sort computes a topological ordering of ids over the dependency
// subgraph described by adj (see graphmodel.Graph.DependencyAdjacency).
// Nodes that are part of a cycle never reach in-degree zero and are
// omitted from the result.
func Sort(ids []string, adj map[string][]string) []string {
	inDegree := make(map[string]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, tos := range adj {
		for _, to := range tos {
			if _, ok := inDegree[to]; ok {
				inDegree[to]++
			}
		}
	}

	// Seed the queue with all zero-in-degree nodes, sorted for determinism.
	var queue []string
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	result := make([]string, 0, len(ids))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		neighbors := append([]string(nil), adj[node]...)
		sort.Strings(neighbors)
		for _, nbr := range neighbors {
			inDegree[nbr]--
			if inDegree[nbr] == 0 {
				queue = append(queue, nbr)
			}
		}
	}

	return result
}
