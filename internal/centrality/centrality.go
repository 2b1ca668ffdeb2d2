package centrality

// Compute returns betweenness centrality for every id in ids, over the
// dependency subgraph described by adj.
func Compute(ids []string, adj map[string][]string) map[string]float64 {
	n := len(ids)
	result := make(map[string]float64, n)
	for _, id := range ids {
		result[id] = 0
	}
	if n < 2 {
		return result
	}

	for _, source := range ids {
		brandesSingleSource(source, ids, adj, result)
	}

	normalization := 1.0
	if n > 2 {
		normalization = float64((n - 1) * (n - 2))
	}
	for id, v := range result {
		v /= normalization
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		result[id] = v
	}

	return result
}

// brandesSingleSource runs one BFS from source and accumulates its pair
// dependencies into centrality.
func brandesSingleSource(source string, ids []string, adj map[string][]string, centrality map[string]float64) {
	predecessors := make(map[string][]string, len(ids))
	sigma := make(map[string]float64, len(ids))
	dist := make(map[string]int, len(ids))
	for _, id := range ids {
		sigma[id] = 0
		dist[id] = -1
	}
	sigma[source] = 1
	dist[source] = 0

	var stack []string
	queue := []string{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, w := range adj[v] {
			if _, ok := dist[w]; !ok {
				continue // neighbor outside the known node set
			}
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	delta := make(map[string]float64, len(ids))
	for _, id := range ids {
		delta[id] = 0
	}
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		if w == source {
			continue
		}
		if sigma[w] == 0 {
			continue
		}
		for _, v := range predecessors[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		centrality[w] += delta[w]
	}
}
