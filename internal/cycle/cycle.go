package cycle

import "strings"

// Three-colour DFS states.
const (
	white = 0 // unvisited
	gray  = 1 // on the current DFS path
	black = 2 // fully explored
)

// Detect finds the cycles in the dependency subgraph described by adj that
// a three-colour DFS closes through a back edge to a gray node; a cycle
// that can only be entered through an already fully explored (black) node
// is not reported. Propositions are visited in the order given by ids
// (which should be
// input/proposition order, so discovery order — and therefore the returned
// order — is deterministic).
//
// adj must already be restricted to dependency edges (see
// graphmodel.Graph.DependencyAdjacency); Detect does not filter edge kinds
// itself.
func Detect(ids []string, adj map[string][]string) [][]string {
	color := make(map[string]int, len(ids))
	for _, id := range ids {
		color[id] = white
	}

	var (
		path   []string
		cycles [][]string
		seen   = make(map[string]struct{})
	)

	var visit func(id string)
	visit = func(id string) {
		color[id] = gray
		path = append(path, id)

		for _, nbr := range adj[id] {
			switch color[nbr] {
			case white:
				visit(nbr)
			case gray:
				// Back-edge to an ancestor (possibly id itself, for a
				// self-loop): the cycle runs from that ancestor's position
				// on the path to the current tail.
				idx := indexOf(path, nbr)
				if idx < 0 {
					continue
				}
				seq := append([]string(nil), path[idx:]...)
				recordCycle(seq, seen, &cycles)
			case black:
				// fully explored, no back-edge possible
			}
		}

		path = path[:len(path)-1]
		color[id] = black
	}

	for _, id := range ids {
		if color[id] == white {
			visit(id)
		}
	}

	return cycles
}

// recordCycle normalises seq by rotation and appends it to cycles if its
// signature has not been seen before.
func recordCycle(seq []string, seen map[string]struct{}, cycles *[][]string) {
	norm := normalize(seq)
	sig := strings.Join(norm, ",")
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, norm)
}

// normalize rotates cycle so its lexicographically smallest identifier is
// first. Cycles are directed (dependency edges only), so unlike an
// undirected rotation-canonicalisation there is no reversal step.
func normalize(cyc []string) []string {
	if len(cyc) <= 1 {
		return append([]string(nil), cyc...)
	}
	minIdx := 0
	for i, v := range cyc {
		if v < cyc[minIdx] {
			minIdx = i
		}
	}
	n := len(cyc)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = cyc[(minIdx+i)%n]
	}

	return out
}

func indexOf(path []string, id string) int {
	for i, v := range path {
		if v == id {
			return i
		}
	}

	return -1
}
