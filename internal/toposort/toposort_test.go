package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arguelabs/clarity-engine/internal/toposort"
)

func TestSort_LinearChain(t *testing.T) {
	ids := []string{"A", "B", "C"}
	adj := map[string][]string{"A": {"B"}, "B": {"C"}, "C": nil}
	order := toposort.Sort(ids, adj)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestSort_DiamondDependency(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	adj := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": nil,
	}
	order := toposort.Sort(ids, adj)
	assert.Len(t, order, 4)
	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["A"], pos["D"])
}

func TestSort_CycleExcluded(t *testing.T) {
	ids := []string{"A", "B", "C"}
	adj := map[string][]string{"A": {"B"}, "B": {"A"}, "C": nil}
	order := toposort.Sort(ids, adj)
	assert.Equal(t, []string{"C"}, order)
}

func TestSort_TieBreaksLexicographically(t *testing.T) {
	ids := []string{"C", "B", "A"}
	adj := map[string][]string{"A": nil, "B": nil, "C": nil}
	order := toposort.Sort(ids, adj)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}
