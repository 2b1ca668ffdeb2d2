package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arguelabs/clarity-engine/internal/cycle"
)

func TestDetect_Triangle(t *testing.T) {
	ids := []string{"A", "B", "C"}
	adj := map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	cycles := cycle.Detect(ids, adj)
	assert.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 3)
}

func TestDetect_LinearChainNoCycle(t *testing.T) {
	ids := []string{"A", "B", "C"}
	adj := map[string][]string{"A": {"B"}, "B": {"C"}, "C": nil}
	assert.Empty(t, cycle.Detect(ids, adj))
}

func TestDetect_SelfLoop(t *testing.T) {
	ids := []string{"A"}
	adj := map[string][]string{"A": {"A"}}
	cycles := cycle.Detect(ids, adj)
	assert.Equal(t, [][]string{{"A"}}, cycles)
}

func TestDetect_TwoSeparateCycles(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	adj := map[string][]string{
		"A": {"B"}, "B": {"A"},
		"C": {"D"}, "D": {"C"},
	}
	cycles := cycle.Detect(ids, adj)
	assert.Len(t, cycles, 2)
}

func TestDetect_DedupByRotation(t *testing.T) {
	// A->B->C->A discovered once; rotation-equivalent representations must
	// not appear twice even if reached from a different start node.
	ids := []string{"B", "C", "A"}
	adj := map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	cycles := cycle.Detect(ids, adj)
	assert.Len(t, cycles, 1)
	assert.Equal(t, "A", cycles[0][0], "normalised cycle starts at lexicographically smallest id")
}

func TestDetect_EmbeddedInAcyclicStructure(t *testing.T) {
	ids := []string{"E1", "E2", "C1", "A1"}
	adj := map[string][]string{
		"E1": {"C1"}, "E2": {"C1"},
		"C1": {"A1"}, "A1": {"C1"},
	}
	cycles := cycle.Detect(ids, adj)
	assert.Len(t, cycles, 1)
	assert.ElementsMatch(t, []string{"C1", "A1"}, cycles[0])
}
