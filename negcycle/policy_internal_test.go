package negcycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraphx/numeric"
)

func TestFindCycles_OneHandlePerCycle(t *testing.T) {
	g := MapDigraph[string, int]{"a": {}, "b": {}, "c": {}, "d": {}, "e": {}, "f": {}}
	point := map[string]link[string, int]{
		"a": {node: "b", edge: 1},
		"b": {node: "c", edge: 2},
		"c": {node: "a", edge: 3},
		"d": {node: "a", edge: 4}, // tail into the cycle
		"e": {node: "f", edge: 5},
		"f": {node: "e", edge: 6},
	}

	handles := findCycles(g, point)
	require.Len(t, handles, 2)

	var lengths []int
	for _, h := range handles {
		lengths = append(lengths, len(cycleList(h, point)))
	}
	assert.ElementsMatch(t, []int{3, 2}, lengths)
}

func TestFindCycles_Forest(t *testing.T) {
	g := MapDigraph[int, int]{0: {}, 1: {}, 2: {}}
	point := map[int]link[int, int]{1: {node: 0}, 2: {node: 1}}

	assert.Empty(t, findCycles(g, point))
}

func TestCycleList_MissingPointerPanics(t *testing.T) {
	point := map[string]link[string, int]{"a": {node: "b", edge: 1}}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNoPointer))
	}()
	cycleList("a", point)
}

func TestIsNegative_Orientation(t *testing.T) {
	w := func(e int) numeric.Int { return numeric.Int(e) }
	// Pointer cycle a↔b over arcs a→b (edge weight -1) and b→a (edge weight -1).
	pred := map[string]link[string, int]{"b": {node: "a", edge: -1}, "a": {node: "b", edge: -1}}
	dist := map[string]numeric.Int{"a": -2, "b": -1}

	// pred: arc a→b gives dist[a]-1 = -3 < dist[b].
	assert.True(t, isNegative("a", dist, w, pred, backward))

	tight := map[string]numeric.Int{"a": 0, "b": 0}
	positive := map[string]link[string, int]{"b": {node: "a", edge: 1}, "a": {node: "b", edge: 1}}
	assert.False(t, isNegative("a", tight, w, positive, backward))
	assert.False(t, isNegative("a", tight, w, positive, forward))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "pred", backward.String())
	assert.Equal(t, "succ", forward.String())
}
