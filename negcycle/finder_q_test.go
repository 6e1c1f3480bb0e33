package negcycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
)

// requireSuccChain checks that a successor cycle lists edges head-to-tail.
func requireSuccChain(t *testing.T, c negcycle.Cycle[arc]) {
	t.Helper()
	require.NotEmpty(t, c)
	for i := range c {
		next := c[(i+1)%len(c)]
		require.Equal(t, c[i].to, next.from, "edge %d head must be edge %d tail", i, i+1)
	}
}

func TestFinderQ_BothDirectionsAgreeOnExistence(t *testing.T) {
	cases := []struct {
		name string
		g    negcycle.MapDigraph[string, numeric.Float]
		neg  bool
	}{
		{"timing tcp=10", timingGraph(10), false},
		{"timing tcp=7", timingGraph(7), false},
		{"timing tcp=5", timingGraph(5), true},
		{"simple tcp=4", simpleTiming(4), false},
		{"simple tcp=3", simpleTiming(3), false},
		{"simple tcp=2", simpleTiming(2), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := negcycle.NewFinderQ[string, numeric.Float, numeric.Float](tc.g)

			pred := f.HowardPred(zeros[string, numeric.Float, numeric.Float](tc.g), identity[numeric.Float])
			succ := f.HowardSucc(zeros[string, numeric.Float, numeric.Float](tc.g), identity[numeric.Float])

			assert.Equal(t, tc.neg, len(pred) > 0, "pred")
			assert.Equal(t, tc.neg, len(succ) > 0, "succ")
			for _, c := range append(pred, succ...) {
				assert.True(t, numeric.Sum[numeric.Float](c...).Less(0))
			}
		})
	}
}

func TestFinderQ_SuccFixpointRaisesTails(t *testing.T) {
	g := simpleTiming(3)
	f := negcycle.NewFinderQ[string, numeric.Float, numeric.Float](g)
	dist := zeros[string, numeric.Float, numeric.Float](g)

	require.Empty(t, f.HowardSucc(dist, identity[numeric.Float]))
	assert.Equal(t, map[string]numeric.Float{"v1": 0, "v2": 1, "v3": 1}, dist)
}

func TestFinderQ_CycleOrientation(t *testing.T) {
	g := arcGraph(
		arc{"a", "b", 2}, arc{"b", "c", -1}, arc{"c", "a", -3},
		arc{"a", "d", 1}, arc{"d", "a", 1},
	)
	f := negcycle.NewFinderQ[string, arc, numeric.Int](g)

	pred := f.HowardPred(map[string]numeric.Int{}, arcWeight)
	require.Len(t, pred, 1)
	requirePredChain(t, pred[0])

	succ := f.HowardSucc(map[string]numeric.Int{}, arcWeight)
	require.Len(t, succ, 1)
	requireSuccChain(t, succ[0])

	// Same edge set, traversed in opposite orders.
	assert.ElementsMatch(t, pred[0], succ[0])
	assert.Equal(t, numeric.Int(-2), cycleWeight(succ[0]))
}

func TestFinderQ_SelfLoop(t *testing.T) {
	g := arcGraph(arc{"x", "x", -1})
	f := negcycle.NewFinderQ[string, arc, numeric.Int](g)

	assert.Len(t, f.HowardPred(map[string]numeric.Int{}, arcWeight), 1)
	assert.Len(t, f.HowardSucc(map[string]numeric.Int{}, arcWeight), 1)
}

func TestFinderQ_NoEdgesAndMultipleCycles(t *testing.T) {
	empty := negcycle.MapDigraph[int, numeric.Int]{0: {}, 1: {}, 2: {}}
	f := negcycle.NewFinderQ[int, numeric.Int, numeric.Int](empty)
	assert.Empty(t, f.HowardPred(map[int]numeric.Int{}, identity[numeric.Int]))
	assert.Empty(t, f.HowardSucc(map[int]numeric.Int{}, identity[numeric.Int]))

	g := arcGraph(
		arc{"a", "b", -1}, arc{"b", "a", -1},
		arc{"c", "d", -1}, arc{"d", "c", -1},
	)
	q := negcycle.NewFinderQ[string, arc, numeric.Int](g)
	for _, c := range q.HowardSucc(map[string]numeric.Int{}, arcWeight) {
		requireSuccChain(t, c)
		assert.Equal(t, numeric.Int(-2), cycleWeight(c))
	}
	assert.NotEmpty(t, q.HowardPred(map[string]numeric.Int{}, arcWeight))
}

func TestFinderQ_DirectionsDoNotShareState(t *testing.T) {
	g := arcGraph(arc{"a", "b", 1}, arc{"b", "a", -2})
	f := negcycle.NewFinderQ[string, arc, numeric.Int](g)

	require.NotEmpty(t, f.HowardSucc(map[string]numeric.Int{}, arcWeight))
	// Predecessor search under a harmless weighting must not see the
	// successor pointers left behind.
	assert.Empty(t, f.HowardPred(map[string]numeric.Int{}, func(arc) numeric.Int { return 1 }))
	require.NotEmpty(t, f.HowardPred(map[string]numeric.Int{}, arcWeight))
	assert.Empty(t, f.HowardSucc(map[string]numeric.Int{}, func(arc) numeric.Int { return 1 }))
}

func TestFinderQ_RelaxSingleSteps(t *testing.T) {
	g := negcycle.MapDigraph[string, numeric.Int]{"a": {"b": -1}, "b": {}}
	f := negcycle.NewFinderQ[string, numeric.Int, numeric.Int](g)

	pdist := map[string]numeric.Int{}
	assert.True(t, f.RelaxPred(pdist, identity[numeric.Int]))
	assert.Equal(t, numeric.Int(-1), pdist["b"])

	sdist := map[string]numeric.Int{}
	assert.True(t, f.RelaxSucc(sdist, identity[numeric.Int]))
	assert.Equal(t, numeric.Int(1), sdist["a"])
	assert.False(t, f.RelaxSucc(sdist, identity[numeric.Int]))
}

func TestFinderQ_UpdateOKAppliesToBothDirections(t *testing.T) {
	g := simpleTiming(2)
	reject := func(current, candidate numeric.Float) bool { return false }
	f := negcycle.NewFinderQ[string, numeric.Float, numeric.Float](g, negcycle.WithUpdateOK(reject))

	assert.Empty(t, f.HowardPred(map[string]numeric.Float{}, identity[numeric.Float]))
	assert.Empty(t, f.HowardSucc(map[string]numeric.Float{}, identity[numeric.Float]))
	assert.Equal(t, 1, f.Passes())
}

func TestFinderQ_ConstructorPanics(t *testing.T) {
	assert.PanicsWithValue(t, negcycle.ErrNilGraph.Error(), func() {
		negcycle.NewFinderQ[string, numeric.Int, numeric.Int](nil)
	})
}

func TestFinderQ_SuccBlindToInfiniteSeeds(t *testing.T) {
	f := negcycle.NewFinderQ[string, arc, numeric.Float](relaxationGraph(t))

	// +Inf heads drag every tail up to +Inf; no pointer cycle can form.
	dist := sourceSeeds()
	assert.Empty(t, f.HowardSucc(dist, arcFloat))
	for v, d := range dist {
		assert.True(t, d.IsInf(), "dist[%s] = %v", v, d)
	}

	// The successor counterpart of a source seed: -Inf on the other nodes.
	dist = map[string]numeric.Float{"a": 0, "b": numeric.Inf(-1), "c": numeric.Inf(-1)}
	cycles := f.HowardSucc(dist, arcFloat)
	require.NotEmpty(t, cycles)
	for _, c := range cycles {
		requireSuccChain(t, c)
		assert.Less(t, int(cycleWeight(c)), 0)
	}

	// Zero seeds work in both directions.
	cycles = f.HowardSucc(map[string]numeric.Float{}, arcFloat)
	require.NotEmpty(t, cycles)
	for _, c := range cycles {
		requireSuccChain(t, c)
		assert.Less(t, int(cycleWeight(c)), 0)
	}
	assert.NotEmpty(t, f.HowardPred(sourceSeeds(), arcFloat))
}
