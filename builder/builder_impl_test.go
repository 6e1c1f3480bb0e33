package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraphx/builder"
	"github.com/katalvlaran/digraphx/tinydigraph"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *tinydigraph.TinyDiGraph[int, float64] {
	t.Helper()
	g, err := builder.Build(builder.Weight, opts, cons...)
	require.NoError(t, err)

	return g
}

// TestBuilders_Functional checks counts and arcs for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		opts  []builder.BuilderOption
		wantV int
		wantE int
		has   [][2]int
		lacks [][2]int
	}{
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			has: [][2]int{{0, 1}, {3, 4}, {4, 0}}, lacks: [][2]int{{1, 0}}},
		{name: "Cycle(1)", ctor: builder.Cycle(1), wantV: 1, wantE: 1, has: [][2]int{{0, 0}}},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			has: [][2]int{{0, 1}, {2, 3}}, lacks: [][2]int{{3, 0}}},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			has: [][2]int{{0, 3}, {3, 0}}, lacks: [][2]int{{2, 2}}},
		{name: "RandomSparse p=0", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0},
		{name: "RandomSparse p=1", ctor: builder.RandomSparse(4, 1), wantV: 4, wantE: 12, lacks: [][2]int{{1, 1}}},
		{name: "RandomSparse p=1 loops", ctor: builder.RandomSparse(3, 1),
			opts: []builder.BuilderOption{builder.WithLoops()}, wantV: 3, wantE: 9, has: [][2]int{{1, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.opts, tc.ctor)
			assert.Equal(t, tc.wantV, g.NumberOfNodes())
			assert.Equal(t, tc.wantE, g.NumberOfEdges())
			for _, p := range tc.has {
				w, ok := g.Edge(p[0], p[1])
				assert.True(t, ok, "missing %d→%d", p[0], p[1])
				assert.Equal(t, builder.DefaultEdgeWeight, w)
			}
			for _, p := range tc.lacks {
				assert.False(t, g.HasEdge(p[0], p[1]), "unexpected %d→%d", p[0], p[1])
			}
		})
	}
}

// TestBuild_Composition shares the node range; duplicate pairs collapse.
func TestBuild_Composition(t *testing.T) {
	g := build(t, nil, builder.Cycle(4), builder.Complete(3))
	assert.Equal(t, 4, g.NumberOfNodes())
	assert.Equal(t, 8, g.NumberOfEdges())
}

// TestBuild_LaterArcWins checks that a repeated pair keeps the last weight.
func TestBuild_LaterArcWins(t *testing.T) {
	g, err := builder.Build(builder.Weight, []builder.BuilderOption{builder.WithIntWeight(-5, -5)},
		builder.Cycle(2))
	require.NoError(t, err)
	w, _ := g.Edge(0, 1)
	assert.Equal(t, -5.0, w)

	g2, err := builder.Build(builder.Weight, nil, builder.Cycle(2), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 2, g2.NumberOfEdges())
}

// TestBuild_EdgeFn maps arcs to a custom edge type.
func TestBuild_EdgeFn(t *testing.T) {
	type span struct{ from, to, w int }
	edge := func(u, v int, w float64) span { return span{u, v, int(w)} }

	g, err := builder.Build(edge, []builder.BuilderOption{builder.WithConstantWeight(-2)}, builder.Path(3))
	require.NoError(t, err)
	e, ok := g.Edge(1, 2)
	require.True(t, ok)
	assert.Equal(t, span{1, 2, -2}, e)
}

// TestBuild_Errors asserts sentinel classification via errors.Is.
func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(0)", builder.Cycle(0), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse n=0", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse p<0", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse p>1", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(builder.Weight, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	_, err := builder.Build[float64](nil, nil, builder.Cycle(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestRandomSparse_Deterministic checks that a seed pins arcs and weights.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	opts := func(seed int64) []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(-3, 9)}
	}
	a := build(t, opts(11), builder.RandomSparse(20, 0.2))
	b := build(t, opts(11), builder.RandomSparse(20, 0.2))
	c := build(t, opts(12), builder.RandomSparse(20, 0.2))

	assert.Equal(t, a.Edges(), b.Edges())
	assert.NotEqual(t, a.Edges(), c.Edges())
	for _, arc := range a.Edges() {
		assert.NotEqual(t, arc.From, arc.To)
		assert.GreaterOrEqual(t, arc.Edge, -3.0)
		assert.LessOrEqual(t, arc.Edge, 9.0)
	}
}
