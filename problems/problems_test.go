package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathGraph4(t *testing.T) *UndirectedGraph {
	t.Helper()
	g, err := NewUndirectedGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	return g
}

func TestUndirectedGraph(t *testing.T) {
	g, err := NewUndirectedGraph(3, [][2]int{{0, 1}, {1, 0}, {2, 1}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges()) // duplicate (1,0) dropped
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 2, g.Degree(1))

	_, err = NewUndirectedGraph(2, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, ErrVertexRange)
	_, err = NewUndirectedGraph(2, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, ErrSelfLoop)
}

func TestIndependentSet(t *testing.T) {
	p, err := NewIndependentSet(pathGraph4(t))
	require.NoError(t, err)
	assert.Equal(t, "IndependentSet", p.Name())
	assert.Equal(t, "graph=SimpleGraph,weight=One", p.Variant().String())
	assert.Equal(t, 4, p.Size().Get("num_vertices"))
	assert.Equal(t, 3, p.Size().Get("num_edges"))

	tests := []struct {
		name   string
		config []int
		value  float64
		valid  bool
	}{
		{"empty set", []int{0, 0, 0, 0}, 0, true},
		{"alternating", []int{1, 0, 1, 0}, 2, true},
		{"endpoints", []int{1, 0, 0, 1}, 2, true},
		{"adjacent pair", []int{1, 1, 0, 0}, 0, false},
		{"wrong length", []int{1, 0}, 0, false},
		{"out of range flavor", []int{2, 0, 0, 0}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := p.Evaluate(tc.config)
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.Equal(t, tc.value, v)
			}
		})
	}
}

func TestIndependentSetWeighted(t *testing.T) {
	p, err := NewIndependentSet(pathGraph4(t), WithVertexWeights([]int{5, 1, 1, 5}))
	require.NoError(t, err)
	assert.Equal(t, "graph=SimpleGraph,weight=Int", p.Variant().String())
	v, ok := p.Evaluate([]int{1, 0, 0, 1})
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, err = NewIndependentSet(pathGraph4(t), WithVertexWeights([]int{1, 2}))
	assert.ErrorIs(t, err, ErrWeightCount)
}

func TestVertexCoverComplementsIndependentSet(t *testing.T) {
	g := pathGraph4(t)
	is, err := NewIndependentSet(g)
	require.NoError(t, err)
	vc, err := NewVertexCover(g)
	require.NoError(t, err)

	// Flipping a valid cover yields an independent set and vice versa.
	cover := []int{0, 1, 0, 1}
	_, ok := vc.Evaluate(cover)
	require.True(t, ok)
	flipped := make([]int, len(cover))
	for i, x := range cover {
		flipped[i] = 1 - x
	}
	_, ok = is.Evaluate(flipped)
	assert.True(t, ok)
}

func TestDominatingSet(t *testing.T) {
	p, err := NewDominatingSet(pathGraph4(t))
	require.NoError(t, err)
	_, ok := p.Evaluate([]int{0, 1, 0, 1})
	assert.True(t, ok)
	_, ok = p.Evaluate([]int{1, 0, 0, 0})
	assert.False(t, ok) // vertices 2 and 3 undominated
	v, ok := p.Evaluate([]int{0, 1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestMatching(t *testing.T) {
	p, err := NewMatching(pathGraph4(t))
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumVariables()) // one variable per edge

	v, ok := p.Evaluate([]int{1, 0, 1})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = p.Evaluate([]int{1, 1, 0}) // edges (0,1) and (1,2) share vertex 1
	assert.False(t, ok)
}

func TestMaxCut(t *testing.T) {
	g, err := NewUndirectedGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	p, err := NewMaxCut(g, WithEdgeWeights([]int{1, 2, 3}))
	require.NoError(t, err)

	// Triangle: any bipartition cuts exactly two edges.
	v, ok := p.Evaluate([]int{0, 1, 1})
	require.True(t, ok)
	assert.Equal(t, 3.0, v) // cuts edges (0,1) and (0,2)
	v, ok = p.Evaluate([]int{0, 0, 0})
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestColoring(t *testing.T) {
	g, err := NewUndirectedGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	p, err := NewColoring(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumFlavors())
	assert.Equal(t, "3", mustGet(t, p, "k"))

	v, ok := p.Evaluate([]int{0, 1, 2})
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	v, ok = p.Evaluate([]int{0, 0, 1})
	assert.False(t, ok)
	assert.Equal(t, 2.0, v)

	_, err = NewColoring(g, 0)
	assert.Error(t, err)
}

func mustGet(t *testing.T, p Problem, key string) string {
	t.Helper()
	for k, v := range p.Variant() {
		if k.String() == key {
			return v
		}
	}
	t.Fatalf("variant key %q not found", key)
	return ""
}

func TestSetPacking(t *testing.T) {
	p, err := NewSetPacking([][]int{{0, 1}, {1, 2}, {3}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size().Get("num_sets"))
	assert.Equal(t, 4, p.Size().Get("num_elements"))

	v, ok := p.Evaluate([]int{1, 0, 1})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = p.Evaluate([]int{1, 1, 0}) // both contain element 1
	assert.False(t, ok)
}

func TestSetCovering(t *testing.T) {
	p, err := NewSetCovering(4, [][]int{{0, 1}, {2}, {2, 3}})
	require.NoError(t, err)

	v, ok := p.Evaluate([]int{1, 0, 1})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = p.Evaluate([]int{1, 1, 0}) // element 3 uncovered
	assert.False(t, ok)

	_, err = NewSetCovering(2, [][]int{{0, 5}})
	assert.Error(t, err)
}

func TestSpinGlass(t *testing.T) {
	// Two antiferromagnetic spins: J=1 favors opposite spins.
	p, err := NewSpinGlass(2, []Interaction{{I: 0, J: 1, Coupling: 1}}, nil)
	require.NoError(t, err)

	same, ok := p.Evaluate([]int{1, 1})
	require.True(t, ok)
	opposite, ok := p.Evaluate([]int{0, 1})
	require.True(t, ok)
	assert.Equal(t, 1.0, same)
	assert.Equal(t, -1.0, opposite)

	_, err = NewSpinGlass(2, []Interaction{{I: 0, J: 0, Coupling: 1}}, nil)
	assert.Error(t, err)
}

func TestQUBO(t *testing.T) {
	// Lower-triangle input folds into the canonical upper triangle.
	p, err := NewQUBO([][]float64{
		{-1, 0},
		{2, -1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Matrix()[0][1])

	v, ok := p.Evaluate([]int{1, 1})
	require.True(t, ok)
	assert.Equal(t, 0.0, v) // -1 - 1 + 2
	v, ok = p.Evaluate([]int{1, 0})
	require.True(t, ok)
	assert.Equal(t, -1.0, v)
}

func TestSatisfiability(t *testing.T) {
	p, err := NewSatisfiability(3, []Clause{{1, -2}, {2, 3}, {-1, -3}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size().Get("num_clauses"))
	assert.Equal(t, 6, p.Size().Get("num_literals"))

	v, ok := p.Evaluate([]int{1, 1, 0})
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	v, ok = p.Evaluate([]int{0, 0, 0})
	assert.False(t, ok) // clause (2 v 3) unsatisfied
	assert.Equal(t, 2.0, v)

	_, err = NewSatisfiability(2, []Clause{{0}})
	assert.ErrorIs(t, err, ErrBadClause)
	_, err = NewSatisfiability(2, []Clause{{3}})
	assert.ErrorIs(t, err, ErrBadClause)
}

func TestKSatisfiability(t *testing.T) {
	p, err := NewKSatisfiability(3, 4, []Clause{{1, 2, 3}, {-1, -2, 4}})
	require.NoError(t, err)
	assert.Equal(t, "KSatisfiability", p.Name())
	assert.Equal(t, "k=3", p.Variant().String())

	_, err = NewKSatisfiability(3, 4, []Clause{{1, 2}})
	assert.ErrorIs(t, err, ErrBadClause)
}

func TestGridGraph(t *testing.T) {
	// 2x3 grid, 4-connectivity: 7 edges.
	g, err := NewGridGraph(2, 3, Conn4)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumVertices())
	assert.Equal(t, 7, g.NumEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 4))

	// Same grid with diagonals: 4 more edges.
	king, err := NewGridGraph(2, 3, Conn8)
	require.NoError(t, err)
	assert.Equal(t, 11, king.NumEdges())
	assert.True(t, king.HasEdge(0, 4))

	row, col := GridCoordinate(4, 3)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}
