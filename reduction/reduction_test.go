package reduction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

// passEntry builds an edge whose Apply passes the instance through
// unchanged; enough for search and overhead tests that never execute.
func passEntry(src, dst string, ov poly.Overhead) registry.Entry {
	return registry.Entry{
		SourceName:       src,
		TargetName:       dst,
		SourceVariant:    variant.Variant{},
		TargetVariant:    variant.Variant{},
		Overhead:         func() poly.Overhead { return ov },
		Apply:            func(s any) (any, registry.Extractor, error) { return s, registry.IdentityExtractor, nil },
		SourceSizeFields: []string{"n"},
		TargetSizeFields: []string{"n"},
		Origin:           "reduction_test",
	}
}

func identityOv() poly.Overhead { return poly.Identity("n") }

func TestFindCheapestPath_MinimizeSteps(t *testing.T) {
	// Diamond: A -> B -> D plus the direct A -> D edge.
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", identityOv()),
		passEntry("B", "D", identityOv()),
		passEntry("A", "D", identityOv()),
	})
	require.NoError(t, err)

	p := g.FindCheapestPath("A", nil, "D", nil, poly.ProblemSize{"n": 4}, MinimizeSteps{})
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, "A -> D", p.String())
}

func TestFindCheapestPath_MinimizeField(t *testing.T) {
	// The direct edge squares n; the detour only increments it. Starting
	// from n=5 the detour is cheaper (6+7=13 versus 25) even though it
	// takes two hops.
	square := poly.NewOverhead(poly.Term("n", poly.VarPowP("n", 2)))
	inc := poly.NewOverhead(poly.Term("n", poly.Var("n").Add(poly.Constant(1))))

	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", square),
		passEntry("A", "C", inc),
		passEntry("C", "B", inc),
	})
	require.NoError(t, err)

	p := g.FindCheapestPath("A", nil, "B", nil, poly.ProblemSize{"n": 5}, Minimize("n"))
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "C", "B"}, p.TypeNames())

	// MinimizeSteps flips the preference to the direct edge.
	p = g.FindCheapestPath("A", nil, "B", nil, poly.ProblemSize{"n": 5}, MinimizeSteps{})
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "B"}, p.TypeNames())
}

func TestFindCheapestPath_SourceEqualsDestination(t *testing.T) {
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", identityOv()),
	})
	require.NoError(t, err)

	p := g.FindCheapestPath("A", nil, "A", nil, poly.ProblemSize{"n": 1}, MinimizeSteps{})
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "A", p.String())
}

func TestFindCheapestPath_Absence(t *testing.T) {
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", identityOv()),
		passEntry("C", "D", identityOv()),
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		src, dst string
	}{
		{"no route between components", "A", "D"},
		{"edge direction is respected", "B", "A"},
		{"unknown source", "X", "B"},
		{"unknown destination", "A", "X"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := g.FindCheapestPath(tc.src, nil, tc.dst, nil, poly.ProblemSize{"n": 1}, MinimizeSteps{})
			assert.Nil(t, p)
		})
	}
}

func TestFindCheapestPath_OptimalVersusExhaustive(t *testing.T) {
	// Five nodes, enough edges for several competing routes. The search
	// result must match the cheapest simple path found by brute force.
	grow := func(c int) poly.Overhead {
		return poly.NewOverhead(poly.Term("n", poly.Var("n").Add(poly.Constant(float64(c)))))
	}
	entries := []registry.Entry{
		passEntry("A", "B", grow(1)),
		passEntry("A", "C", grow(9)),
		passEntry("B", "C", grow(1)),
		passEntry("B", "E", grow(30)),
		passEntry("C", "D", grow(1)),
		passEntry("C", "E", grow(12)),
		passEntry("D", "E", grow(1)),
	}
	g, err := NewGraphFromEntries(entries)
	require.NoError(t, err)

	adj := make(map[string][]registry.Entry)
	for _, e := range entries {
		adj[e.SourceName] = append(adj[e.SourceName], e)
	}

	// Exhaustive DFS over simple paths from A to E under Minimize("n").
	best := -1.0
	var dfs func(node string, size poly.ProblemSize, cost float64, seen map[string]bool)
	dfs = func(node string, size poly.ProblemSize, cost float64, seen map[string]bool) {
		if node == "E" {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for _, e := range adj[node] {
			if seen[e.TargetName] {
				continue
			}
			seen[e.TargetName] = true
			o := e.Overhead()
			dfs(e.TargetName, o.EvaluateOutputSize(size), cost+Minimize("n").EdgeCost(o, size), seen)
			seen[e.TargetName] = false
		}
	}
	start := poly.ProblemSize{"n": 10}
	dfs("A", start, 0, map[string]bool{"A": true})
	require.GreaterOrEqual(t, best, 0.0)

	p := g.FindCheapestPath("A", nil, "E", nil, start, Minimize("n"))
	require.NotNil(t, p)
	o, err := g.ComposePathOverhead(p)
	require.NoError(t, err)

	// Recompute the found path's cost hop by hop and compare.
	got := 0.0
	size := start
	for hop := 0; hop < p.Len(); hop++ {
		e, ok := g.findEdge(p.Steps[hop], p.Steps[hop+1])
		require.True(t, ok)
		eo := e.Overhead()
		got += Minimize("n").EdgeCost(eo, size)
		size = eo.EvaluateOutputSize(size)
	}
	assert.InDelta(t, best, got, 1e-9)
	assert.Equal(t, size, o.EvaluateOutputSize(start))
}

func TestMinimizeLexicographic(t *testing.T) {
	ov := poly.NewOverhead(
		poly.Term("num_vertices", poly.Var("num_vertices").Scale(2)),
		poly.Term("num_edges", poly.Var("num_edges")),
	)
	cost := MinimizeLexicographic{"num_vertices", "num_edges"}
	c := cost.EdgeCost(ov, poly.ProblemSize{"num_vertices": 10, "num_edges": 5})

	// Primary field dominates; the secondary only perturbs far below 1.
	assert.Greater(t, c, 20.0)
	assert.Less(t, c, 20.001)
}

func TestCostFuncs_AbsentFieldIsZero(t *testing.T) {
	ov := poly.NewOverhead(poly.Term("n", poly.Var("n")))
	size := poly.ProblemSize{"n": 7}

	assert.Equal(t, 0.0, Minimize("missing").EdgeCost(ov, size))
	assert.Equal(t, 0.0, MinimizeMax{"missing"}.EdgeCost(ov, size))
	assert.Equal(t, 7.0, MinimizeWeighted{{Field: "n", Weight: 1}, {Field: "missing", Weight: 100}}.EdgeCost(ov, size))
}

func TestComposePathOverhead_RoundTrip(t *testing.T) {
	// h1: n' = 2n+1, m' = m; h2: k = n*m. Composed symbolically the path
	// must evaluate exactly like the two hops run in sequence.
	h1 := poly.NewOverhead(
		poly.Term("n", poly.Var("n").Scale(2).Add(poly.Constant(1))),
		poly.Term("m", poly.Var("m")),
	)
	h2 := poly.NewOverhead(
		poly.Term("k", poly.Var("n").Mul(poly.Var("m"))),
	)
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", h1),
		passEntry("B", "C", h2),
	})
	require.NoError(t, err)

	p := g.FindCheapestPath("A", nil, "C", nil, poly.ProblemSize{}, MinimizeSteps{})
	require.NotNil(t, p)

	total, err := g.ComposePathOverhead(p)
	require.NoError(t, err)

	input := poly.ProblemSize{"n": 3, "m": 4}
	sequential := h2.EvaluateOutputSize(h1.EvaluateOutputSize(input))
	assert.True(t, total.EvaluateOutputSize(input).Equal(sequential))
	assert.Equal(t, 28, sequential.Get("k"))
}

func TestComposePathOverhead_SingleNode(t *testing.T) {
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", identityOv()),
	})
	require.NoError(t, err)

	p := &Path{Steps: []Step{{Name: "A", Variant: nil}}}
	o, err := g.ComposePathOverhead(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, o.Fields())
	assert.Equal(t, 5, o.EvaluateOutputSize(poly.ProblemSize{"n": 5}).Get("n"))
}

func TestComposePathOverhead_Errors(t *testing.T) {
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", identityOv()),
	})
	require.NoError(t, err)

	_, err = g.ComposePathOverhead(&Path{})
	assert.ErrorIs(t, err, ErrEmptyPath)

	// B -> A exists as nodes but not as an edge.
	bad := &Path{Steps: []Step{{Name: "B"}, {Name: "A"}}}
	_, err = g.ComposePathOverhead(bad)
	assert.ErrorIs(t, err, ErrMissingEdge)
}

// counter is a minimal concrete instance for chain tests.
type counter struct{ n int }

func TestReduceAlongPath(t *testing.T) {
	// Two hops with distinct extractors so composition order is visible:
	// target solution -> hop2 extract (x*10) -> hop1 extract (x+1).
	hop := func(src, dst string, f func(int) int, extract registry.Extractor) registry.Entry {
		e := passEntry(src, dst, identityOv())
		e.Apply = func(s any) (any, registry.Extractor, error) {
			c, ok := s.(*counter)
			if !ok {
				return nil, nil, registry.ErrTypeMismatch
			}
			return &counter{n: f(c.n)}, extract, nil
		}
		return e
	}
	addOne := func(sol []int) []int {
		out := make([]int, len(sol))
		for i, v := range sol {
			out[i] = v + 1
		}
		return out
	}
	timesTen := func(sol []int) []int {
		out := make([]int, len(sol))
		for i, v := range sol {
			out[i] = v * 10
		}
		return out
	}

	g, err := NewGraphFromEntries([]registry.Entry{
		hop("A", "B", func(n int) int { return n + 100 }, addOne),
		hop("B", "C", func(n int) int { return n * 2 }, timesTen),
	})
	require.NoError(t, err)

	p := g.FindCheapestPath("A", nil, "C", nil, poly.ProblemSize{"n": 1}, MinimizeSteps{})
	require.NotNil(t, p)

	chain, err := g.ReduceAlongPath(p, &counter{n: 1})
	require.NoError(t, err)

	final, err := TargetProblem[*counter](chain)
	require.NoError(t, err)
	assert.Equal(t, 202, final.n)

	// [1,2] through hop2 first, then hop1: *10 then +1.
	assert.Equal(t, []int{11, 21}, chain.ExtractSolution([]int{1, 2}))
	assert.Same(t, p, chain.Path())
}

func TestReduceAlongPath_SingleNodeIsIdentity(t *testing.T) {
	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", identityOv()),
	})
	require.NoError(t, err)

	src := &counter{n: 7}
	chain, err := g.ReduceAlongPath(&Path{Steps: []Step{{Name: "A"}}}, src)
	require.NoError(t, err)
	assert.Same(t, src, chain.Target())
	assert.Equal(t, []int{1, 0, 1}, chain.ExtractSolution([]int{1, 0, 1}))
}

func TestReduceAlongPath_Errors(t *testing.T) {
	typed := passEntry("A", "B", identityOv())
	typed.Apply = func(s any) (any, registry.Extractor, error) {
		if _, ok := s.(*counter); !ok {
			return nil, nil, registry.ErrTypeMismatch
		}
		return s, registry.IdentityExtractor, nil
	}
	g, err := NewGraphFromEntries([]registry.Entry{typed})
	require.NoError(t, err)

	_, err = g.ReduceAlongPath(&Path{}, &counter{})
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = g.ReduceAlongPath(&Path{Steps: []Step{{Name: "B"}, {Name: "A"}}}, &counter{})
	assert.ErrorIs(t, err, ErrMissingEdge)

	_, err = g.ReduceAlongPath(&Path{Steps: []Step{{Name: "A"}, {Name: "B"}}}, "not a counter")
	assert.ErrorIs(t, err, registry.ErrTypeMismatch)
}

func TestTargetProblem_WrongType(t *testing.T) {
	c := &Chain{target: &counter{n: 1}}
	_, err := TargetProblem[string](c)
	assert.ErrorIs(t, err, ErrWrongTargetType)
}

func TestGraphIntrospection(t *testing.T) {
	vInt := variant.MustNew(variant.Weight("Int"))
	e := passEntry("A", "B", identityOv())
	e.TargetVariant = vInt

	g, err := NewGraphFromEntries(
		[]registry.Entry{e, passEntry("A", "B", identityOv())},
		registry.VariantNode{Name: "C", Variant: nil, SizeFields: []string{"n"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumTypes())
	assert.Equal(t, 4, g.NumVariantNodes()) // A, B, B{Int}, C
	assert.Equal(t, 2, g.NumReductions())
	assert.True(t, g.HasNode("C", nil))
	assert.False(t, g.HasNode("C", vInt))
	assert.Len(t, g.VariantsOf("B"), 2)
	assert.Len(t, g.OutgoingReductions("A"), 2)
}

func TestToJSON(t *testing.T) {
	ov := poly.NewOverhead(poly.Term("n", poly.Var("n").Scale(2)))
	g, err := NewGraphFromEntries([]registry.Entry{passEntry("A", "B", ov)})
	require.NoError(t, err)

	j := g.ToJSON()
	require.Len(t, j.Nodes, 2)
	require.Len(t, j.Edges, 1)
	assert.Equal(t, "A", j.Nodes[0].Name)
	assert.Equal(t, "A", j.Edges[0].Source)
	assert.Equal(t, "B", j.Edges[0].Target)
	assert.Equal(t, "2*n", j.Edges[0].Overhead["n"])

	s, err := g.ToJSONString()
	require.NoError(t, err)
	assert.True(t, strings.Contains(s, `"nodes"`))

	// Deterministic across rebuilds.
	g2, err := NewGraphFromEntries([]registry.Entry{passEntry("A", "B", ov)})
	require.NoError(t, err)
	s2, err := g2.ToJSONString()
	require.NoError(t, err)
	assert.Equal(t, s, s2)
}

func TestPathCost(t *testing.T) {
	square := poly.NewOverhead(poly.Term("n", poly.VarPowP("n", 2)))
	inc := poly.NewOverhead(poly.Term("n", poly.Var("n").Add(poly.Constant(1))))

	g, err := NewGraphFromEntries([]registry.Entry{
		passEntry("A", "B", square),
		passEntry("A", "C", inc),
		passEntry("C", "B", inc),
	})
	require.NoError(t, err)
	size := poly.ProblemSize{"n": 5}

	direct := &Path{Steps: []Step{{Name: "A"}, {Name: "B"}}}
	detour := &Path{Steps: []Step{{Name: "A"}, {Name: "C"}, {Name: "B"}}}

	c, err := g.PathCost(direct, size, Minimize("n"))
	require.NoError(t, err)
	assert.Equal(t, 25.0, c)
	c, err = g.PathCost(detour, size, Minimize("n"))
	require.NoError(t, err)
	assert.Equal(t, 13.0, c) // 6 after the first hop, then 7

	c, err = g.PathCost(detour, size, MinimizeSteps{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, c)

	// A single-node path costs nothing.
	c, err = g.PathCost(&Path{Steps: []Step{{Name: "A"}}}, size, Minimize("n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)

	_, err = g.PathCost(&Path{}, size, MinimizeSteps{})
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = g.PathCost(&Path{Steps: []Step{{Name: "X"}, {Name: "B"}}}, size, MinimizeSteps{})
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = g.PathCost(&Path{Steps: []Step{{Name: "B"}, {Name: "A"}}}, size, MinimizeSteps{})
	assert.ErrorIs(t, err, ErrMissingEdge)
	assert.Panics(t, func() { _, _ = g.PathCost(direct, size, nil) })
}
