// Graph construction and introspection: an immutable adjacency view over
// the registry's explicit entries plus synthesized natural casts.

package reduction

import (
	"fmt"
	"sort"

	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

// Graph is the reduction graph: nodes are (problem name, variant) pairs,
// edges are registry entries (explicit reductions and natural casts).
// A Graph is immutable once built and holds no per-call state, so a single
// value can serve many independent searches and executions.
type Graph struct {
	entries []registry.Entry    // all edges, explicit first, natural casts after
	nodes   map[string]Step     // node key -> node
	order   []string            // node keys, sorted, for deterministic iteration
	adj     map[string][]int    // node key -> indices into entries
	fields  map[string][]string // node key -> problem size field names
}

// NewGraph builds the graph from the global registry and the global
// subtype relation. Natural casts are synthesized fresh on every build.
// It fails if the subtype declarations contain a cycle: adjacency derived
// from a corrupted relation must not be trusted.
func NewGraph() (*Graph, error) {
	return build(append(registry.Entries(), registry.NaturalCasts()...), registry.VariantNodes())
}

// NewGraphFromEntries builds a graph from an explicit edge set, bypassing
// the global registry. Synthetic graphs built this way keep path-search
// behavior testable in isolation from load-time registrations.
func NewGraphFromEntries(entries []registry.Entry, extraNodes ...registry.VariantNode) (*Graph, error) {
	return build(entries, extraNodes)
}

func build(entries []registry.Entry, extraNodes []registry.VariantNode) (*Graph, error) {
	if err := variant.CheckAcyclic(); err != nil {
		return nil, fmt.Errorf("reduction: refusing to build graph: %w", err)
	}

	g := &Graph{
		entries: entries,
		nodes:   make(map[string]Step),
		adj:     make(map[string][]int),
		fields:  make(map[string][]string),
	}

	addNode := func(name string, v variant.Variant, sizeFields []string) string {
		key := nodeKey(name, v)
		if _, ok := g.nodes[key]; !ok {
			g.nodes[key] = Step{Name: name, Variant: v}
			g.fields[key] = append([]string(nil), sizeFields...)
		}
		return key
	}

	for i, e := range entries {
		src := addNode(e.SourceName, e.SourceVariant, e.SourceSizeFields)
		addNode(e.TargetName, e.TargetVariant, e.TargetSizeFields)
		g.adj[src] = append(g.adj[src], i)
	}
	for _, n := range extraNodes {
		addNode(n.Name, n.Variant, n.SizeFields)
	}

	g.order = make([]string, 0, len(g.nodes))
	for key := range g.nodes {
		g.order = append(g.order, key)
	}
	sort.Strings(g.order)

	return g, nil
}

// NumTypes returns the number of distinct problem family names in the graph.
func (g *Graph) NumTypes() int {
	names := make(map[string]bool)
	for _, n := range g.nodes {
		names[n.Name] = true
	}
	return len(names)
}

// NumVariantNodes returns the number of (problem, variant) nodes.
func (g *Graph) NumVariantNodes() int { return len(g.nodes) }

// NumReductions returns the number of edges, natural casts included.
func (g *Graph) NumReductions() int { return len(g.entries) }

// Nodes returns all (problem, variant) nodes in deterministic order.
func (g *Graph) Nodes() []Step {
	out := make([]Step, len(g.order))
	for i, key := range g.order {
		out[i] = g.nodes[key]
	}
	return out
}

// OutgoingReductions returns the (target name, target variant) of every
// edge leaving any variant of the named problem, in edge order.
func (g *Graph) OutgoingReductions(problemName string) []Step {
	var out []Step
	for _, e := range g.entries {
		if e.SourceName == problemName {
			out = append(out, Step{Name: e.TargetName, Variant: e.TargetVariant})
		}
	}
	return out
}

// VariantsOf returns the distinct registered variants of the named problem.
// Callers with a name-only destination run the cheapest-path search once
// per returned variant and keep the globally cheapest result.
func (g *Graph) VariantsOf(problemName string) []variant.Variant {
	var out []variant.Variant
	for _, key := range g.order {
		if n := g.nodes[key]; n.Name == problemName {
			out = append(out, n.Variant)
		}
	}
	return out
}

// HasNode reports whether the exact (name, variant) node exists.
func (g *Graph) HasNode(name string, v variant.Variant) bool {
	_, ok := g.nodes[nodeKey(name, v)]
	return ok
}

// findEdge returns the first entry connecting the two exact nodes, in
// registration order (explicit entries win over natural casts).
func (g *Graph) findEdge(src, dst Step) (registry.Entry, bool) {
	dstKey := dst.key()
	for _, i := range g.adj[src.key()] {
		e := g.entries[i]
		if nodeKey(e.TargetName, e.TargetVariant) == dstKey {
			return e, true
		}
	}
	return registry.Entry{}, false
}
