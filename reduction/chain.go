// Chain execution: walking a path on a concrete instance while composing
// the backward solution extraction.

package reduction

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/registry"
)

// Chain is the result of executing a reduction path on a concrete
// instance: the type-erased final instance together with one composed
// extractor mapping a solution of the final instance back to a solution
// of the original source instance.
type Chain struct {
	target  any
	extract registry.Extractor
	path    *Path
}

// ReduceAlongPath applies each hop of the path to the source instance in
// order, threading the intermediate instance through and composing the
// per-hop extractors front to back. Type erasure stays inside this
// function: each hop's Apply receives the boxed output of the previous
// hop and downcasts it itself.
//
// An empty path is ErrEmptyPath. A single-node path yields a chain whose
// target is the source itself and whose extraction is the identity. A hop
// with no registry entry is ErrMissingEdge; a failing Apply (typically a
// downcast mismatch) wraps the hop's endpoints into the returned error.
func (g *Graph) ReduceAlongPath(path *Path, source any) (*Chain, error) {
	if path.IsEmpty() {
		return nil, ErrEmptyPath
	}

	current := source
	total := registry.IdentityExtractor

	for hop := 0; hop < path.Len(); hop++ {
		src, dst := path.Steps[hop], path.Steps[hop+1]
		e, ok := g.findEdge(src, dst)
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s (hop %d)",
				ErrMissingEdge, src.Name, dst.Name, hop)
		}

		next, extract, err := e.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("reduction: applying %s -> %s (hop %d): %w",
				src.Name, dst.Name, hop, err)
		}

		current = next
		// Backward composition: a target solution first travels back
		// through the newest hop, then through everything before it.
		prev := total
		hopExtract := extract
		total = func(solution []int) []int {
			return prev(hopExtract(solution))
		}
	}

	return &Chain{target: current, extract: total, path: path}, nil
}

// Target returns the type-erased final instance.
func (c *Chain) Target() any { return c.target }

// Path returns the path the chain was executed along.
func (c *Chain) Path() *Path { return c.path }

// ExtractSolution maps a solution of the final instance back to a
// solution of the original source instance through every hop's extractor.
func (c *Chain) ExtractSolution(solution []int) []int {
	return c.extract(solution)
}

// TargetProblem returns the chain's final instance as the concrete type T,
// or ErrWrongTargetType when the instance is something else. This is the
// single place callers cross back from the type-erased world.
func TargetProblem[T any](c *Chain) (T, error) {
	t, ok := c.target.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: have %T", ErrWrongTargetType, c.target)
	}
	return t, nil
}
