// Symbolic overhead composition along a path.

package reduction

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
)

// ComposePathOverhead folds the overheads of every hop on the path into a
// single symbolic overhead expressed in the source node's size dimensions.
// Evaluating the result on an input size agrees with feeding the size
// through the hops one at a time, up to rounding performed only once at
// the end instead of after every hop.
//
// A single-node path yields the identity overhead over the source node's
// size fields. An empty path is ErrEmptyPath; a hop with no matching
// registry entry is ErrMissingEdge with the offending hop attached.
func (g *Graph) ComposePathOverhead(path *Path) (poly.Overhead, error) {
	if path.IsEmpty() {
		return poly.Overhead{}, ErrEmptyPath
	}

	srcKey := path.Steps[0].key()
	if _, ok := g.nodes[srcKey]; !ok {
		return poly.Overhead{}, fmt.Errorf("%w: %s", ErrUnknownNode, path.Steps[0].Name)
	}
	if path.Len() == 0 {
		return poly.Identity(g.fields[srcKey]...), nil
	}

	var total poly.Overhead
	for hop := 0; hop < path.Len(); hop++ {
		src, dst := path.Steps[hop], path.Steps[hop+1]
		e, ok := g.findEdge(src, dst)
		if !ok {
			return poly.Overhead{}, fmt.Errorf("%w: %s -> %s (hop %d)",
				ErrMissingEdge, src.Name, dst.Name, hop)
		}
		if hop == 0 {
			total = e.Overhead()
			continue
		}
		total = total.Compose(e.Overhead())
	}

	return total, nil
}

// PathCost totals the cost of walking the path under cost, threading the
// predicted size through each hop exactly as FindCheapestPath does during
// search. Callers comparing candidate routes found under different
// destination variants rank them with this. A nil cost panics; error
// conditions mirror ComposePathOverhead.
func (g *Graph) PathCost(path *Path, inputSize poly.ProblemSize, cost CostFunc) (float64, error) {
	if cost == nil {
		panic("reduction: nil cost function")
	}
	if path.IsEmpty() {
		return 0, ErrEmptyPath
	}
	if _, ok := g.nodes[path.Steps[0].key()]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNode, path.Steps[0].Name)
	}

	total := 0.0
	size := inputSize
	for hop := 0; hop < path.Len(); hop++ {
		src, dst := path.Steps[hop], path.Steps[hop+1]
		e, ok := g.findEdge(src, dst)
		if !ok {
			return 0, fmt.Errorf("%w: %s -> %s (hop %d)",
				ErrMissingEdge, src.Name, dst.Name, hop)
		}
		o := e.Overhead()
		total += cost.EdgeCost(o, size)
		size = o.EvaluateOutputSize(size)
	}
	return total, nil
}
