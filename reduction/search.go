// Cheapest-path search over the reduction graph: min-heap with lazy
// decrease-key, each node expanded at most once.

package reduction

import (
	"container/heap"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// FindCheapestPath searches for the cheapest route from the exact
// (srcName, srcVariant) node to the exact (dstName, dstVariant) node,
// ranking edges with the given cost function evaluated against the problem
// size accumulated along the route (starting from inputSize).
//
// The search follows the classic single-source discipline: a priority
// queue ordered by accumulated cost, lazy decrease-key (duplicates pushed,
// stale entries skipped), and each node finalized at its first pop. Edge
// costs must therefore be non-negative — guaranteed by the built-in cost
// functions whenever overhead polynomials have non-negative coefficients,
// which is a precondition on registered reductions rather than something
// enforced here.
//
// Absence is not an error: an unknown endpoint or an unreachable
// destination yields nil. A destination fixed only by name is the caller's
// loop over VariantsOf(dstName), keeping the cheapest result.
func (g *Graph) FindCheapestPath(
	srcName string, srcVariant variant.Variant,
	dstName string, dstVariant variant.Variant,
	inputSize poly.ProblemSize,
	cost CostFunc,
) *Path {
	if cost == nil {
		// A nil cost function is load-bearing misuse, same class as a bad
		// functional option: fail loudly at the call site.
		panic("reduction: nil cost function")
	}

	srcKey := nodeKey(srcName, srcVariant)
	dstKey := nodeKey(dstName, dstVariant)
	if _, ok := g.nodes[srcKey]; !ok {
		return nil
	}
	if _, ok := g.nodes[dstKey]; !ok {
		return nil
	}

	// visited marks nodes whose cheapest cost is final.
	visited := make(map[string]bool, len(g.nodes))

	pq := make(searchPQ, 0, len(g.nodes))
	heap.Init(&pq)
	heap.Push(&pq, &searchItem{
		key:  srcKey,
		size: inputSize,
		path: []Step{{Name: srcName, Variant: srcVariant}},
	})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*searchItem)

		// Skip stale heap entries (lazy decrease-key).
		if visited[cur.key] {
			continue
		}
		visited[cur.key] = true

		// Destination test: exact problem name and variant.
		if cur.key == dstKey {
			return &Path{Steps: cur.path}
		}

		// Relax every edge leaving the current node. Source variants match
		// the node exactly by graph construction.
		for _, i := range g.adj[cur.key] {
			e := g.entries[i]
			nextKey := nodeKey(e.TargetName, e.TargetVariant)
			if visited[nextKey] {
				continue
			}

			overhead := e.Overhead()
			edgeCost := cost.EdgeCost(overhead, cur.size)
			nextSize := overhead.EvaluateOutputSize(cur.size)

			// Extend the path-so-far into a fresh slice; items in the heap
			// must not alias each other's backing arrays.
			nextPath := make([]Step, len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath[len(cur.path)] = Step{Name: e.TargetName, Variant: e.TargetVariant}

			heap.Push(&pq, &searchItem{
				key:  nextKey,
				cost: cur.cost + edgeCost,
				size: nextSize,
				path: nextPath,
			})
		}
	}

	return nil
}

// searchItem is one priority-queue entry: a node, the cost and problem
// size accumulated on the way to it, and the path that got there.
type searchItem struct {
	key  string
	cost float64
	size poly.ProblemSize
	path []Step
}

// searchPQ is a min-heap of *searchItem ordered by accumulated cost.
type searchPQ []*searchItem

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq searchPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchItem)) }

func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
