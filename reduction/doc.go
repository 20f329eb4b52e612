// Package reduction builds the reduction graph and runs queries over it:
// cheapest-path search between problem variants, symbolic overhead
// composition along a path, and chain execution that carries a concrete
// instance across multiple reduction hops while composing the backward
// solution extraction.
//
// Overview:
//
//   - Graph: an immutable view over the registry's explicit edges plus the
//     natural casts synthesized from the variant subtype relation. Nodes
//     are (problem name, variant) pairs; edges are registry entries.
//     Construction is cheap and a built Graph holds no per-call mutable
//     state, so one value may serve many independent call sites.
//   - FindCheapestPath: single-source cheapest path from one (name,
//     variant) node to another under a pluggable cost function, following
//     the classic min-heap discipline with lazy decrease-key — each node is
//     expanded at most once, at the first time it is popped.
//   - ComposePathOverhead: the purely symbolic counterpart of walking a
//     path; yields one polynomial per final output field expressed in the
//     original input's size dimensions, without touching any instance.
//   - ReduceAlongPath: executes a path on a concrete, type-erased instance,
//     producing a Chain — the boxed final instance plus one composed
//     extractor mapping a target solution back to a source solution.
//
// Cost functions:
//
//	MinimizeSteps, Minimize(field), MinimizeWeighted, MinimizeMax,
//	MinimizeLexicographic and CostFn (caller-supplied) all operate on one
//	edge's overhead and the accumulated size at its source node. A
//	referenced field absent from the overhead's output contributes 0.
//
// Precondition on overheads:
//
//	The visit-once search discipline requires non-negative edge costs, which
//	the built-in cost functions deliver only when overhead polynomials have
//	non-negative coefficients. This is a documented precondition on
//	registered reductions, not something the search enforces; an overhead
//	with negative coefficients calls for a label-correcting search instead.
//
// Error taxonomy:
//
//	No route between the requested endpoints is an ordinary nil result.
//	A subtype cycle fails graph construction (ErrSubtypeCycle from the
//	variant package). A path step with no matching registry entry, or a
//	downcast failure inside a hop, is a consistency violation and fails the
//	whole call with the offending step's context attached.
package reduction
