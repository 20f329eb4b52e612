// Package rules registers the concrete reductions between the problem
// models, plus the subtype declarations the natural-cast synthesis feeds
// on. Importing the package (usually blank, for its init side effects)
// populates the global registry; the reduction graph then picks
// everything up on construction.
//
// Registered reductions:
//
//	IndependentSet <-> VertexCover        (complement, identity overhead)
//	IndependentSet <-> SetPacking         (incident-edge sets / conflict graph)
//	VertexCover     -> SetCovering        (universe = edges)
//	Matching        -> SetPacking         (set per edge = its endpoints)
//	MaxCut         <-> SpinGlass          (couplings = edge weights)
//	SpinGlass      <-> QUBO               (s = 2x - 1 substitution)
//	Satisfiability <-> KSatisfiability(3) (clause padding and splitting)
//	Satisfiability  -> IndependentSet     (literal-occurrence gadget)
//	Satisfiability  -> DominatingSet      (variable-triangle gadget)
//	IndependentSet  -> QUBO               (penalty formulation)
//	Coloring        -> QUBO               (one-hot encoding)
//
// Subtype declarations: PlanarGraph, BipartiteGraph and UnitDiskGraph are
// SimpleGraph; GridGraph is UnitDiskGraph. Weight kinds promote One -> Int
// -> Float. Each declaration yields zero-cost natural-cast edges
// specialized -> general when the graph is built.
package rules
