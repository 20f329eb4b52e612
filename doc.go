// Package problemreductions turns the folklore "problem A reduces to
// problem B" into an executable, queryable graph.
//
// 🚀 What is problemreductions?
//
//	A library for navigating reductions between constraint-satisfaction
//	and optimization problems:
//		• Typed variants: (problem, variant) identity with a subtype relation
//		• Symbolic overheads: output size as polynomials over input size fields
//		• Registry: self-registering reduction rules plus synthesized natural casts
//		• Search: cheapest reduction route under pluggable cost functions
//		• Execution: run a route on a concrete instance and map solutions back
//
// Everything is organized under focused subpackages:
//
//	variant/   — variant dimensions, the subtype relation, acyclicity checks
//	poly/      — integer-coefficient polynomials, overhead maps, size vectors
//	registry/  — reduction entries, registration, natural-cast synthesis
//	reduction/ — the graph: search, overhead composition, chain execution, export
//	problems/  — concrete models (IndependentSet, SAT, QUBO, SpinGlass, ...)
//	rules/     — the built-in reduction rules; import for side effects
//	solver/    — brute-force optimizer and a SAT solver bridge
//
// Quick sketch: route an IndependentSet instance to QUBO, solve the QUBO,
// and read the answer back as an independent set:
//
//	g, _ := reduction.NewGraph()
//	path := g.FindCheapestPath("IndependentSet", isVariant, "QUBO", quboVariant,
//		instance.Size(), reduction.MinimizeSteps{})
//	chain, _ := g.ReduceAlongPath(path, instance)
//	best, _ := solver.NewBruteForce().FindBest(chain.Target().(problems.Problem))
//	answer := chain.ExtractSolution(best.Config)
//
// The cmd/reductions binary exposes the same surface on the command line
// and as an MCP stdio server.
package problemreductions
