// Package solver provides the reference solvers used to close the loop on
// reductions: an exhaustive brute-force search over any Problem, and a
// CDCL SAT backend (gini) for the satisfiability models.
//
// Brute force enumerates NumFlavors^NumVariables configurations and is
// guarded by a hard variable cap; it exists for correctness checks and
// small demonstrations, not performance. The SAT backend solves CNF
// instances of any size the underlying solver handles.
package solver
