// Package problems defines the concrete combinatorial problem models that
// plug into the reduction machinery: graph problems (independent set,
// vertex cover, dominating set, matching, max-cut, coloring), set problems
// (packing, covering), energy models (spin glass, QUBO) and boolean
// satisfiability (general CNF and fixed-width K-SAT).
//
// Every model satisfies the Problem interface: it reports its name, its
// variant (graph topology, weight kind, constant parameters), its size in
// named integer dimensions, the number of decision variables and flavors
// per variable, its optimization direction, and an Evaluate method scoring
// a candidate configuration and reporting whether it satisfies the model's
// hard constraints.
//
// Configurations are []int with one entry per decision variable, each in
// [0, NumFlavors). For two-flavor models 1 means selected. Evaluate never
// panics on a structurally valid configuration; a configuration of the
// wrong length or with out-of-range values is reported as invalid.
package problems
