// Satisfiability -> IndependentSet via the literal-occurrence gadget: one
// vertex per literal occurrence, a clique inside each clause, and an edge
// between every complementary pair across clauses. An independent set of
// size num_clauses picks one satisfiable literal per clause.
//
// Extraction sets a variable true when a selected vertex is a positive
// occurrence, false when negated; untouched variables default to false.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

// boolVar is one literal occurrence: a 0-based variable index and its
// polarity.
type boolVar struct {
	index int
	neg   bool
}

func boolVarFromLiteral(lit int) boolVar {
	if lit < 0 {
		return boolVar{index: -lit - 1, neg: true}
	}
	return boolVar{index: lit - 1}
}

func init() {
	registry.Register(registry.Entry{
		SourceName:    "Satisfiability",
		TargetName:    "IndependentSet",
		SourceVariant: variant.Variant{},
		TargetVariant: graphVariant(problems.WeightOne),
		Overhead: func() poly.Overhead {
			return poly.NewOverhead(
				poly.Term("num_vertices", poly.Var("num_literals")),
				poly.Term("num_edges", poly.VarPowP("num_literals", 2)),
			)
		},
		Apply:            applySATToIS,
		SourceSizeFields: satSizeFields,
		TargetSizeFields: graphSizeFields,
		Origin:           "rules/sat_independentset",
	})
}

func applySATToIS(src any) (any, registry.Extractor, error) {
	sat, ok := src.(*problems.Satisfiability)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.Satisfiability, have %T", registry.ErrTypeMismatch, src)
	}

	var literals []boolVar
	var pairs [][2]int

	for _, clause := range sat.Clauses() {
		start := len(literals)
		for _, lit := range clause {
			literals = append(literals, boolVarFromLiteral(lit))
		}
		// Clique inside the clause: at most one literal per clause selected.
		for i := start; i < len(literals); i++ {
			for j := i + 1; j < len(literals); j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	// Complementary literals across clauses must not be selected together.
	for i := range literals {
		for j := i + 1; j < len(literals); j++ {
			if literals[i].index == literals[j].index && literals[i].neg != literals[j].neg {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	g, err := problems.NewUndirectedGraph(len(literals), pairs)
	if err != nil {
		return nil, nil, err
	}
	is, err := problems.NewIndependentSet(g)
	if err != nil {
		return nil, nil, err
	}

	numVars := sat.NumVars()
	lits := literals
	extract := func(sol []int) []int {
		assignment := make([]int, numVars)
		for v, selected := range sol {
			if v >= len(lits) || selected != 1 {
				continue
			}
			if lits[v].neg {
				assignment[lits[v].index] = 0
			} else {
				assignment[lits[v].index] = 1
			}
		}
		return assignment
	}
	return is, extract, nil
}
