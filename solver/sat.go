// CDCL SAT backend over gini for the satisfiability models.

package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/CodingThrust/problemreductions/problems"
)

// SolveCNF decides a CNF formula in DIMACS literal convention (1-based
// variables, negative for negated). It returns the satisfying assignment
// as one 0/1 value per variable and sat=false for unsatisfiable input.
func SolveCNF(numVars int, clauses []problems.Clause) (assignment []int, sat bool) {
	g := gini.New()
	for _, c := range clauses {
		for _, lit := range c {
			v := z.Var(abs(lit))
			if lit > 0 {
				g.Add(v.Pos())
			} else {
				g.Add(v.Neg())
			}
		}
		g.Add(z.LitNull)
	}
	if g.Solve() != 1 {
		return nil, false
	}
	assignment = make([]int, numVars)
	for i := 1; i <= numVars; i++ {
		if g.Value(z.Var(i).Pos()) {
			assignment[i-1] = 1
		}
	}
	return assignment, true
}

// SolveSAT decides a Satisfiability instance with the CDCL backend.
func SolveSAT(p *problems.Satisfiability) ([]int, bool) {
	return SolveCNF(p.NumVars(), p.Clauses())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
