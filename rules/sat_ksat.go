// Satisfiability <-> KSatisfiability(3).
//
// Forward: clauses are normalized to exactly 3 literals with ancilla
// variables. A short clause (a v b) becomes (a v b v x) and (a v b v -x);
// a long clause (a v b v c v d) splits into (a v b v x) and (-x v c v d),
// recursively. Extraction keeps the original variables and drops the
// ancillas. Backward: a 3-SAT formula is already CNF; trivial embedding.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

var satSizeFields = []string{"num_vars", "num_clauses", "num_literals"}

func ksatVariant() variant.Variant {
	return variant.MustNew(variant.ConstParam("k", "3"))
}

func init() {
	registry.Register(registry.Entry{
		SourceName:    "Satisfiability",
		TargetName:    "KSatisfiability",
		SourceVariant: variant.Variant{},
		TargetVariant: ksatVariant(),
		Overhead: func() poly.Overhead {
			// Every literal can spawn at most one ancilla and one extra clause.
			return poly.NewOverhead(
				poly.Term("num_vars", poly.Var("num_vars").Add(poly.Var("num_literals"))),
				poly.Term("num_clauses", poly.Var("num_clauses").Add(poly.Var("num_literals"))),
				poly.Term("num_literals", poly.Var("num_literals").Scale(3)),
			)
		},
		Apply:            applySATToKSAT3,
		SourceSizeFields: satSizeFields,
		TargetSizeFields: satSizeFields,
		Origin:           "rules/sat_ksat",
	})
	registry.Register(registry.Entry{
		SourceName:    "KSatisfiability",
		TargetName:    "Satisfiability",
		SourceVariant: ksatVariant(),
		TargetVariant: variant.Variant{},
		Overhead: func() poly.Overhead {
			return poly.Identity(satSizeFields...)
		},
		Apply:            applyKSATToSAT,
		SourceSizeFields: satSizeFields,
		TargetSizeFields: satSizeFields,
		Origin:           "rules/sat_ksat",
	})
}

// normalizeClause emits clauses of exactly width k for one input clause,
// allocating ancilla variables from nextVar upward. Returns the updated
// nextVar.
func normalizeClause(k int, c problems.Clause, out *[]problems.Clause, nextVar int) int {
	switch {
	case len(c) == k:
		*out = append(*out, append(problems.Clause(nil), c...))
	case len(c) < k:
		// Pad with an ancilla in both polarities so satisfiability is
		// preserved independent of the ancilla's value.
		ancilla := nextVar
		nextVar++
		pos := append(append(problems.Clause(nil), c...), ancilla)
		neg := append(append(problems.Clause(nil), c...), -ancilla)
		nextVar = normalizeClause(k, pos, out, nextVar)
		nextVar = normalizeClause(k, neg, out, nextVar)
	default:
		// Split: first k-1 literals with a positive ancilla, rest chained
		// behind its negation.
		ancilla := nextVar
		nextVar++
		first := append(append(problems.Clause(nil), c[:k-1]...), ancilla)
		*out = append(*out, first)
		rest := append(problems.Clause{-ancilla}, c[k-1:]...)
		nextVar = normalizeClause(k, rest, out, nextVar)
	}
	return nextVar
}

func applySATToKSAT3(src any) (any, registry.Extractor, error) {
	sat, ok := src.(*problems.Satisfiability)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.Satisfiability, have %T", registry.ErrTypeMismatch, src)
	}
	const k = 3
	sourceVars := sat.NumVars()
	nextVar := sourceVars + 1
	var clauses []problems.Clause
	for _, c := range sat.Clauses() {
		nextVar = normalizeClause(k, c, &clauses, nextVar)
	}
	ksat, err := problems.NewKSatisfiability(k, nextVar-1, clauses)
	if err != nil {
		return nil, nil, err
	}
	extract := func(sol []int) []int {
		if len(sol) < sourceVars {
			return append([]int(nil), sol...)
		}
		return append([]int(nil), sol[:sourceVars]...)
	}
	return ksat, extract, nil
}

func applyKSATToSAT(src any) (any, registry.Extractor, error) {
	ksat, ok := src.(*problems.KSatisfiability)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.KSatisfiability, have %T", registry.ErrTypeMismatch, src)
	}
	sat, err := problems.NewSatisfiability(ksat.NumVars(), ksat.Clauses())
	if err != nil {
		return nil, nil, err
	}
	return sat, registry.IdentityExtractor, nil
}
