package problems

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// ErrBadClause indicates a CNF clause referencing variable 0 or a variable
// outside the declared range.
var ErrBadClause = errors.New("problems: malformed CNF clause")

// Clause is one CNF clause in DIMACS convention: literals are 1-based
// variable indices, negative for negated. 0 is not a literal.
type Clause []int

// Satisfiability is boolean CNF satisfiability. Configurations assign 0/1
// per variable; the value counts satisfied clauses, valid iff all are.
type Satisfiability struct {
	numVars int
	clauses []Clause
}

// NewSatisfiability builds a CNF instance; every literal must reference a
// variable in [1, numVars].
func NewSatisfiability(numVars int, clauses []Clause) (*Satisfiability, error) {
	if numVars < 0 {
		return nil, fmt.Errorf("problems: negative variable count %d", numVars)
	}
	p := &Satisfiability{numVars: numVars}
	for ci, c := range clauses {
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if v == 0 || v > numVars {
				return nil, fmt.Errorf("%w: literal %d in clause %d with %d vars",
					ErrBadClause, lit, ci, numVars)
			}
		}
		p.clauses = append(p.clauses, append(Clause(nil), c...))
	}
	return p, nil
}

// Clauses returns the clauses in construction order.
func (p *Satisfiability) Clauses() []Clause {
	out := make([]Clause, len(p.clauses))
	for i, c := range p.clauses {
		out[i] = append(Clause(nil), c...)
	}
	return out
}

// NumVars returns the declared variable count.
func (p *Satisfiability) NumVars() int { return p.numVars }

// NumLiterals returns the total literal count across all clauses.
func (p *Satisfiability) NumLiterals() int {
	total := 0
	for _, c := range p.clauses {
		total += len(c)
	}
	return total
}

func (p *Satisfiability) Name() string             { return "Satisfiability" }
func (p *Satisfiability) Variant() variant.Variant { return variant.Variant{} }
func (p *Satisfiability) NumVariables() int        { return p.numVars }
func (p *Satisfiability) NumFlavors() int          { return 2 }
func (p *Satisfiability) Direction() Direction     { return Maximize }

func (p *Satisfiability) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vars":     p.numVars,
		"num_clauses":  len(p.clauses),
		"num_literals": p.NumLiterals(),
	}
}

// Evaluate returns the number of satisfied clauses; valid iff every
// clause is satisfied.
func (p *Satisfiability) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.numVars) {
		return 0, false
	}
	satisfied := 0
	for _, c := range p.clauses {
		if clauseSatisfied(c, config) {
			satisfied++
		}
	}
	return float64(satisfied), satisfied == len(p.clauses)
}

func clauseSatisfied(c Clause, config []int) bool {
	for _, lit := range c {
		if lit > 0 && config[lit-1] == 1 {
			return true
		}
		if lit < 0 && config[-lit-1] == 0 {
			return true
		}
	}
	return false
}

// KSatisfiability is CNF satisfiability restricted to clauses of exactly
// K literals; the width is part of the variant identity.
type KSatisfiability struct {
	Satisfiability
	k int
}

// NewKSatisfiability builds a K-SAT instance, rejecting any clause whose
// width differs from k.
func NewKSatisfiability(k, numVars int, clauses []Clause) (*KSatisfiability, error) {
	if k <= 0 {
		return nil, fmt.Errorf("problems: clause width must be positive, got %d", k)
	}
	for ci, c := range clauses {
		if len(c) != k {
			return nil, fmt.Errorf("%w: clause %d has %d literals, want %d",
				ErrBadClause, ci, len(c), k)
		}
	}
	inner, err := NewSatisfiability(numVars, clauses)
	if err != nil {
		return nil, err
	}
	return &KSatisfiability{Satisfiability: *inner, k: k}, nil
}

// K returns the fixed clause width.
func (p *KSatisfiability) K() int { return p.k }

func (p *KSatisfiability) Name() string { return "KSatisfiability" }

func (p *KSatisfiability) Variant() variant.Variant {
	return variant.MustNew(variant.ConstParam("k", strconv.Itoa(p.k)))
}
