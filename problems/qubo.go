package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// QUBO is quadratic unconstrained binary optimization: minimize x^T·Q·x
// over x ∈ {0,1}^n. The matrix is stored upper-triangular; since
// x_i² = x_i, the diagonal carries the linear terms. Every configuration
// is valid.
type QUBO struct {
	n      int
	matrix [][]float64
}

// NewQUBO builds an instance from an n×n matrix. Lower-triangle entries
// are folded into the upper triangle so the stored form is canonical.
func NewQUBO(matrix [][]float64) (*QUBO, error) {
	n := len(matrix)
	q := &QUBO{n: n, matrix: make([][]float64, n)}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("problems: QUBO row %d has %d entries, want %d", i, len(row), n)
		}
		q.matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j >= i {
				q.matrix[i][j] += matrix[i][j]
			} else {
				q.matrix[j][i] += matrix[i][j]
			}
		}
	}
	return q, nil
}

// Matrix returns a copy of the canonical upper-triangular matrix.
func (p *QUBO) Matrix() [][]float64 {
	out := make([][]float64, p.n)
	for i, row := range p.matrix {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func (p *QUBO) Name() string { return "QUBO" }

func (p *QUBO) Variant() variant.Variant {
	return variant.MustNew(variant.Weight(WeightFloat))
}

func (p *QUBO) NumVariables() int    { return p.n }
func (p *QUBO) NumFlavors() int      { return 2 }
func (p *QUBO) Direction() Direction { return Minimize }

func (p *QUBO) Size() poly.ProblemSize {
	return poly.ProblemSize{"num_vars": p.n}
}

// Evaluate returns x^T·Q·x.
func (p *QUBO) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.n) {
		return 0, false
	}
	energy := 0.0
	for i := 0; i < p.n; i++ {
		if config[i] != 1 {
			continue
		}
		for j := i; j < p.n; j++ {
			if config[j] == 1 {
				energy += p.matrix[i][j]
			}
		}
	}
	return energy, true
}
