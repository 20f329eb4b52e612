package solver

import (
	"errors"
	"fmt"

	"github.com/CodingThrust/problemreductions/problems"
)

// ErrTooLarge indicates a brute-force call on an instance above the
// configured variable cap.
var ErrTooLarge = errors.New("solver: instance too large for brute force")

// ErrNoSolution indicates the instance has no valid configuration at all.
var ErrNoSolution = errors.New("solver: no valid configuration")

// DefaultMaxVariables caps brute-force enumeration at 2^24 two-flavor
// configurations, a few seconds of work.
const DefaultMaxVariables = 24

// Solution is one optimal configuration and its objective value.
type Solution struct {
	Config []int
	Value  float64
}

// BruteForce enumerates every configuration of a Problem.
type BruteForce struct {
	maxVariables int
}

// Option customizes a BruteForce solver.
type Option func(*BruteForce)

// WithMaxVariables overrides the enumeration cap; non-positive panics.
func WithMaxVariables(n int) Option {
	if n <= 0 {
		panic("solver: max variables must be positive")
	}
	return func(b *BruteForce) { b.maxVariables = n }
}

// NewBruteForce builds a brute-force solver with the default cap.
func NewBruteForce(opts ...Option) *BruteForce {
	b := &BruteForce{maxVariables: DefaultMaxVariables}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FindBest returns one optimal valid configuration of p, honoring the
// problem's direction. ErrNoSolution if no configuration is valid.
func (b *BruteForce) FindBest(p problems.Problem) (Solution, error) {
	best, err := b.FindAllBest(p)
	if err != nil {
		return Solution{}, err
	}
	return best[0], nil
}

// FindAllBest returns every optimal valid configuration of p.
func (b *BruteForce) FindAllBest(p problems.Problem) ([]Solution, error) {
	n := p.NumVariables()
	if n > b.maxVariables {
		return nil, fmt.Errorf("%w: %d variables, cap %d", ErrTooLarge, n, b.maxVariables)
	}
	flavors := p.NumFlavors()

	var best []Solution
	config := make([]int, n)
	for {
		if value, valid := p.Evaluate(config); valid {
			switch {
			case len(best) == 0 || value == best[0].Value:
				best = append(best, Solution{Config: append([]int(nil), config...), Value: value})
			case better(p.Direction(), value, best[0].Value):
				best = best[:0]
				best = append(best, Solution{Config: append([]int(nil), config...), Value: value})
			}
		}
		if !nextConfig(config, flavors) {
			break
		}
	}
	if len(best) == 0 {
		return nil, ErrNoSolution
	}
	return best, nil
}

func better(d problems.Direction, a, b float64) bool {
	if d == problems.Minimize {
		return a < b
	}
	return a > b
}

// nextConfig advances config in mixed-radix order; false after the last.
func nextConfig(config []int, flavors int) bool {
	for i := 0; i < len(config); i++ {
		config[i]++
		if config[i] < flavors {
			return true
		}
		config[i] = 0
	}
	return false
}
