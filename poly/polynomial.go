// Monomial and Polynomial: construction, arithmetic, evaluation and the
// canonical string rendering used by the graph JSON export.

package poly

import (
	"fmt"
	"math"
	"strings"
)

// VarPow is one bound variable of a monomial: a size-dimension name raised
// to an integer exponent.
type VarPow struct {
	// Name is the size-dimension name, e.g. "num_vertices".
	Name string

	// Exp is the (positive) integer exponent.
	Exp int
}

// Monomial is coefficient × Π(variable^exponent). A monomial with no
// variables is a constant. Evaluating a monomial that references a
// dimension absent from the ProblemSize yields 0 (the variable itself
// evaluates to 0), not the coefficient.
type Monomial struct {
	// Coef is the real coefficient.
	Coef float64

	// Vars are the bound variables with their exponents.
	Vars []VarPow
}

// Evaluate computes the monomial's value against the given size.
func (m Monomial) Evaluate(size ProblemSize) float64 {
	prod := m.Coef
	for _, v := range m.Vars {
		prod *= math.Pow(float64(size.Get(v.Name)), float64(v.Exp))
	}
	return prod
}

// Scale returns a copy of m with the coefficient multiplied by c.
func (m Monomial) Scale(c float64) Monomial {
	m2 := Monomial{Coef: m.Coef * c, Vars: append([]VarPow(nil), m.Vars...)}
	return m2
}

// mul multiplies two monomials, merging exponents of shared variables.
func (m Monomial) mul(o Monomial) Monomial {
	out := Monomial{Coef: m.Coef * o.Coef, Vars: append([]VarPow(nil), m.Vars...)}
	for _, v := range o.Vars {
		merged := false
		for i := range out.Vars {
			if out.Vars[i].Name == v.Name {
				out.Vars[i].Exp += v.Exp
				merged = true
				break
			}
		}
		if !merged {
			out.Vars = append(out.Vars, v)
		}
	}
	return out
}

// String renders the monomial as e.g. "3*num_vertices^2" or "5".
func (m Monomial) String() string {
	if len(m.Vars) == 0 {
		return trimFloat(m.Coef)
	}
	var parts []string
	if m.Coef != 1 {
		parts = append(parts, trimFloat(m.Coef))
	}
	for _, v := range m.Vars {
		if v.Exp == 1 {
			parts = append(parts, v.Name)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", v.Name, v.Exp))
		}
	}
	return strings.Join(parts, "*")
}

// trimFloat renders a float without a trailing ".0" for integral values.
func trimFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// Polynomial is a sum of monomials. The zero value is the zero polynomial
// and evaluates to 0 everywhere.
type Polynomial struct {
	// Terms are the summed monomials, in construction order.
	Terms []Monomial
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// Constant returns the constant polynomial c.
func Constant(c float64) Polynomial {
	return Polynomial{Terms: []Monomial{{Coef: c}}}
}

// Var returns the polynomial consisting of the single variable name.
func Var(name string) Polynomial {
	return Polynomial{Terms: []Monomial{{Coef: 1, Vars: []VarPow{{Name: name, Exp: 1}}}}}
}

// VarPowP returns the polynomial name^exp. The exponent must be positive:
// name^0 would evaluate to 1 even when the variable is absent, violating
// the absent-is-zero contract.
func VarPowP(name string, exp int) Polynomial {
	if exp <= 0 {
		panic("poly: non-positive variable power")
	}
	return Polynomial{Terms: []Monomial{{Coef: 1, Vars: []VarPow{{Name: name, Exp: exp}}}}}
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	terms := make([]Monomial, 0, len(p.Terms)+len(q.Terms))
	terms = append(terms, p.Terms...)
	terms = append(terms, q.Terms...)
	return Polynomial{Terms: terms}
}

// Scale returns p with every coefficient multiplied by c.
func (p Polynomial) Scale(c float64) Polynomial {
	terms := make([]Monomial, len(p.Terms))
	for i, m := range p.Terms {
		terms[i] = m.Scale(c)
	}
	return Polynomial{Terms: terms}
}

// Mul returns the product p·q, expanded term by term.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	terms := make([]Monomial, 0, len(p.Terms)*len(q.Terms))
	for _, a := range p.Terms {
		for _, b := range q.Terms {
			terms = append(terms, a.mul(b))
		}
	}
	return Polynomial{Terms: terms}
}

// Pow returns p raised to the non-negative integer power k. p.Pow(0) is the
// constant 1.
func (p Polynomial) Pow(k int) Polynomial {
	if k < 0 {
		panic("poly: negative polynomial power")
	}
	out := Constant(1)
	for i := 0; i < k; i++ {
		out = out.Mul(p)
	}
	return out
}

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool { return len(p.Terms) == 0 }

// Evaluate computes the polynomial's value against the given size.
// Evaluation is pure: it reads only its arguments.
func (p Polynomial) Evaluate(size ProblemSize) float64 {
	sum := 0.0
	for _, m := range p.Terms {
		sum += m.Evaluate(size)
	}
	return sum
}

// Variables returns the distinct variable names referenced by p, in first
// appearance order.
func (p Polynomial) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range p.Terms {
		for _, v := range m.Vars {
			if !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		}
	}
	return names
}

// Substitute replaces every variable of p with the polynomial bound to it
// in subs. A variable with no binding is replaced by the zero polynomial,
// consistent with the absent-is-zero evaluation policy.
func (p Polynomial) Substitute(subs map[string]Polynomial) Polynomial {
	out := Zero()
	for _, m := range p.Terms {
		term := Constant(m.Coef)
		zero := false
		for _, v := range m.Vars {
			repl, ok := subs[v.Name]
			if !ok {
				repl = Zero()
			}
			if repl.IsZero() {
				zero = true
				break
			}
			term = term.Mul(repl.Pow(v.Exp))
		}
		if !zero {
			out = out.Add(term)
		}
	}
	return out
}

// String renders the polynomial as e.g. "num_vertices^2 + 3*num_edges",
// or "0" for the zero polynomial.
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, len(p.Terms))
	for i, m := range p.Terms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " + ")
}
