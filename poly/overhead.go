// Overhead: the symbolic size growth of one reduction, one polynomial per
// output size dimension, with evaluation and symbolic composition.

package poly

import "math"

// OverheadTerm binds one output size dimension to the polynomial, over
// input dimensions, that produces it.
type OverheadTerm struct {
	// Field is the output size-dimension name.
	Field string

	// Poly is the polynomial over input size-dimension names.
	Poly Polynomial
}

// Overhead maps output size dimensions to polynomials over input size
// dimensions. Term order is preserved for deterministic export. Dimensions
// with no polynomial are simply absent from the evaluated output and read
// as 0 downstream, per the ProblemSize contract.
type Overhead struct {
	// Terms are the declared output dimensions, in declaration order.
	Terms []OverheadTerm
}

// NewOverhead builds an overhead from the given terms.
func NewOverhead(terms ...OverheadTerm) Overhead {
	return Overhead{Terms: terms}
}

// Term is a convenience constructor for one OverheadTerm.
func Term(field string, p Polynomial) OverheadTerm {
	return OverheadTerm{Field: field, Poly: p}
}

// Identity returns the overhead in which each named output field equals the
// same-named input field. Natural-cast edges use this: the instance is
// unchanged, so its size is too.
func Identity(fields ...string) Overhead {
	terms := make([]OverheadTerm, len(fields))
	for i, f := range fields {
		terms[i] = OverheadTerm{Field: f, Poly: Var(f)}
	}
	return Overhead{Terms: terms}
}

// Get returns the polynomial declared for the named output field.
func (o Overhead) Get(field string) (Polynomial, bool) {
	for _, t := range o.Terms {
		if t.Field == field {
			return t.Poly, true
		}
	}
	return Polynomial{}, false
}

// Fields returns the declared output field names in declaration order.
func (o Overhead) Fields() []string {
	names := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		names[i] = t.Field
	}
	return names
}

// InputVariables returns the distinct input dimension names referenced by
// any of the overhead's polynomials, in first appearance order.
func (o Overhead) InputVariables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range o.Terms {
		for _, name := range t.Poly.Variables() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// EvaluateOutputSize applies every declared polynomial to the input size
// and collects the results into a new ProblemSize containing exactly the
// declared output dimensions.
//
// Rounding: each evaluated value is rounded half away from zero
// (math.Round). Coefficients of overhead polynomials are integral in
// practice, so fractional results only arise from floating-point noise.
// A negative result (possible only if the non-negative-coefficient
// precondition was violated) clamps to 0.
func (o Overhead) EvaluateOutputSize(input ProblemSize) ProblemSize {
	out := make(ProblemSize, len(o.Terms))
	for _, t := range o.Terms {
		v := math.Round(t.Poly.Evaluate(input))
		if v < 0 {
			v = 0
		}
		out[t.Field] = int(v)
	}
	return out
}

// Compose substitutes o's output polynomials into next's input variables,
// producing an overhead whose polynomials map o's input dimensions directly
// to next's output dimensions. Variables of next that o does not produce
// substitute to zero, matching the absent-is-zero evaluation of the
// two-step pipeline.
func (o Overhead) Compose(next Overhead) Overhead {
	subs := make(map[string]Polynomial, len(o.Terms))
	for _, t := range o.Terms {
		subs[t.Field] = t.Poly
	}

	terms := make([]OverheadTerm, len(next.Terms))
	for i, t := range next.Terms {
		terms[i] = OverheadTerm{Field: t.Field, Poly: t.Poly.Substitute(subs)}
	}
	return Overhead{Terms: terms}
}
