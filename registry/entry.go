// Entry: one registered reduction edge, plus the derived classification
// helpers used by export tooling.

package registry

import (
	"errors"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// Sentinel errors for registration and chain execution.
var (
	// ErrBadEntry indicates a structurally invalid Entry passed to Register.
	ErrBadEntry = errors.New("registry: malformed reduction entry")

	// ErrTypeMismatch indicates Apply received an instance of the wrong
	// concrete type. This is a registry/path inconsistency — a programming
	// error, not a recoverable runtime condition.
	ErrTypeMismatch = errors.New("registry: source instance has unexpected concrete type")
)

// WeightOne is the sentinel weight-dimension value of unweighted problems.
const WeightOne = "One"

// Extractor maps a target-problem solution (one assignment value per
// variable) back to a source-problem solution of the same shape contract.
type Extractor func(targetSolution []int) []int

// IdentityExtractor returns the target solution unchanged. Natural casts
// and other identity reductions use it.
func IdentityExtractor(targetSolution []int) []int { return targetSolution }

// ApplyFunc executes one reduction hop: it downcasts src to the concrete
// source type, builds the target instance, and returns it together with the
// single-hop extractor. A wrong concrete type yields ErrTypeMismatch.
type ApplyFunc func(src any) (target any, extract Extractor, err error)

// Entry is one registered reduction edge.
type Entry struct {
	// SourceName is the source problem family name, e.g. "IndependentSet".
	SourceName string

	// TargetName is the target problem family name.
	TargetName string

	// SourceVariant is the exact variant pattern the source node must match.
	SourceVariant variant.Variant

	// TargetVariant is the variant of the produced target node.
	TargetVariant variant.Variant

	// Overhead lazily constructs the symbolic size growth of the edge.
	Overhead func() poly.Overhead

	// Apply executes the reduction on a concrete, type-erased instance.
	Apply ApplyFunc

	// SourceSizeFields are the size-dimension names of the source problem.
	SourceSizeFields []string

	// TargetSizeFields are the size-dimension names of the target problem.
	TargetSizeFields []string

	// Origin names the registering package, for diagnostics.
	Origin string

	// Natural marks an edge synthesized from the subtype relation rather
	// than explicitly registered.
	Natural bool
}

// IsBaseReduction reports whether the entry connects only base (unweighted)
// variants: on each side the weight dimension is either absent or the
// "One" sentinel. Export tooling uses this to separate canonical unweighted
// reductions from their weighted counterparts.
func (e Entry) IsBaseReduction() bool {
	return sideUnweighted(e.SourceVariant) && sideUnweighted(e.TargetVariant)
}

func sideUnweighted(v variant.Variant) bool {
	w, ok := v.Get(variant.WeightKey())
	return !ok || w == WeightOne
}

// validate reports nil for a well-formed entry.
func (e Entry) validate() error {
	switch {
	case e.SourceName == "" || e.TargetName == "":
		return errors.New("empty problem name")
	case e.Overhead == nil:
		return errors.New("nil overhead constructor")
	case e.Apply == nil:
		return errors.New("nil apply function")
	}
	return nil
}
