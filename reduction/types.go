// This file declares Step, Path and the package's sentinel errors.

package reduction

import (
	"errors"
	"strings"

	"github.com/CodingThrust/problemreductions/variant"
)

// Sentinel errors for graph construction and chain execution.
var (
	// ErrEmptyPath indicates an operation that needs at least the source
	// step received an empty path.
	ErrEmptyPath = errors.New("reduction: path is empty")

	// ErrUnknownNode indicates a path references a (problem, variant) node
	// the graph does not contain.
	ErrUnknownNode = errors.New("reduction: unknown problem/variant node")

	// ErrMissingEdge indicates a path hop has no matching registered
	// reduction — the path and the registry disagree, a consistency
	// violation rather than a recoverable condition.
	ErrMissingEdge = errors.New("reduction: no registered reduction for path step")

	// ErrWrongTargetType indicates a typed access to a chain's final
	// instance used a type that does not match the actual instance.
	ErrWrongTargetType = errors.New("reduction: chain target has different concrete type")
)

// Step is one node on a reduction path: a problem family name and the
// exact variant it is visited at.
type Step struct {
	// Name is the problem family name, e.g. "IndependentSet".
	Name string

	// Variant is the node's exact variant.
	Variant variant.Variant
}

// key returns the canonical node key of the step.
func (s Step) key() string { return nodeKey(s.Name, s.Variant) }

// Path is an ordered walk through the reduction graph, including both
// endpoints: Steps[0] is the source node, Steps[len-1] the destination.
type Path struct {
	// Steps are the visited nodes in order.
	Steps []Step
}

// Len returns the number of reduction hops: one less than the number of
// visited nodes, 0 for an empty or single-node path.
func (p *Path) Len() int {
	if p == nil || len(p.Steps) <= 1 {
		return 0
	}
	return len(p.Steps) - 1
}

// IsEmpty reports whether the path visits no nodes.
func (p *Path) IsEmpty() bool { return p == nil || len(p.Steps) == 0 }

// Source returns the first step's problem name, or "" for an empty path.
func (p *Path) Source() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Steps[0].Name
}

// Target returns the last step's problem name, or "" for an empty path.
func (p *Path) Target() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Steps[len(p.Steps)-1].Name
}

// TypeNames returns the visited problem names in order.
func (p *Path) TypeNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name
	}
	return names
}

// String renders the path as "A -> B -> C" over problem names.
func (p *Path) String() string {
	return strings.Join(p.TypeNames(), " -> ")
}

// nodeKey builds the canonical map key of a (name, variant) node.
func nodeKey(name string, v variant.Variant) string {
	return name + "|" + v.String()
}
