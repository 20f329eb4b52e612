// Problem interface, optimization direction, and the shared variant
// vocabulary (topologies, weight kinds, option plumbing).

package problems

import (
	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// Graph topology names, specialized to general. The subtype declarations
// live in the rules package so that importing problems alone stays
// side-effect free.
const (
	TopologySimple    = "SimpleGraph"
	TopologyPlanar    = "PlanarGraph"
	TopologyBipartite = "BipartiteGraph"
	TopologyUnitDisk  = "UnitDiskGraph"
	TopologyGrid      = "GridGraph"
)

// Weight kind names for the variant weight dimension.
const (
	WeightOne   = "One"
	WeightInt   = "Int"
	WeightFloat = "Float"
)

// Direction is a problem's optimization sense.
type Direction int

const (
	// Maximize: larger Evaluate values are better.
	Maximize Direction = iota

	// Minimize: smaller Evaluate values are better.
	Minimize
)

// String returns "max" or "min".
func (d Direction) String() string {
	if d == Minimize {
		return "min"
	}
	return "max"
}

// Problem is the capability surface every concrete model exposes to the
// reduction machinery and the solvers.
type Problem interface {
	// Name is the problem family name, e.g. "IndependentSet".
	Name() string

	// Variant reports the model's typed identity dimensions.
	Variant() variant.Variant

	// Size reports the model's size in named integer dimensions.
	Size() poly.ProblemSize

	// NumVariables is the number of decision variables in a configuration.
	NumVariables() int

	// NumFlavors is the number of values each variable ranges over.
	NumFlavors() int

	// Direction is the optimization sense.
	Direction() Direction

	// Evaluate scores a configuration and reports whether it satisfies
	// the model's hard constraints. Invalid configurations (wrong length,
	// out-of-range values) are reported as invalid with value 0.
	Evaluate(config []int) (value float64, valid bool)
}

// validTopologies is the closed set accepted by WithTopology.
var validTopologies = map[string]bool{
	TopologySimple:    true,
	TopologyPlanar:    true,
	TopologyBipartite: true,
	TopologyUnitDisk:  true,
	TopologyGrid:      true,
}

type graphOptions struct {
	topology      string
	vertexWeights []int
	edgeWeights   []int
}

// GraphOption customizes a graph-problem constructor.
type GraphOption func(*graphOptions)

func defaultGraphOptions() graphOptions {
	return graphOptions{topology: TopologySimple}
}

// WithTopology declares the graph topology the instance lives on. Unknown
// topology names panic: a typo here is a programming error, not input.
func WithTopology(name string) GraphOption {
	if !validTopologies[name] {
		panic("problems: unknown graph topology " + name)
	}
	return func(o *graphOptions) { o.topology = name }
}

// WithVertexWeights attaches integer vertex weights; the instance's weight
// kind becomes "Int". Length must match the vertex count (checked by the
// constructor).
func WithVertexWeights(weights []int) GraphOption {
	return func(o *graphOptions) { o.vertexWeights = append([]int(nil), weights...) }
}

// WithEdgeWeights attaches integer edge weights, in edge order.
func WithEdgeWeights(weights []int) GraphOption {
	return func(o *graphOptions) { o.edgeWeights = append([]int(nil), weights...) }
}

// graphVariant builds the standard {graph, weight} variant.
func graphVariant(topology, weightKind string) variant.Variant {
	return variant.MustNew(variant.Graph(topology), variant.Weight(weightKind))
}

// unitWeights returns n ones.
func unitWeights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// boolConfigOK reports whether config is a well-formed two-flavor
// configuration of length n.
func boolConfigOK(config []int, n int) bool {
	return configOK(config, n, 2)
}

func configOK(config []int, n, flavors int) bool {
	if len(config) != n {
		return false
	}
	for _, v := range config {
		if v < 0 || v >= flavors {
			return false
		}
	}
	return true
}

// sumSelected adds weights[i] over all i with config[i] == 1.
func sumSelected(config, weights []int) float64 {
	sum := 0
	for i, v := range config {
		if v == 1 {
			sum += weights[i]
		}
	}
	return float64(sum)
}
