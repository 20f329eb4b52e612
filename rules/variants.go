// Subtype declarations and standalone variant nodes. Everything here is
// pure data for the natural-cast synthesis.

package rules

import (
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

var graphSizeFields = []string{"num_vertices", "num_edges"}

func init() {
	// Graph topology hierarchy, specialized to general.
	variant.RegisterSubtype(variant.GraphKey(), problems.TopologyPlanar, problems.TopologySimple)
	variant.RegisterSubtype(variant.GraphKey(), problems.TopologyBipartite, problems.TopologySimple)
	variant.RegisterSubtype(variant.GraphKey(), problems.TopologyUnitDisk, problems.TopologySimple)
	variant.RegisterSubtype(variant.GraphKey(), problems.TopologyGrid, problems.TopologyUnitDisk)

	// Weight promotion: unweighted embeds in integer weights, integer in
	// real. Combined with the casts this lets e.g. an unweighted MaxCut
	// route through integer spin glass into real-valued QUBO.
	variant.RegisterSubtype(variant.WeightKey(), problems.WeightOne, problems.WeightInt)
	variant.RegisterSubtype(variant.WeightKey(), problems.WeightInt, problems.WeightFloat)

	// Specialized-topology nodes with no explicit edges of their own; they
	// reach the rest of the graph purely through natural casts.
	for _, topo := range []string{problems.TopologyUnitDisk, problems.TopologyGrid} {
		registry.RegisterVariant(registry.VariantNode{
			Name:       "IndependentSet",
			Variant:    variant.MustNew(variant.Graph(topo), variant.Weight(problems.WeightOne)),
			SizeFields: graphSizeFields,
		})
	}
	registry.RegisterVariant(registry.VariantNode{
		Name:       "MaxCut",
		Variant:    variant.MustNew(variant.Graph(problems.TopologySimple), variant.Weight(problems.WeightOne)),
		SizeFields: graphSizeFields,
	})
}

// graphVariant is the {graph=SimpleGraph, weight=kind} pattern most
// entries in this package use.
func graphVariant(weightKind string) variant.Variant {
	return variant.MustNew(variant.Graph(problems.TopologySimple), variant.Weight(weightKind))
}

func weightVariant(kind string) variant.Variant {
	return variant.MustNew(variant.Weight(kind))
}
