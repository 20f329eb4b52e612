package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/reduction"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

// routeEntry builds a pass-through edge into a destination node with an
// explicit variant; enough for destination-resolution tests.
func routeEntry(src, dst string, dstVariant variant.Variant, ov poly.Overhead) registry.Entry {
	return registry.Entry{
		SourceName:       src,
		TargetName:       dst,
		SourceVariant:    variant.Variant{},
		TargetVariant:    dstVariant,
		Overhead:         func() poly.Overhead { return ov },
		Apply:            func(s any) (any, registry.Extractor, error) { return s, registry.IdentityExtractor, nil },
		SourceSizeFields: []string{"n"},
		TargetSizeFields: []string{"n"},
		Origin:           "root_test",
	}
}

func TestCheapestToName_ComparesByCost(t *testing.T) {
	// Two variants of destination T: the one-hop route blows n up tenfold,
	// the two-hop route only increments it. Name-only resolution must rank
	// the candidates by the requested cost function, not by hop count.
	modeA := variant.MustNew(variant.Dim(variant.CustomKey("mode"), "a"))
	modeB := variant.MustNew(variant.Dim(variant.CustomKey("mode"), "b"))

	tenfold := poly.NewOverhead(poly.Term("n", poly.Var("n").Scale(10)))
	inc := poly.NewOverhead(poly.Term("n", poly.Var("n").Add(poly.Constant(1))))

	g, err := reduction.NewGraphFromEntries([]registry.Entry{
		routeEntry("A", "T", modeA, tenfold),
		routeEntry("A", "M", variant.Variant{}, inc),
		routeEntry("M", "T", modeB, inc),
	})
	require.NoError(t, err)
	size := poly.ProblemSize{"n": 5}

	// Under Minimize("n") the detour costs 6+7=13 against the direct 50.
	p := cheapestToName(g, "A", variant.Variant{}, "T", size, reduction.Minimize("n"))
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "M", "T"}, p.TypeNames())

	// Hop count still prefers the direct edge.
	p = cheapestToName(g, "A", variant.Variant{}, "T", size, reduction.MinimizeSteps{})
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "T"}, p.TypeNames())

	// Unknown destination name resolves to absence.
	assert.Nil(t, cheapestToName(g, "A", variant.Variant{}, "X", size, reduction.MinimizeSteps{}))
}
