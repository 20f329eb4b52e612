package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

func identityApply(src any) (any, registry.Extractor, error) {
	return src, registry.IdentityExtractor, nil
}

func testEntry(src, dst string, srcVar, dstVar variant.Variant) registry.Entry {
	return registry.Entry{
		SourceName:       src,
		TargetName:       dst,
		SourceVariant:    srcVar,
		TargetVariant:    dstVar,
		Overhead:         func() poly.Overhead { return poly.Identity("n") },
		Apply:            identityApply,
		SourceSizeFields: []string{"n"},
		TargetSizeFields: []string{"n"},
		Origin:           "registry_test",
	}
}

func TestRegister_Malformed(t *testing.T) {
	assert.Panics(t, func() {
		registry.Register(registry.Entry{TargetName: "B", Overhead: nil})
	})
	assert.Panics(t, func() {
		e := testEntry("A", "B", nil, nil)
		e.Apply = nil
		registry.Register(e)
	})
	assert.Panics(t, func() {
		registry.RegisterVariant(registry.VariantNode{Name: ""})
	})
}

func TestEntriesBetween(t *testing.T) {
	unweighted := variant.MustNew(variant.Weight("One"))
	registry.Register(testEntry("RegTestAlpha", "RegTestBeta", unweighted, unweighted))
	registry.Register(testEntry("RegTestBeta", "RegTestAlpha", unweighted, unweighted))

	forward := registry.EntriesBetween("RegTestAlpha", "RegTestBeta")
	require.Len(t, forward, 1)
	assert.Equal(t, "RegTestAlpha", forward[0].SourceName)

	assert.Empty(t, registry.EntriesBetween("RegTestAlpha", "NoSuchProblem"))
}

func TestEntry_IsBaseReduction(t *testing.T) {
	one := variant.MustNew(variant.Weight("One"))
	intW := variant.MustNew(variant.Weight("Int"))
	none := variant.Variant(nil)

	assert.True(t, testEntry("A", "B", one, one).IsBaseReduction())
	assert.True(t, testEntry("A", "B", none, one).IsBaseReduction(),
		"absent weight dimension counts as unweighted")
	assert.False(t, testEntry("A", "B", one, intW).IsBaseReduction())
	assert.False(t, testEntry("A", "B", intW, intW).IsBaseReduction())
}

// TestNaturalCasts_Synthesis verifies derivation of specialized→general
// edges from subtype declarations, including the identity overhead and
// identity execution of the synthesized edge.
func TestNaturalCasts_Synthesis(t *testing.T) {
	// Private dimension key so this test owns its corner of the relation.
	key := variant.CustomKey("regtest-lattice")
	variant.RegisterSubtype(key, "Narrow", "Wide")

	narrow := variant.MustNew(variant.Dim(key, "Narrow"), variant.Weight("One"))
	registry.RegisterVariant(registry.VariantNode{
		Name:       "RegTestCastable",
		Variant:    narrow,
		SizeFields: []string{"n", "m"},
	})

	var cast *registry.Entry
	for _, e := range registry.NaturalCasts() {
		e := e
		if e.SourceName == "RegTestCastable" && e.Natural {
			cast = &e
			break
		}
	}
	require.NotNil(t, cast, "expected a synthesized cast for RegTestCastable")

	assert.Equal(t, "RegTestCastable", cast.TargetName)
	got, _ := cast.TargetVariant.Get(key)
	assert.Equal(t, "Wide", got)
	gotW, _ := cast.TargetVariant.Get(variant.WeightKey())
	assert.Equal(t, "One", gotW, "other dimensions are preserved")

	// Identity overhead over the node's size fields.
	in := poly.ProblemSize{"n": 7, "m": 3}
	assert.True(t, cast.Overhead().EvaluateOutputSize(in).Equal(in))

	// Identity execution.
	instance := struct{ tag string }{"payload"}
	out, extract, err := cast.Apply(instance)
	require.NoError(t, err)
	assert.Equal(t, instance, out)
	assert.Equal(t, []int{1, 0, 1}, extract([]int{1, 0, 1}))
}

// TestNaturalCasts_NoRelation: with no subtype declarations touching a
// node's dimension values, no cast is produced for it.
func TestNaturalCasts_NoRelation(t *testing.T) {
	v := variant.MustNew(variant.Dim(variant.CustomKey("regtest-isolated"), "Alone"))
	registry.RegisterVariant(registry.VariantNode{Name: "RegTestIsolated", Variant: v, SizeFields: []string{"n"}})

	for _, e := range registry.NaturalCasts() {
		assert.NotEqual(t, "RegTestIsolated", e.SourceName)
	}
}
