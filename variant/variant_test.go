package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingThrust/problemreductions/variant"
)

// TestNew_DuplicateKey verifies that a duplicated dimension key is rejected
// at construction time, not discovered later.
func TestNew_DuplicateKey(t *testing.T) {
	_, err := variant.New(variant.Graph("SimpleGraph"), variant.Graph("PlanarGraph"))
	require.ErrorIs(t, err, variant.ErrDuplicateKey)

	_, err = variant.New(variant.Graph("SimpleGraph"), variant.Weight("One"))
	require.NoError(t, err)
}

// TestMustNew_Panics verifies the load-time constructor panics on misuse.
func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		variant.MustNew(variant.Weight("One"), variant.Weight("Int"))
	})
}

// TestVariant_Equal covers order independence and value sensitivity.
func TestVariant_Equal(t *testing.T) {
	a := variant.MustNew(variant.Graph("SimpleGraph"), variant.Weight("One"))
	b := variant.MustNew(variant.Weight("One"), variant.Graph("SimpleGraph"))
	c := variant.MustNew(variant.Graph("SimpleGraph"), variant.Weight("Int"))
	d := variant.MustNew(variant.Graph("SimpleGraph"))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, d.Equal(a))
}

// TestVariant_LegacyRoundTrip checks the boundary conversion both ways.
func TestVariant_LegacyRoundTrip(t *testing.T) {
	v := variant.MustNew(
		variant.Graph("UnitDiskGraph"),
		variant.Weight("One"),
		variant.ConstParam("k", "3"),
	)

	m := v.ToLegacyMap()
	assert.Equal(t, "UnitDiskGraph", m["graph"])
	assert.Equal(t, "One", m["weight"])
	assert.Equal(t, "3", m["k"])

	back := variant.FromLegacyMap(m)
	// ConstParam keys round-trip through the legacy form as Custom keys;
	// the stable string form (and therefore String()) must still agree.
	assert.Equal(t, v.String(), back.String())
}

// TestVariant_String is deterministic and sorted regardless of insertion order.
func TestVariant_String(t *testing.T) {
	a := variant.MustNew(variant.Weight("One"), variant.Graph("SimpleGraph"))
	b := variant.MustNew(variant.Graph("SimpleGraph"), variant.Weight("One"))
	assert.Equal(t, "graph=SimpleGraph,weight=One", a.String())
	assert.Equal(t, a.String(), b.String())

	var empty variant.Variant
	assert.Equal(t, "", empty.String())
}

// TestVariant_With returns a rebound copy and leaves the receiver alone.
func TestVariant_With(t *testing.T) {
	a := variant.MustNew(variant.Graph("PlanarGraph"), variant.Weight("One"))
	b := a.With(variant.GraphKey(), "SimpleGraph")

	got, ok := b.Get(variant.GraphKey())
	require.True(t, ok)
	assert.Equal(t, "SimpleGraph", got)

	got, ok = a.Get(variant.GraphKey())
	require.True(t, ok)
	assert.Equal(t, "PlanarGraph", got)
}

// TestSubtype_TransitiveClosure checks reflexivity, one-step and
// transitive queries over a private dimension key.
func TestSubtype_TransitiveClosure(t *testing.T) {
	key := variant.CustomKey("topology-closure-test")
	variant.RegisterSubtype(key, "Grid", "UnitDisk")
	variant.RegisterSubtype(key, "UnitDisk", "Simple")

	assert.True(t, variant.IsSubtype(key, "Grid", "Grid"), "reflexive")
	assert.True(t, variant.IsSubtype(key, "Grid", "UnitDisk"), "direct")
	assert.True(t, variant.IsSubtype(key, "Grid", "Simple"), "transitive")
	assert.True(t, variant.IsSubtype(key, "UnitDisk", "Simple"))

	assert.False(t, variant.IsSubtype(key, "Simple", "Grid"), "not symmetric")
	assert.False(t, variant.IsSubtype(key, "UnitDisk", "Grid"))
	assert.False(t, variant.IsSubtype(key, "Unknown", "Simple"))
}

// TestSubtype_DirectSupertypes returns only declared one-step edges.
func TestSubtype_DirectSupertypes(t *testing.T) {
	key := variant.CustomKey("topology-direct-test")
	variant.RegisterSubtype(key, "A", "B")
	variant.RegisterSubtype(key, "B", "C")
	// Duplicate registration is a no-op.
	variant.RegisterSubtype(key, "A", "B")

	assert.Equal(t, []string{"B"}, variant.DirectSupertypes(key, "A"))
	assert.Equal(t, []string{"C"}, variant.DirectSupertypes(key, "B"))
	assert.Empty(t, variant.DirectSupertypes(key, "C"))
}

// TestSubtype_CycleDetection drives the DAG invariant end to end: an
// acyclic chain passes CheckAcyclic, closing the loop fails it, and
// IsSubtype still terminates (fail closed) on the corrupted relation.
func TestSubtype_CycleDetection(t *testing.T) {
	key := variant.CustomKey("topology-cycle-test")
	variant.RegisterSubtype(key, "X", "Y")
	variant.RegisterSubtype(key, "Y", "Z")
	require.NoError(t, variant.CheckAcyclic())

	// Close the cycle Z -> X.
	variant.RegisterSubtype(key, "Z", "X")
	require.ErrorIs(t, variant.CheckAcyclic(), variant.ErrSubtypeCycle)

	// Bounded search: terminates, answers positive queries on the cycle,
	// and returns false for values outside it.
	assert.True(t, variant.IsSubtype(key, "X", "Z"))
	assert.False(t, variant.IsSubtype(key, "X", "Elsewhere"))
}

// TestRegisterSubtype_SelfEdgePanics confirms self-edges are programming errors.
func TestRegisterSubtype_SelfEdgePanics(t *testing.T) {
	assert.Panics(t, func() {
		variant.RegisterSubtype(variant.CustomKey("self-test"), "A", "A")
	})
}

// TestKeyFromLegacy maps the closed categories and falls back to Custom.
func TestKeyFromLegacy(t *testing.T) {
	assert.Equal(t, variant.GraphKey(), variant.KeyFromLegacy("graph"))
	assert.Equal(t, variant.WeightKey(), variant.KeyFromLegacy("weight"))
	assert.Equal(t, variant.CustomKey("k"), variant.KeyFromLegacy("k"))
}
