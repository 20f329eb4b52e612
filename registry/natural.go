// Natural-cast synthesis: zero-cost identity edges derived from the
// variant subtype relation.

package registry

import (
	"sort"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// NaturalCasts derives the implicit specialized→general edges of the
// reduction graph. For every known (problem, variant) node and every
// dimension whose value has a declared direct supertype, one edge is
// synthesized toward the variant differing only in that dimension. Each
// edge has identity overhead over the problem's size fields, and its Apply
// is the identity on the instance and on solutions.
//
// The result is recomputed from the current subtype declarations on every
// call; callers that build a graph must not cache it across registry
// mutations. With no applicable subtype relation the result is empty.
func NaturalCasts() []Entry {
	var casts []Entry
	for _, n := range knownNodes() {
		for key, value := range n.Variant {
			for _, super := range variant.DirectSupertypes(key, value) {
				target := n.Variant.With(key, super)
				fields := append([]string(nil), n.SizeFields...)
				overhead := func() poly.Overhead { return poly.Identity(fields...) }
				casts = append(casts, Entry{
					SourceName:    n.Name,
					TargetName:    n.Name,
					SourceVariant: n.Variant,
					TargetVariant: target,
					Overhead:      overhead,
					Apply: func(src any) (any, Extractor, error) {
						return src, IdentityExtractor, nil
					},
					SourceSizeFields: fields,
					TargetSizeFields: fields,
					Origin:           "registry (natural cast)",
					Natural:          true,
				})
			}
		}
	}
	return casts
}

// knownNodes collects every distinct (problem, variant) node: endpoints of
// explicit entries plus explicitly registered variant nodes. Deterministic
// order keeps graph construction and export stable.
func knownNodes() []VariantNode {
	mu.RLock()
	defer mu.RUnlock()

	seen := make(map[string]VariantNode)
	add := func(name string, v variant.Variant, fields []string) {
		key := name + "|" + v.String()
		if _, ok := seen[key]; !ok {
			seen[key] = VariantNode{Name: name, Variant: v, SizeFields: fields}
		}
	}
	for _, e := range entries {
		add(e.SourceName, e.SourceVariant, e.SourceSizeFields)
		add(e.TargetName, e.TargetVariant, e.TargetSizeFields)
	}
	for _, n := range nodes {
		add(n.Name, n.Variant, n.SizeFields)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]VariantNode, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}
