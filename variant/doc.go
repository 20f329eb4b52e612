// Package variant models the typed identity of a problem instantiation.
//
// A problem family (IndependentSet, SpinGlass, …) is instantiated along a
// small set of identity dimensions: the graph topology it lives on, the
// weight domain of its objective, constant parameters such as the k of
// k-coloring, and free-form domain or custom dimensions. A Variant is the
// unordered collection of those dimension values; two variants are equal
// iff every key/value pair matches.
//
// Overview:
//
//   - Key:       a typed dimension key (Graph, Weight, ConstParam, Domain, Custom).
//   - Dimension: one (Key, value) pair.
//   - Variant:   a map from Key to value, at most one value per key.
//
// Besides identity, the package keeps the global subtype relation between
// dimension values. A declaration such as "PlanarGraph is a subtype of
// SimpleGraph" means any problem stated on a planar graph is also a valid
// problem on a simple graph. The relation is queried through its
// reflexive-transitive closure by IsSubtype, and the reduction registry
// derives zero-cost "natural cast" edges from the declared entries.
//
// Registration model:
//
//   - RegisterSubtype is called from init functions during process start-up
//     and the relation is treated as immutable afterwards.
//   - Declared edges must form a DAG. IsSubtype bounds its search with a
//     visited set so a malformed (cyclic) registration can never loop; use
//     CheckAcyclic to surface such a registration as an error before
//     building a reduction graph on top of it.
//
// Interop:
//
//	Variants cross the system boundary (JSON export, CLI flags) as plain
//	string-keyed maps. ToLegacyMap and FromLegacyMap convert between the
//	typed form and that representation, preserving the stable string keys
//	"graph" and "weight" for the two closed dimensions.
package variant
