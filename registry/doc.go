// Package registry holds the process-wide table of reduction edges.
//
// Every reduction implementation registers one Entry per direction from an
// init function — the Go rendering of load-time self-registration, the same
// discipline database/sql drivers use. Registration is append-only and
// order-independent; the table is treated as immutable once the process has
// started serving queries.
//
// An Entry carries:
//
//   - source and target problem names and variant patterns,
//   - a lazily-invoked overhead constructor (symbolic size growth),
//   - a type-erased Apply function that executes the reduction on a
//     concrete instance and returns the target instance together with a
//     single-hop solution extractor,
//   - the problem size field names of both sides, and an origin tag naming
//     the registering package for diagnostics.
//
// Problems that appear in no explicit rule but must still exist as nodes of
// the reduction graph (so natural casts can reach them) register through
// RegisterVariant.
//
// Natural casts:
//
//	NaturalCasts derives zero-cost, identity-overhead edges from the
//	variant package's subtype declarations: for every known (problem,
//	variant) node and every dimension whose value has a declared direct
//	supertype, it synthesizes the specialized→general edge. These edges are
//	recomputed on every call — they are a view over the subtype relation,
//	never cached across registrations.
//
// Failure modes:
//
//	Register panics on a malformed entry (empty names, nil overhead or
//	apply function). Variant patterns cannot carry duplicate keys by
//	construction (variant.New rejects them), so malformed patterns are
//	caught before an Entry can be built. NaturalCasts never fails; with no
//	applicable subtype relation it produces no edges.
package registry
