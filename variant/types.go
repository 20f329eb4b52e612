// This file declares Key, Dimension, Variant, the package's sentinel errors,
// and the constructors and accessors used by the registry and the reduction
// graph. Subtype bookkeeping lives in subtype.go.

package variant

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for variant construction and subtype queries.
var (
	// ErrDuplicateKey indicates the same dimension key appeared twice while
	// building one Variant.
	ErrDuplicateKey = errors.New("variant: duplicate dimension key")

	// ErrSubtypeCycle indicates the declared subtype edges contain a cycle.
	ErrSubtypeCycle = errors.New("variant: subtype declarations form a cycle")
)

// Kind enumerates the closed set of dimension categories.
type Kind uint8

const (
	// KindGraph is the graph-topology dimension (value e.g. "SimpleGraph").
	KindGraph Kind = iota

	// KindWeight is the weight-domain dimension (value e.g. "One", "Int").
	KindWeight

	// KindConstParam is a named constant parameter (e.g. the k of k-SAT).
	KindConstParam

	// KindDomain is a named domain-specific dimension.
	KindDomain

	// KindCustom is an arbitrary named dimension kept for forward compatibility.
	KindCustom
)

// Key identifies one dimension of problem identity. Keys are comparable and
// usable as map keys; the name field is empty for the closed Graph and
// Weight categories.
type Key struct {
	kind Kind
	name string
}

// GraphKey returns the graph-topology dimension key.
func GraphKey() Key { return Key{kind: KindGraph} }

// WeightKey returns the weight-domain dimension key.
func WeightKey() Key { return Key{kind: KindWeight} }

// ConstParamKey returns the key of the named constant parameter.
func ConstParamKey(name string) Key { return Key{kind: KindConstParam, name: name} }

// DomainKey returns the key of the named domain-specific dimension.
func DomainKey(name string) Key { return Key{kind: KindDomain, name: name} }

// CustomKey returns an arbitrary named dimension key.
func CustomKey(name string) Key { return Key{kind: KindCustom, name: name} }

// Kind reports the dimension category of k.
func (k Key) Kind() Kind { return k.kind }

// String returns the stable string form of the key, used for serialization
// and for matching against the subtype registry: "graph" and "weight" for
// the closed categories, the declared name otherwise.
func (k Key) String() string {
	switch k.kind {
	case KindGraph:
		return "graph"
	case KindWeight:
		return "weight"
	default:
		return k.name
	}
}

// KeyFromLegacy rebuilds a typed key from its stable string form. Unknown
// strings map to a Custom key, mirroring how untyped boundary data is
// absorbed.
func KeyFromLegacy(s string) Key {
	switch s {
	case "graph":
		return GraphKey()
	case "weight":
		return WeightKey()
	default:
		return CustomKey(s)
	}
}

// Dimension is one (Key, value) pair of a variant.
type Dimension struct {
	// Key is the dimension key.
	Key Key

	// Value is the dimension value, e.g. "SimpleGraph".
	Value string
}

// Graph builds a graph-topology dimension.
func Graph(value string) Dimension { return Dimension{Key: GraphKey(), Value: value} }

// Weight builds a weight-domain dimension.
func Weight(value string) Dimension { return Dimension{Key: WeightKey(), Value: value} }

// ConstParam builds a named constant-parameter dimension.
func ConstParam(name, value string) Dimension {
	return Dimension{Key: ConstParamKey(name), Value: value}
}

// Dim builds a dimension with an explicit key.
func Dim(key Key, value string) Dimension { return Dimension{Key: key, Value: value} }

// Variant is an unordered mapping from dimension key to value. Within one
// variant each key appears at most once; the constructors enforce this.
// The zero value (nil map) is a valid empty variant.
type Variant map[Key]string

// New builds a Variant from the given dimensions. It returns
// ErrDuplicateKey (wrapped with the offending key) if the same key appears
// more than once.
func New(dims ...Dimension) (Variant, error) {
	v := make(Variant, len(dims))
	for _, d := range dims {
		if _, dup := v[d.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, d.Key.String())
		}
		v[d.Key] = d.Value
	}
	return v, nil
}

// MustNew is New that panics on a duplicate key. Intended for load-time
// registrations where a duplicate is a programming error.
func MustNew(dims ...Dimension) Variant {
	v, err := New(dims...)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Get returns the value bound to key and whether it is present.
func (v Variant) Get(key Key) (string, bool) {
	val, ok := v[key]
	return val, ok
}

// Equal reports whether v and o bind exactly the same key/value pairs.
func (v Variant) Equal(o Variant) bool {
	if len(v) != len(o) {
		return false
	}
	for k, val := range v {
		if ov, ok := o[k]; !ok || ov != val {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v Variant) Clone() Variant {
	c := make(Variant, len(v))
	for k, val := range v {
		c[k] = val
	}
	return c
}

// With returns a copy of v with one dimension rebound. The original is not
// modified.
func (v Variant) With(key Key, value string) Variant {
	c := v.Clone()
	c[key] = value
	return c
}

// ToLegacyMap converts v to the plain string-keyed map used at the system
// boundary.
func (v Variant) ToLegacyMap() map[string]string {
	m := make(map[string]string, len(v))
	for k, val := range v {
		m[k.String()] = val
	}
	return m
}

// FromLegacyMap rebuilds a typed Variant from a plain string-keyed map.
func FromLegacyMap(m map[string]string) Variant {
	v := make(Variant, len(m))
	for k, val := range m {
		v[KeyFromLegacy(k)] = val
	}
	return v
}

// String returns a canonical, deterministic rendering of the variant:
// legacy keys sorted ascending, formatted as "k=v" joined by commas.
// It is stable across processes and usable as a map key.
func (v Variant) String() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v))
	for k, val := range v {
		parts = append(parts, k.String()+"="+val)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
