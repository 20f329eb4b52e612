// The global reduction table: load-time registration, read-mostly queries,
// and the concrete-variant node registrations natural casts build on.

package registry

import (
	"fmt"
	"sync"

	"github.com/CodingThrust/problemreductions/variant"
)

// VariantNode is one (problem name, variant) node registered explicitly so
// it exists in the reduction graph even when no explicit rule touches it.
type VariantNode struct {
	// Name is the problem family name.
	Name string

	// Variant is the node's exact variant.
	Variant variant.Variant

	// SizeFields are the problem's size-dimension names, used to build the
	// identity overhead of natural casts leaving this node.
	SizeFields []string
}

var (
	mu      sync.RWMutex
	entries []Entry
	nodes   []VariantNode
)

// Register appends one reduction edge to the global table. It is intended
// to be called from init functions; the table is immutable once the process
// starts serving queries. Register panics on a malformed entry, so a broken
// registration surfaces at load time rather than mid-query.
func Register(e Entry) {
	if err := e.validate(); err != nil {
		panic(fmt.Sprintf("%v: %s -> %s: %v", ErrBadEntry, e.SourceName, e.TargetName, err))
	}
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, e)
}

// RegisterVariant declares a (problem, variant) node that is the endpoint
// of no explicit reduction but must still exist in the graph — typically so
// natural weight-promotion or topology-relaxation edges can reach it.
func RegisterVariant(n VariantNode) {
	if n.Name == "" {
		panic(fmt.Sprintf("%v: variant node with empty name", ErrBadEntry))
	}
	mu.Lock()
	defer mu.Unlock()
	nodes = append(nodes, n)
}

// Entries returns a snapshot of all explicitly registered edges.
func Entries() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	return append([]Entry(nil), entries...)
}

// EntriesBetween returns the registered edges from problem name src to
// problem name dst, in registration order. Path search uses this for
// adjacency expansion.
func EntriesBetween(src, dst string) []Entry {
	mu.RLock()
	defer mu.RUnlock()
	var out []Entry
	for _, e := range entries {
		if e.SourceName == src && e.TargetName == dst {
			out = append(out, e)
		}
	}
	return out
}

// VariantNodes returns a snapshot of the explicitly registered nodes.
func VariantNodes() []VariantNode {
	mu.RLock()
	defer mu.RUnlock()
	return append([]VariantNode(nil), nodes...)
}
