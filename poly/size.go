// ProblemSize: the named integer size dimensions of one problem instance.

package poly

import (
	"fmt"
	"sort"
	"strings"
)

// ProblemSize maps a named size dimension (free-form, e.g. "num_vertices")
// to a non-negative integer. The zero value (nil map) is a valid empty
// size. Lookups of unknown dimensions return 0 by contract.
type ProblemSize map[string]int

// Get returns the value of the named dimension, or 0 if absent.
func (s ProblemSize) Get(name string) int {
	return s[name]
}

// Clone returns an independent copy of s.
func (s ProblemSize) Clone() ProblemSize {
	c := make(ProblemSize, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Equal reports whether s and o bind exactly the same dimensions to the
// same values.
func (s ProblemSize) Equal(o ProblemSize) bool {
	if len(s) != len(o) {
		return false
	}
	for k, v := range s {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// String renders the size deterministically, dimensions sorted ascending:
// "ProblemSize{num_edges: 3, num_vertices: 4}".
func (s ProblemSize) String() string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("ProblemSize{")
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", name, s[name])
	}
	b.WriteString("}")
	return b.String()
}
