// Subtype registry: global, append-only declarations of "value A is a
// direct subtype of value B" within one dimension category, plus the
// reflexive-transitive closure query used by path search and natural-cast
// synthesis.

package variant

import (
	"fmt"
	"sync"
)

// SubtypeEntry declares that, within the dimension identified by Key, the
// value Sub is a direct subtype of the value Super.
type SubtypeEntry struct {
	// Key is the dimension category the entry applies to (almost always the
	// graph dimension).
	Key Key

	// Sub is the more specialized value.
	Sub string

	// Super is the more general value.
	Super string
}

var (
	subtypeMu sync.RWMutex

	// subtypeEdges maps dimension key -> sub value -> direct super values.
	subtypeEdges = make(map[Key]map[string][]string)
)

// RegisterSubtype declares one direct subtype edge. It is intended to be
// called from init functions during process start-up; the relation is
// treated as immutable afterwards. Registering the same edge twice is a
// no-op. A self-edge is rejected by panic: the relation is reflexive by
// definition and a declared self-edge is a programming error.
func RegisterSubtype(key Key, sub, super string) {
	if sub == super {
		panic(fmt.Sprintf("variant: self subtype edge %q -> %q", sub, super))
	}
	subtypeMu.Lock()
	defer subtypeMu.Unlock()

	bySub, ok := subtypeEdges[key]
	if !ok {
		bySub = make(map[string][]string)
		subtypeEdges[key] = bySub
	}
	for _, s := range bySub[sub] {
		if s == super {
			return
		}
	}
	bySub[sub] = append(bySub[sub], super)
}

// IsSubtype reports whether value a is a subtype of value b within the
// given dimension, under the reflexive-transitive closure of the declared
// edges. The search is bounded by a visited set, so it terminates (and
// fails closed, returning false) even if a cyclic registration slipped in.
func IsSubtype(key Key, a, b string) bool {
	if a == b {
		return true
	}
	subtypeMu.RLock()
	defer subtypeMu.RUnlock()

	bySub, ok := subtypeEdges[key]
	if !ok {
		return false
	}

	// Iterative DFS from a; visited guards against cycles.
	visited := map[string]bool{a: true}
	stack := append([]string(nil), bySub[a]...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == b {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		stack = append(stack, bySub[cur]...)
	}
	return false
}

// DirectSupertypes returns the declared direct supertypes of value within
// the given dimension, in registration order. The returned slice is a copy.
func DirectSupertypes(key Key, value string) []string {
	subtypeMu.RLock()
	defer subtypeMu.RUnlock()

	bySub, ok := subtypeEdges[key]
	if !ok {
		return nil
	}
	return append([]string(nil), bySub[value]...)
}

// SubtypeEntries returns a snapshot of all declared direct edges.
func SubtypeEntries() []SubtypeEntry {
	subtypeMu.RLock()
	defer subtypeMu.RUnlock()

	var entries []SubtypeEntry
	for key, bySub := range subtypeEdges {
		for sub, supers := range bySub {
			for _, super := range supers {
				entries = append(entries, SubtypeEntry{Key: key, Sub: sub, Super: super})
			}
		}
	}
	return entries
}

// CheckAcyclic verifies that the declared edges form a DAG. It returns
// ErrSubtypeCycle (wrapped with the dimension key and the value on the
// cycle) if any cycle is found. Callers that build derived structures from
// the subtype relation, such as the reduction graph, run this before
// trusting the adjacency.
func CheckAcyclic() error {
	subtypeMu.RLock()
	defer subtypeMu.RUnlock()

	for key, bySub := range subtypeEdges {
		// Three-color DFS per dimension category.
		const (
			white = 0
			gray  = 1
			black = 2
		)
		color := make(map[string]int, len(bySub))

		var visit func(v string) error
		visit = func(v string) error {
			color[v] = gray
			for _, next := range bySub[v] {
				switch color[next] {
				case gray:
					return fmt.Errorf("%w: dimension %q, value %q", ErrSubtypeCycle, key.String(), next)
				case white:
					if err := visit(next); err != nil {
						return err
					}
				}
			}
			color[v] = black
			return nil
		}

		for v := range bySub {
			if color[v] == white {
				if err := visit(v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
