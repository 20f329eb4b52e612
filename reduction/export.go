// JSON export of the reduction graph for external visualization.

package reduction

import "encoding/json"

// NodeJSON is one graph node in the export shape.
type NodeJSON struct {
	Name    string            `json:"name"`
	Variant map[string]string `json:"variant"`
}

// EdgeJSON is one graph edge in the export shape. Overhead maps each
// output size field to the string rendering of its polynomial.
type EdgeJSON struct {
	Source        string            `json:"source"`
	SourceVariant map[string]string `json:"source_variant"`
	Target        string            `json:"target"`
	TargetVariant map[string]string `json:"target_variant"`
	Natural       bool              `json:"natural,omitempty"`
	Overhead      map[string]string `json:"overhead"`
}

// GraphJSON is the full export shape: nodes in deterministic sorted
// order, edges in registration order (explicit first, natural casts
// after).
type GraphJSON struct {
	Nodes []NodeJSON `json:"nodes"`
	Edges []EdgeJSON `json:"edges"`
}

// ToJSON builds the export value. Two builds of the same graph produce
// identical output, so diffs of exported snapshots stay meaningful.
func (g *Graph) ToJSON() GraphJSON {
	out := GraphJSON{
		Nodes: make([]NodeJSON, 0, len(g.order)),
		Edges: make([]EdgeJSON, 0, len(g.entries)),
	}

	for _, key := range g.order {
		n := g.nodes[key]
		out.Nodes = append(out.Nodes, NodeJSON{
			Name:    n.Name,
			Variant: n.Variant.ToLegacyMap(),
		})
	}

	for _, e := range g.entries {
		o := e.Overhead()
		overhead := make(map[string]string, len(o.Terms))
		for _, t := range o.Terms {
			overhead[t.Field] = t.Poly.String()
		}
		out.Edges = append(out.Edges, EdgeJSON{
			Source:        e.SourceName,
			SourceVariant: e.SourceVariant.ToLegacyMap(),
			Target:        e.TargetName,
			TargetVariant: e.TargetVariant.ToLegacyMap(),
			Natural:       e.Natural,
			Overhead:      overhead,
		})
	}

	return out
}

// ToJSONString renders the export value as indented JSON.
func (g *Graph) ToJSONString() (string, error) {
	b, err := json.MarshalIndent(g.ToJSON(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
