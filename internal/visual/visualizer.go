// Package visual renders the typestate machine of a map: one node per
// occupancy witness, one edge per state-changing operation.
package visual

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ihciah/certain-map/internal/model"
)

// DefaultVisualizer renders a model.Graph.
type DefaultVisualizer struct {
	// Collapse drops self-loops (replace in prefilled style, set on an
	// occupied slot in unfilled style).
	Collapse bool
}

// ExportDOT generates Graphviz DOT source for the graph. The empty and full
// states are marked; states in highlight are filled.
func (v *DefaultVisualizer) ExportDOT(g *model.Graph, highlight ...model.Occupancy) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", g.Map.Name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	active := make(map[model.Occupancy]bool, len(highlight))
	for _, o := range highlight {
		active[o] = true
	}

	for _, o := range g.States {
		attrs := fmt.Sprintf("label=%q", g.Label(o))
		switch o {
		case 0:
			attrs += " shape=ellipse"
		case g.Full():
			attrs += " shape=doubleoctagon"
		}
		if active[o] {
			attrs += " style=filled fillcolor=lightgreen"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(o), attrs)
	}

	for _, e := range v.edges(g) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeID(e.From), nodeID(e.To), e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the graph with slot names resolved.
func (v *DefaultVisualizer) ExportJSON(g *model.Graph) ([]byte, error) {
	doc := struct {
		Map    string   `json:"map"`
		Style  string   `json:"style"`
		States []string `json:"states"`
		Edges  []Edge   `json:"edges"`
	}{
		Map:   g.Map.Name,
		Style: string(g.Map.StyleOrDefault()),
		Edges: v.edges(g),
	}
	for _, o := range g.States {
		doc.States = append(doc.States, g.Label(o))
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Edge represents a transition edge.
type Edge struct {
	From  model.Occupancy `json:"from"`
	To    model.Occupancy `json:"to"`
	Label string          `json:"label"`
}

// edges collects all transitions, labelled "op slot".
func (v *DefaultVisualizer) edges(g *model.Graph) []Edge {
	var edges []Edge
	for _, tr := range g.Transitions {
		if tr.From == tr.To && v.Collapse {
			continue
		}
		if tr.Op == model.OpRemove && !tr.From.Has(tr.Slot) {
			// no-op remove on a vacant slot
			continue
		}
		edges = append(edges, Edge{
			From:  tr.From,
			To:    tr.To,
			Label: fmt.Sprintf("%s %s", tr.Op, g.Map.Slots[tr.Slot].Name),
		})
	}
	return edges
}

func nodeID(o model.Occupancy) string {
	return fmt.Sprintf("s%d", uint64(o))
}
