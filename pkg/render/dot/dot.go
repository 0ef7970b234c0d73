package dot

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/btreedot/btreedot/pkg/bptree"
)

// BlankKey is the glyph shown in key slots beyond a block's actual keys.
const BlankKey = "_"

// Table attributes per block kind. Omitted placeholders are muted to signal
// that structure was elided there.
const (
	attrsInternal = ` color="black" bgcolor="white"`
	attrsLeaf     = ` color="black" bgcolor="lightyellow"`
	attrsOmitted  = ` color="grey52" bgcolor="grey92"`
)

// Generate converts a tree to Graphviz DOT. Nodes are emitted in depth-first
// order, then parent→child edges, then the leaf sibling chain, so identical
// trees always yield byte-identical output.
func Generate(t *bptree.Tree) string {
	var buf bytes.Buffer
	buf.WriteString("digraph btree {\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=none];\n")
	buf.WriteString("\n")

	nodes := t.Nodes()
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q [label=<%s>];\n", n.ID(), tableLabel(n, t.KeysPerBlock))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for i, child := range n.Children {
			fmt.Fprintf(&buf, "  %q:%q -> %q:%q;\n",
				n.ID(), connectorPort(i), child.ID(), middlePort(t.KeysPerBlock))
		}
	}

	buf.WriteString("\n")
	for _, group := range t.LeafGroups() {
		for i := 0; i+1 < len(group); i++ {
			fmt.Fprintf(&buf, "  %q:%q -> %q:%q [constraint=false, color=\"grey40\"];\n",
				group[i].ID(), connectorPort(t.KeysPerBlock),
				group[i+1].ID(), connectorPort(0))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Check parses dot with the graphviz library and reports any syntax error.
// It performs no layout.
func Check(dot string) error {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	return g.Close()
}

// tableLabel builds the HTML table for one block: capacity key slots, each
// preceded by a connector cell, plus the trailing connector. Keys beyond the
// capacity are not displayed, and missing slots show the blank glyph.
func tableLabel(n *bptree.Node, capacity int) string {
	var sb strings.Builder
	sb.WriteString(`<table border="1" cellborder="0" cellspacing="0"`)
	sb.WriteString(kindAttrs(n.Kind))
	sb.WriteString(`><tr>`)
	for i := 0; i < capacity; i++ {
		content := BlankKey
		if i < len(n.Keys) {
			content = html.EscapeString(n.Keys[i])
		}
		fmt.Fprintf(&sb, `<td port="connector%d"></td><td port="key%d">%s</td>`, i, i, content)
	}
	fmt.Fprintf(&sb, `<td port="connector%d"></td>`, capacity)
	sb.WriteString(`</tr></table>`)
	return sb.String()
}

func kindAttrs(k bptree.Kind) string {
	switch k {
	case bptree.KindLeaf:
		return attrsLeaf
	case bptree.KindOmitted:
		return attrsOmitted
	default:
		return attrsInternal
	}
}

func connectorPort(i int) string {
	return fmt.Sprintf("connector%d", i)
}

// middlePort names the visually centered port of a block label: the middle
// key cell when the capacity is odd, the middle connector when it is even.
// Parent→child edges target this port so they attach at the child's center.
func middlePort(capacity int) string {
	if capacity%2 != 0 {
		return fmt.Sprintf("key%d", capacity/2)
	}
	return connectorPort((capacity + 1) / 2)
}
