// Package dot emits Graphviz DOT text for a built B+ tree description.
//
// Every block becomes one DOT node whose label is an HTML table with a
// single row: key cells padded with a blank glyph up to the tree-wide
// capacity, interleaved with connector cells that expose named ports.
// Parent→child edges run from the parent's connector ports to the middle
// port of each child, reproducing the declared branching exactly. A second
// pass links the leaf frontier left to right with constraint-free edges so
// the layout engine draws the characteristic sibling chain without letting
// it influence the hierarchy; the chain is cut wherever an omitted subtree
// makes adjacency unprovable (see [bptree.Tree.LeafGroups]).
//
// Output is deterministic: identical trees produce byte-identical DOT.
// [Check] round-trips the text through the graphviz parser so callers can
// assert it is consumable before handing it to an external layout tool.
package dot
