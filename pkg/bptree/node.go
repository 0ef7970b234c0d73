package bptree

import (
	"fmt"
	"strings"
)

// Kind distinguishes the three block variants of a tree description.
type Kind int

const (
	// KindInternal is a block with explicitly declared children.
	KindInternal Kind = iota
	// KindLeaf is a block declared as a bare list of keys.
	KindLeaf
	// KindOmitted is a placeholder for a block whose subtree was left out
	// of the description to keep the diagram compact.
	KindOmitted
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindLeaf:
		return "leaf"
	case KindOmitted:
		return "omitted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one block of the declared tree.
//
// Keys holds the display form of the block's key values in declaration
// order; it is never padded here. Padding to the tree-wide capacity is a
// rendering concern and carries no structural meaning.
//
// Path is the child-index path from the root (empty for the root itself).
// It is stable across rebuilds of the same description and doubles as the
// node's identity in error messages and rendered output.
type Node struct {
	Kind     Kind
	Keys     []string
	Children []*Node
	Path     []int
}

// ID returns the node's stable identifier, "block" followed by the dotted
// child-index path ("block" for the root, "block0.1" for the second child
// of the first child).
func (n *Node) ID() string {
	var sb strings.Builder
	sb.WriteString("block")
	for i, c := range n.Path {
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	return sb.String()
}

// Tree is a fully built, immutable B+ tree description.
// KeysPerBlock is the tree-wide key capacity used for display padding.
type Tree struct {
	KeysPerBlock int
	Root         *Node
}

// ChildrenPerBlock returns the maximum number of children per block,
// KeysPerBlock+1 by the usual B+ tree fan-out.
func (t *Tree) ChildrenPerBlock() int {
	return t.KeysPerBlock + 1
}

// Nodes returns every node in depth-first preorder. The order is
// deterministic for a given description.
func (t *Tree) Nodes() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	if t.Root != nil {
		walk(t.Root)
	}
	return out
}

// LeafGroups returns the leaf nodes in left-to-right order, split into
// contiguous groups wherever an omitted placeholder sits on the frontier.
// Sibling-chain edges may only connect consecutive leaves within a group:
// an omitted subtree between two leaves could hide any number of further
// leaves, so the chain must not span it.
//
// Omitted placeholders have no children and therefore never sit on the
// path between a leaf and the root, so splitting the frontier is the whole
// adjacency test.
func (t *Tree) LeafGroups() [][]*Node {
	var groups [][]*Node
	var current []*Node

	cut := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Kind {
		case KindLeaf:
			current = append(current, n)
		case KindOmitted:
			cut()
		case KindInternal:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	if t.Root != nil {
		walk(t.Root)
	}
	cut()
	return groups
}
