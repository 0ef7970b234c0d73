// Package bptree builds the in-memory model of a declared B+ tree.
//
// The input is the generic value produced by decoding a tree description
// document (see [github.com/btreedot/btreedot/pkg/source/treedoc]): a nested
// structure in which every block is either a bare list of keys or a mapping
// with a "keys" list and an optional "children" list. [New] turns that
// structure into a tree of typed [Node] values, deciding each node's [Kind]
// exactly once:
//
//   - a bare key list is a leaf
//   - a mapping with children is an internal block
//   - a mapping without children is an omitted placeholder, marking a
//     deliberately truncated subtree
//
// Omitted placeholders carry no descendants. They matter only as barriers
// when computing the leaf sibling chain: the subtree behind them could hold
// any number of additional leaves, so adjacency across them is unprovable.
// [Tree.LeafGroups] splits the left-to-right leaf frontier at every such
// barrier.
//
// The tree is immutable after New and holds no back-references; the sibling
// chain is derived at render time, never stored.
package bptree
