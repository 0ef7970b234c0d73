package bptree

import (
	"fmt"
	"strings"
)

// MalformedBlockError reports a block entry that is neither a bare key list
// nor a well-formed keys/children mapping. Path locates the failing block in
// the source document (e.g. "tree.children[1].children[0]").
type MalformedBlockError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("malformed block at %s: %s", e.Path, e.Reason)
}

// ConfigError reports an unusable tree-wide configuration value.
// It is returned before any block is built.
type ConfigError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// New builds a tree from a decoded description.
//
// keysPerBlock must be positive; otherwise New returns a [*ConfigError]
// without looking at the description. entry is the decoded "tree" document
// field. A nil entry yields a tree with a nil root (an empty diagram).
//
// Block shapes are the only thing validated: every entry must be a bare key
// list or a mapping with a "keys" list. Declared child counts are taken as
// given and never checked against len(keys)+1.
func New(keysPerBlock int, entry any) (*Tree, error) {
	if keysPerBlock < 1 {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("keys_per_block must be a positive integer, got %d", keysPerBlock),
		}
	}
	t := &Tree{KeysPerBlock: keysPerBlock}
	if entry == nil {
		return t, nil
	}
	root, err := build(entry, nil)
	if err != nil {
		return nil, err
	}
	t.Root = root
	return t, nil
}

func build(entry any, path []int) (*Node, error) {
	if keys, ok := asList(entry); ok {
		return &Node{
			Kind: KindLeaf,
			Keys: formatKeys(keys),
			Path: clonePath(path),
		}, nil
	}

	mapping, ok := asMapping(entry)
	if !ok {
		return nil, &MalformedBlockError{
			Path:   pathString(path),
			Reason: fmt.Sprintf("expected a key list or a keys/children mapping, got %T", entry),
		}
	}

	rawKeys, ok := mapping["keys"]
	if !ok {
		return nil, &MalformedBlockError{
			Path:   pathString(path),
			Reason: `mapping has no "keys" entry`,
		}
	}
	keys, ok := asList(rawKeys)
	if !ok {
		return nil, &MalformedBlockError{
			Path:   pathString(path),
			Reason: fmt.Sprintf(`"keys" must be a list, got %T`, rawKeys),
		}
	}

	node := &Node{
		Keys: formatKeys(keys),
		Path: clonePath(path),
	}

	rawChildren, present := mapping["children"]
	if !present || rawChildren == nil {
		node.Kind = KindOmitted
		return node, nil
	}
	children, ok := asList(rawChildren)
	if !ok {
		return nil, &MalformedBlockError{
			Path:   pathString(path),
			Reason: fmt.Sprintf(`"children" must be a list, got %T`, rawChildren),
		}
	}
	if len(children) == 0 {
		node.Kind = KindOmitted
		return node, nil
	}

	node.Kind = KindInternal
	node.Children = make([]*Node, 0, len(children))
	for i, childEntry := range children {
		child, err := build(childEntry, append(path, i))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// asList normalizes a decoded sequence. YAML and TOML both decode sequences
// as []any when the target is any.
func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// asMapping normalizes a decoded mapping. yaml.v3 produces map[string]any
// for string-keyed mappings; older decoders hand back map[any]any.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func formatKeys(keys []any) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = formatKey(k)
	}
	return out
}

// formatKey renders a key for display. Strings pass through unchanged so
// quoting in the document never leaks into the diagram.
func formatKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func clonePath(path []int) []int {
	if len(path) == 0 {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)
	return out
}

// pathString renders a build path as a document locator rooted at "tree".
func pathString(path []int) string {
	var sb strings.Builder
	sb.WriteString("tree")
	for _, i := range path {
		fmt.Fprintf(&sb, ".children[%d]", i)
	}
	return sb.String()
}
