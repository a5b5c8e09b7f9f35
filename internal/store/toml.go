package store

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FromTOML parses a TOML document into a parameter store rooted at "/".
// Tables become groups, key/value pairs become keywords, and arrays of
// numbers become tabular columns. Key order follows the document.
func FromTOML(data []byte) (*Group, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parse toml document: %w", err)
	}
	root, err := tomlNode(raw)
	if err != nil {
		return nil, err
	}
	applyTOMLOrder(root, md.Keys())
	return &Group{n: root}, nil
}

func tomlNode(v any) (*node, error) {
	switch t := v.(type) {
	case map[string]any:
		n := &node{children: make(map[string]*node, len(t))}
		for key, child := range t {
			c, err := tomlNode(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			n.children[key] = c
		}
		return n, nil
	case []any:
		return &node{seq: t}, nil
	case []map[string]any:
		return nil, fmt.Errorf("arrays of tables are not supported")
	default:
		return &node{value: t}, nil
	}
}

// applyTOMLOrder restores document key order from the decoder metadata.
// toml.Decode hands tables back as unordered maps; md.Keys() lists every
// defined key in the order it appeared.
func applyTOMLOrder(root *node, keys []toml.Key) {
	seen := make(map[string]bool)
	for _, key := range keys {
		n := root
		path := ""
		for _, part := range key {
			path += "/" + part
			child, ok := n.children[part]
			if !ok {
				break
			}
			if !seen[path] {
				seen[path] = true
				n.order = append(n.order, part)
			}
			if !child.isGroup() {
				break
			}
			n = child
		}
	}
}
