package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a YAML document into a parameter store rooted at "/".
// Mappings become groups, scalars become keywords, and sequences of numbers
// become tabular columns. Key order follows the document.
func FromYAML(data []byte) (*Group, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("yaml document is empty")
	}
	root, err := yamlNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if !root.isGroup() {
		return nil, fmt.Errorf("yaml document root must be a mapping")
	}
	return &Group{n: root}, nil
}

func yamlNode(y *yaml.Node) (*node, error) {
	switch y.Kind {
	case yaml.MappingNode:
		n := &node{children: make(map[string]*node, len(y.Content)/2)}
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i].Value
			child, err := yamlNode(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			if _, dup := n.children[key]; dup {
				return nil, fmt.Errorf("line %d: duplicate key %q", y.Content[i].Line, key)
			}
			n.children[key] = child
			n.order = append(n.order, key)
		}
		return n, nil

	case yaml.SequenceNode:
		seq := make([]any, 0, len(y.Content))
		for _, item := range y.Content {
			var v any
			if err := item.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: decode sequence item: %w", item.Line, err)
			}
			seq = append(seq, v)
		}
		return &node{seq: seq}, nil

	case yaml.ScalarNode:
		var v any
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: decode scalar: %w", y.Line, err)
		}
		return &node{value: v}, nil

	case yaml.AliasNode:
		return yamlNode(y.Alias)
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node kind", y.Line)
}

func openFileWith(path string, parse func([]byte) (*Group, error)) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open parameter document: %w", err)
	}
	g, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
