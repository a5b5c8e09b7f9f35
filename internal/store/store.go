// Package store provides read-only access to a hierarchical, group-structured
// parameter document.
//
// A document is a tree of named groups. Each group holds scalar keywords
// (booleans, integers, floats, strings), tabular columns (ordered numeric
// sequences), and child groups. Documents are loaded once and never mutated;
// all access goes through Group handles obtained from the root.
package store

import (
	"fmt"
	"strings"
)

// node is one entry in the document tree. Exactly one of the three shapes is
// populated: scalar leaf (value), sequence leaf (seq), or group (children).
type node struct {
	value    any
	seq      []any
	children map[string]*node
	order    []string
}

func (n *node) isGroup() bool { return n.children != nil }

// Group is a handle on one group of the document. Handles are cheap and
// read-only; descending with Group() never copies the tree.
type Group struct {
	path string
	n    *node
}

// Path returns the slash-joined absolute path of the group, e.g. "/Output/Binned".
func (g *Group) Path() string {
	if g.path == "" {
		return "/"
	}
	return g.path
}

func (g *Group) keyPath(key string) string {
	return g.path + "/" + key
}

// Has reports whether the group has a direct child (scalar, column, or
// subgroup) with the given name.
func (g *Group) Has(key string) bool {
	_, ok := g.n.children[key]
	return ok
}

func (g *Group) child(key string) (*node, error) {
	c, ok := g.n.children[key]
	if !ok {
		return nil, fmt.Errorf("%s: key not found", g.keyPath(key))
	}
	return c, nil
}

// Bool reads a boolean keyword.
func (g *Group) Bool(key string) (bool, error) {
	c, err := g.child(key)
	if err != nil {
		return false, err
	}
	v, ok := c.value.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected bool, got %s", g.keyPath(key), describe(c))
	}
	return v, nil
}

// Int reads an integer keyword. Floating-point values with an integral part
// only are accepted, since some writers store counts as floats.
func (g *Group) Int(key string) (int, error) {
	c, err := g.child(key)
	if err != nil {
		return 0, err
	}
	switch v := c.value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%s: expected integer, got %s", g.keyPath(key), describe(c))
}

// Float reads a floating-point keyword. Integer values are widened.
func (g *Group) Float(key string) (float64, error) {
	c, err := g.child(key)
	if err != nil {
		return 0, err
	}
	switch v := c.value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%s: expected float, got %s", g.keyPath(key), describe(c))
}

// String reads a string keyword.
func (g *Group) String(key string) (string, error) {
	c, err := g.child(key)
	if err != nil {
		return "", err
	}
	v, ok := c.value.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %s", g.keyPath(key), describe(c))
	}
	return v, nil
}

// Column reads an ordered numeric column from a tabular child group, e.g.
// Column("Frequencies", "nu") for the sequence at /Frequencies/nu.
func (g *Group) Column(table, column string) ([]float64, error) {
	tg, err := g.Group(table)
	if err != nil {
		return nil, err
	}
	c, err := tg.child(column)
	if err != nil {
		return nil, err
	}
	if c.seq == nil {
		return nil, fmt.Errorf("%s: expected column, got %s", tg.keyPath(column), describe(c))
	}
	out := make([]float64, len(c.seq))
	for i, raw := range c.seq {
		switch v := raw.(type) {
		case float64:
			out[i] = v
		case int:
			out[i] = float64(v)
		case int64:
			out[i] = float64(v)
		default:
			return nil, fmt.Errorf("%s[%d]: expected number, got %T", tg.keyPath(column), i, raw)
		}
	}
	return out, nil
}

// Groups returns the names of all direct child groups in document order.
// Scalar and column entries are not listed.
func (g *Group) Groups() []string {
	var names []string
	for _, name := range g.n.order {
		if g.n.children[name].isGroup() {
			names = append(names, name)
		}
	}
	return names
}

// Group descends into the named child group.
func (g *Group) Group(name string) (*Group, error) {
	c, err := g.child(name)
	if err != nil {
		return nil, err
	}
	if !c.isGroup() {
		return nil, fmt.Errorf("%s: not a group", g.keyPath(name))
	}
	return &Group{path: g.keyPath(name), n: c}, nil
}

func describe(n *node) string {
	switch {
	case n.isGroup():
		return "a group"
	case n.seq != nil:
		return "a column"
	default:
		return fmt.Sprintf("%T", n.value)
	}
}

// OpenFile loads a parameter document, dispatching on the file extension:
// .yaml and .yml are parsed as YAML, .toml as TOML.
func OpenFile(path string) (*Group, error) {
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return openFileWith(path, FromYAML)
	case strings.HasSuffix(path, ".toml"):
		return openFileWith(path, FromTOML)
	}
	return nil, fmt.Errorf("%s: unsupported document format", path)
}
