package collate

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Group is a named or anonymous collection of leaves and nested groups,
// used to structure aggregation and reporting.
//
// A group tree is defined once from configuration and is read-only for
// the lifetime of a run. Labels of leaves and named groups share one
// namespace; uniqueness across the whole tree is checked when the
// dataflow graph is built, not here.
type Group struct {
	Label string // empty for an anonymous group
	Kids  []Child
}

// Child is one entry of a group: either a leaf label or a nested group.
type Child struct {
	Leaf  string
	Group *Group
}

// Label returns the child's own label, for leaves and nested groups alike.
// An anonymous nested group has no label.
func (c Child) Label() string {
	if c.Group != nil {
		return c.Group.Label
	}
	return c.Leaf
}

// G builds a group from a label and children, each child being either a
// leaf label (string) or a nested *Group. An empty label makes the group
// anonymous.
func G(label string, kids ...any) *Group {
	g := &Group{Label: label}
	for _, kid := range kids {
		switch v := kid.(type) {
		case string:
			g.Kids = append(g.Kids, Child{Leaf: v})
		case *Group:
			g.Kids = append(g.Kids, Child{Group: v})
		default:
			panic(fmt.Sprintf("group child must be a string or a *Group, got %T", kid))
		}
	}
	return g
}

// UnmarshalYAML decodes a group from its configuration form: a mapping
// with an optional "label" and a "children" sequence whose entries are
// either plain strings (leaves) or nested mappings (groups).
func (g *Group) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Label    string      `yaml:"label"`
		Children []yaml.Node `yaml:"children"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	g.Label = raw.Label
	g.Kids = nil
	for _, n := range raw.Children {
		switch n.Kind {
		case yaml.ScalarNode:
			var leaf string
			if err := n.Decode(&leaf); err != nil {
				return err
			}
			g.Kids = append(g.Kids, Child{Leaf: leaf})
		case yaml.MappingNode:
			sub := new(Group)
			if err := n.Decode(sub); err != nil {
				return err
			}
			g.Kids = append(g.Kids, Child{Group: sub})
		default:
			return fmt.Errorf("line %d: a group child must be a leaf label or a nested group", n.Line)
		}
	}
	return nil
}

// DecodeGroups decodes a group tree from its YAML configuration.
func DecodeGroups(r io.Reader) (*Group, error) {
	g := new(Group)
	if err := yaml.NewDecoder(r).Decode(g); err != nil {
		return nil, fmt.Errorf("invalid groups configuration: %w", err)
	}
	return g, nil
}

// LoadGroups reads the group tree configuration file.
func LoadGroups(path string) (*Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeGroups(f)
}
