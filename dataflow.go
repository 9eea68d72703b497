package collate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDuplicateLabel reports a label used more than once across a group
// tree. It makes the whole run fail: a duplicated label would receive
// amounts from two places and the report would be silently wrong.
var ErrDuplicateLabel = errors.New("duplicate label")

// ErrUnknownLabel reports a record whose label has no node in the
// dataflow graph.
var ErrUnknownLabel = errors.New("unknown label")

// Graph maps every label of a group tree to its propagation node.
type Graph map[string]*Node

// Node holds the running total for one label and the label of the
// enclosing named group the total propagates to.
//
// The parent is kept as a lookup key into the shared graph rather than a
// pointer, so the graph builds in a single pass regardless of declaration
// order.
type Node struct {
	graph  Graph
	Item   Item
	parent string // enclosing named group label, empty at the root
}

// Parent returns the label of the node's aggregation parent, empty for a
// root node.
func (n *Node) Parent() string { return n.parent }

// Notify adds amount to this node's total and propagates it to the parent
// node, transitively up to the root. The parent chain is acyclic by
// construction from a tree, so the recursion terminates at tree depth.
func (n *Node) Notify(amount decimal.Decimal) {
	n.Item.Amount = n.Item.Amount.Add(amount)
	if n.parent != "" {
		n.graph[n.parent].Notify(amount)
	}
}

// BuildDataflow flattens a group tree into the graph along which amounts
// propagate: one node per label, wired to its nearest enclosing named
// group. Anonymous groups nest their children under the closest named
// ancestor and contribute no node of their own.
//
// Label uniqueness across the whole tree is checked here, lazily, rather
// than at tree construction.
func BuildDataflow(g *Group) (Graph, error) {
	graph := make(Graph)
	if g.Label != "" {
		// A named root still aggregates, but has nothing to notify.
		graph[g.Label] = &Node{graph: graph, Item: Item{Label: g.Label}}
	}
	if err := flatten(graph, g.Label, g); err != nil {
		return nil, err
	}
	return graph, nil
}

func flatten(graph Graph, parent string, g *Group) error {
	if g.Label != "" {
		parent = g.Label
	}
	for _, kid := range g.Kids {
		if kid.Group != nil {
			if err := flatten(graph, parent, kid.Group); err != nil {
				return err
			}
		}
		label := kid.Label()
		if label == "" {
			continue
		}
		if _, seen := graph[label]; seen {
			return fmt.Errorf("%w: %q appears more than once in the group tree", ErrDuplicateLabel, label)
		}
		graph[label] = &Node{graph: graph, Item: Item{Label: label}, parent: parent}
	}
	return nil
}
