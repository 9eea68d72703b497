package collate

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// testTree is the tree from the groups documentation:
//
//	Group(None,
//	      Group('A', 'Leaf1', 'Leaf2'),
//	      Group('RecursiveB',
//	            Group('C', 'Leaf3', 'Leaf4'),
//	            'Leaf5'))
func testTree() *Group {
	return G("",
		G("A", "Leaf1", "Leaf2"),
		G("RecursiveB",
			G("C", "Leaf3", "Leaf4"),
			"Leaf5"))
}

func TestBuildDataflow(t *testing.T) {
	graph, err := BuildDataflow(testTree())
	if err != nil {
		t.Fatalf("BuildDataflow() returned an unexpected error: %v", err)
	}

	// One node per label, leaves and named groups alike.
	parents := map[string]string{
		"A":          "",
		"Leaf1":      "A",
		"Leaf2":      "A",
		"RecursiveB": "",
		"C":          "RecursiveB",
		"Leaf3":      "C",
		"Leaf4":      "C",
		"Leaf5":      "RecursiveB",
	}
	if len(graph) != len(parents) {
		t.Fatalf("graph has %d nodes, want %d: %v", len(graph), len(parents), graph)
	}
	for label, parent := range parents {
		node, ok := graph[label]
		if !ok {
			t.Errorf("graph is missing a node for %q", label)
			continue
		}
		if node.Item.Label != label {
			t.Errorf("node %q holds item %q", label, node.Item.Label)
		}
		if node.Parent() != parent {
			t.Errorf("node %q parent = %q, want %q", label, node.Parent(), parent)
		}
	}
}

func TestBuildDataflowNamedRoot(t *testing.T) {
	graph, err := BuildDataflow(G("Budget", "Rent"))
	if err != nil {
		t.Fatalf("BuildDataflow() returned an unexpected error: %v", err)
	}
	root, ok := graph["Budget"]
	if !ok {
		t.Fatal("graph is missing the named root node")
	}
	if root.Parent() != "" {
		t.Errorf("root parent = %q, want none", root.Parent())
	}
	if got := graph["Rent"].Parent(); got != "Budget" {
		t.Errorf("Rent parent = %q, want Budget", got)
	}

	graph["Rent"].Notify(decimal.NewFromInt(-700))
	if got := graph["Budget"].Item.Amount.String(); got != "-700" {
		t.Errorf("root total = %s, want -700", got)
	}
}

func TestBuildDataflowDuplicateLabel(t *testing.T) {
	dup := G("", G("A", "X"), G("B", "X"))
	if _, err := BuildDataflow(dup); !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("BuildDataflow() error = %v, want ErrDuplicateLabel", err)
	}

	// A group label clashing with a leaf label is just as fatal.
	dup = G("", G("A", "Leaf"), "A")
	if _, err := BuildDataflow(dup); !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("BuildDataflow() error = %v, want ErrDuplicateLabel", err)
	}
}

func TestNotifyPropagatesToAncestors(t *testing.T) {
	graph, err := BuildDataflow(testTree())
	if err != nil {
		t.Fatalf("BuildDataflow() returned an unexpected error: %v", err)
	}

	graph["Leaf3"].Notify(decimal.RequireFromString("-2.5"))
	graph["Leaf5"].Notify(decimal.NewFromInt(10))

	totals := map[string]string{
		"Leaf3":      "-2.5",
		"Leaf4":      "0",
		"C":          "-2.5",
		"Leaf5":      "10",
		"RecursiveB": "7.5",
		"A":          "0",
		"Leaf1":      "0",
	}
	for label, want := range totals {
		if got := graph[label].Item.Amount.String(); got != want {
			t.Errorf("total of %q = %s, want %s", label, got, want)
		}
	}
}
