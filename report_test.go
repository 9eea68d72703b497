package collate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWriteReportNested(t *testing.T) {
	g := G("",
		G("A", "Leaf1", "Leaf2"),
		G("RecursiveB",
			G("C", "Leaf3"),
			"Leaf5"))

	graph, err := BuildDataflow(g)
	if err != nil {
		t.Fatalf("BuildDataflow() returned an unexpected error: %v", err)
	}
	graph["Leaf1"].Notify(decimal.NewFromInt(-1))
	graph["Leaf3"].Notify(decimal.RequireFromString("-2.5"))
	graph["Leaf5"].Notify(decimal.NewFromInt(10))

	var buf bytes.Buffer
	WriteReport(&buf, g, graph)

	// Top-level groups print unprefixed; group C, nested one level deep,
	// prefixes every line of its block with two semicolons.
	want := strings.Join([]string{
		"-----;-----",
		"A;-1.00",
		";",
		"Leaf1;-1.00",
		"Leaf2;0.00",
	}, "\n") + "\n" + strings.Repeat(";\n", 15) +
		strings.Join([]string{
			"-----;-----",
			"RecursiveB;7.50",
			";",
			"C;-2.50",
			"Leaf5;10.00",
		}, "\n") + "\n" + strings.Repeat(";\n", 15) +
		strings.Join([]string{
			";;-----;-----",
			";;C;-2.50",
			";;;",
			";;Leaf3;-2.50",
		}, "\n") + "\n" + strings.Repeat(";;;\n", 15)

	if got := buf.String(); got != want {
		t.Errorf("report = \n%s\nwant:\n%s", got, want)
	}
}

func TestWriteReportAnonymousGroupKeepsDepth(t *testing.T) {
	// The anonymous middle group adds no block and no nesting: D renders
	// at the same depth as a direct child of the root would.
	g := G("", G("", G("D", "Leaf9")))

	graph, err := BuildDataflow(g)
	if err != nil {
		t.Fatalf("BuildDataflow() returned an unexpected error: %v", err)
	}

	var buf bytes.Buffer
	WriteReport(&buf, g, graph)

	want := "-----;-----\nD;0.00\n;\nLeaf9;0.00\n" + strings.Repeat(";\n", 15)
	if got := buf.String(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}
