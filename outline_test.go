package collate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func aggregatedOutline(t *testing.T) *Outline {
	t.Helper()
	g := G("", G("A", "Leaf1", "Leaf2"))
	graph, err := BuildDataflow(g)
	if err != nil {
		t.Fatalf("BuildDataflow() returned an unexpected error: %v", err)
	}
	graph["Leaf1"].Notify(decimal.NewFromInt(-1))
	return BuildOutline(g, graph)
}

func TestBuildOutline(t *testing.T) {
	o := aggregatedOutline(t)

	if o.Label != "" || len(o.Children) != 1 {
		t.Fatalf("outline root = %+v, want one anonymous root child", o)
	}
	a := o.Children[0]
	if a.Label != "A" || a.Amount.String() != "-1" {
		t.Errorf("outline A = %+v, want amount -1", a)
	}
	if len(a.Children) != 2 || a.Children[0].Label != "Leaf1" {
		t.Fatalf("outline A children = %+v", a.Children)
	}
	if got := a.Children[1].Amount.String(); got != "0" {
		t.Errorf("Leaf2 amount = %s, want 0", got)
	}
}

func TestEncodeOutline(t *testing.T) {
	o := aggregatedOutline(t)

	buf, err := EncodeOutline(o, "")
	if err != nil {
		t.Fatalf("EncodeOutline() returned an unexpected error: %v", err)
	}
	// decimal amounts marshal unquoted.
	for _, want := range []string{`"label": "A"`, `"amount": -1`, `"label": "Leaf1"`} {
		if !strings.Contains(string(buf), want) {
			t.Errorf("outline JSON is missing %s:\n%s", want, buf)
		}
	}
}

func TestEncodeOutlineQuery(t *testing.T) {
	o := aggregatedOutline(t)

	buf, err := EncodeOutline(o, "$.children[0].amount")
	if err != nil {
		t.Fatalf("EncodeOutline() returned an unexpected error: %v", err)
	}
	if got := string(buf); got != "-1" {
		t.Errorf("queried fragment = %q, want -1", got)
	}

	if _, err := EncodeOutline(o, "$.["); err == nil {
		t.Error("EncodeOutline() accepted an invalid jsonpath expression")
	}
}
