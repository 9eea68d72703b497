package collate

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Outline is the JSON-exportable view of an aggregated group tree: the
// same hierarchy as the groups configuration, each label annotated with
// its aggregated total.
type Outline struct {
	Label    string          `json:"label,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Children []*Outline      `json:"children,omitempty"`
}

// BuildOutline mirrors the group tree with each label's total from graph.
// Anonymous groups keep their place in the hierarchy but carry no total
// of their own.
func BuildOutline(g *Group, graph Graph) *Outline {
	o := &Outline{Label: g.Label}
	if g.Label != "" {
		o.Amount = graph[g.Label].Item.Amount
	}
	for _, kid := range g.Kids {
		if kid.Group != nil {
			o.Children = append(o.Children, BuildOutline(kid.Group, graph))
			continue
		}
		o.Children = append(o.Children, &Outline{Label: kid.Leaf, Amount: graph[kid.Leaf].Item.Amount})
	}
	return o
}

// EncodeOutline marshals the outline to indented JSON. When query is not
// empty it is evaluated as a jsonpath expression over the outline and
// only the selected fragment is marshaled.
func EncodeOutline(o *Outline, query string) ([]byte, error) {
	buf, err := json.MarshalIndent(o, "", "  ")
	if err != nil || query == "" {
		return buf, err
	}

	var jobj any
	if err := json.Unmarshal(buf, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(query, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", query, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: unwrap the single answer.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return json.MarshalIndent(jval, "", "  ")
}
