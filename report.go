package collate

import (
	"fmt"
	"io"
	"strings"
)

// spacerRows is the number of blank rows reserved after each group block,
// room for formula rows once the report is imported in a spreadsheet.
const spacerRows = 15

// WriteReport dumps the aggregated totals of graph as semicolon-separated
// "label;amount" pairs, ordered by the group tree.
//
// Every line of a group block is prefixed with two semicolons per nesting
// level, so a spreadsheet outline can fold the groups. Only named groups
// increase the nesting; anonymous groups recurse at the same depth and
// print no block of their own.
func WriteReport(w io.Writer, g *Group, graph Graph) {
	writeGroup(w, g, graph, 0)
}

func writeGroup(w io.Writer, g *Group, graph Graph, depth int) {
	anon := g.Label == ""
	pfx := strings.Repeat(";", 2*depth)

	if !anon {
		total := graph[g.Label].Item
		fmt.Fprintf(w, "%s-----;-----\n", pfx)
		fmt.Fprintf(w, "%s%s;%s\n", pfx, total.Label, total.Amount.StringFixed(2))
		fmt.Fprintf(w, "%s;\n", pfx)
		for _, kid := range g.Kids {
			label := kid.Label()
			if label == "" {
				continue
			}
			item := graph[label].Item
			fmt.Fprintf(w, "%s%s;%s\n", pfx, item.Label, item.Amount.StringFixed(2))
		}
		for range spacerRows {
			fmt.Fprintf(w, "%s;\n", pfx)
		}
	}

	for _, kid := range g.Kids {
		if kid.Group == nil {
			continue
		}
		kidDepth := depth
		if !anon {
			kidDepth++
		}
		writeGroup(w, kid.Group, graph, kidDepth)
	}
}
