// Package renderer renders collated results in richer forms than the
// plain semicolon report: a native spreadsheet, and markdown for the
// terminal.
package renderer

import (
	"github.com/cgjones/collate"
	"github.com/xuri/excelize/v2"
)

// ReportXLSX writes the aggregated report as a spreadsheet: one row per
// label, group totals first, with row outline levels following the group
// nesting so the spreadsheet can fold each group.
func ReportXLSX(path string, g *collate.Group, graph collate.Graph) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	row := 1
	if err := writeGroupRows(f, sheet, g, graph, 0, &row); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeGroupRows(f *excelize.File, sheet string, g *collate.Group, graph collate.Graph, depth int, row *int) error {
	anon := g.Label == ""
	if !anon {
		if err := writeItemRow(f, sheet, graph[g.Label].Item, depth, row); err != nil {
			return err
		}
		for _, kid := range g.Kids {
			label := kid.Label()
			if label == "" {
				continue
			}
			if err := writeItemRow(f, sheet, graph[label].Item, depth+1, row); err != nil {
				return err
			}
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
		if err := writeGroupRows(f, sheet, kid.Group, graph, kidDepth, row); err != nil {
			return err
		}
	}
	return nil
}

func writeItemRow(f *excelize.File, sheet string, item collate.Item, level int, row *int) error {
	cell, err := excelize.CoordinatesToCellName(1, *row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &[]any{item.Label, item.Amount.InexactFloat64()}); err != nil {
		return err
	}
	if level > 0 {
		// excelize caps outline levels at 7, deeper trees fold at 7.
		if level > 7 {
			level = 7
		}
		if err := f.SetRowOutlineLevel(sheet, *row, uint8(level)); err != nil {
			return err
		}
	}
	*row++
	return nil
}
