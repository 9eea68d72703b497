package collate

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Analysis is one named way to process a stream of ledger records.
//
// The driver calls Init once, Update once per parsed record in input
// order, and Finalize exactly once after all input is exhausted. Finalize
// is where an analysis prints its results.
type Analysis interface {
	Init() error
	Update(Item) error
	Finalize() error
}

// NewAnalysis returns the analysis registered under name, writing its
// results to w. The sort analysis aggregates over the groups tree; the
// other analyses ignore it.
func NewAnalysis(name string, w io.Writer, groups *Group) (Analysis, error) {
	switch name {
	case "echo":
		return &Echo{W: w}, nil
	case "sum":
		return NewSum(w), nil
	case "sort":
		return NewSort(w, groups), nil
	default:
		return nil, fmt.Errorf("unknown analysis %q", name)
	}
}

// Collate runs one analysis over the given inputs: Init once, Update per
// parsed record across inputs in order, then Finalize.
func Collate(a Analysis, inputs ...io.Reader) error {
	if err := a.Init(); err != nil {
		return err
	}
	for _, r := range inputs {
		if err := ScanRecords(r, a.Update); err != nil {
			return err
		}
	}
	return a.Finalize()
}

// Echo prints every parsed record as it arrives. It carries no state.
type Echo struct {
	W io.Writer
}

func (e *Echo) Init() error { return nil }

func (e *Echo) Update(item Item) error {
	_, err := fmt.Fprintln(e.W, item)
	return err
}

func (e *Echo) Finalize() error { return nil }

// Sum accumulates one total per label and prints them all at the end.
type Sum struct {
	w      io.Writer
	totals map[string]*Item
}

// NewSum creates the sum analysis writing to w.
func NewSum(w io.Writer) *Sum { return &Sum{w: w} }

func (s *Sum) Init() error {
	s.totals = make(map[string]*Item)
	return nil
}

func (s *Sum) Update(item Item) error {
	total, ok := s.totals[item.Label]
	if !ok {
		total = &Item{Label: item.Label}
		s.totals[item.Label] = total
	}
	total.Amount = total.Amount.Add(item.Amount)
	return nil
}

// Finalize prints every accumulated label and total as "label,amount".
// Order is unspecified.
func (s *Sum) Finalize() error {
	for _, total := range s.totals {
		if _, err := fmt.Fprintf(s.w, "%s,%s\n", total.Label, total.Amount); err != nil {
			return err
		}
	}
	return nil
}

// Totals returns the accumulated per-label items, sorted by label.
func (s *Sum) Totals() []Item {
	items := make([]Item, 0, len(s.totals))
	for _, label := range slices.Sorted(maps.Keys(s.totals)) {
		items = append(items, *s.totals[label])
	}
	return items
}

// Sort propagates every record through the dataflow graph built from the
// group tree, and renders the aggregated report at the end.
type Sort struct {
	w      io.Writer
	groups *Group
	graph  Graph
}

// NewSort creates the sort analysis aggregating over groups and writing
// the report to w.
func NewSort(w io.Writer, groups *Group) *Sort {
	return &Sort{w: w, groups: groups}
}

// Init builds the dataflow graph. A duplicate label anywhere in the group
// tree aborts the run before any record is read.
func (s *Sort) Init() (err error) {
	s.graph, err = BuildDataflow(s.groups)
	return err
}

func (s *Sort) Update(item Item) error {
	node, ok := s.graph[item.Label]
	if !ok {
		return fmt.Errorf("%w: no group accepts records labeled %q", ErrUnknownLabel, item.Label)
	}
	node.Notify(item.Amount)
	return nil
}

func (s *Sort) Finalize() error {
	WriteReport(s.w, s.groups, s.graph)
	return nil
}

// Graph exposes the dataflow graph accumulated so far, for renderings
// beyond the plain report.
func (s *Sort) Graph() Graph { return s.graph }
