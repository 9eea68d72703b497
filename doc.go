// Package collate analyzes plain-text ledger files.
//
// A ledger is a stream of lines of the form "amount label" (an expense)
// or "+amount label" (income). The package parses those records and runs
// one of a small set of named analyses over them: echoing every record,
// summing amounts by label, or propagating amounts through a
// hierarchical group tree and reporting one aggregated total per group.
//
// The group tree comes from a declarative YAML configuration. Building
// the dataflow graph from it flattens every label to a propagation node
// wired to its nearest enclosing named group, so that notifying a leaf
// updates every ancestor's total up to the root.
package collate
