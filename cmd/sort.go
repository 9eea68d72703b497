package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cgjones/collate"
	"github.com/cgjones/collate/renderer"
	"github.com/google/subcommands"
)

// sortCmd holds the flags for the 'sort' subcommand.
type sortCmd struct {
	xlsx string
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "aggregate amounts through the group tree" }
func (*sortCmd) Usage() string {
	return `clt sort [-xlsx <file>] <file>...

  Propagates every record's amount through the group tree and prints one
  block per named group: the group's total followed by each child's
  total, semicolon-separated and indented for a spreadsheet outline.

  A record whose label appears nowhere in the group tree aborts the run.
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.xlsx, "xlsx", "", "also write the report as a spreadsheet to this file")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	groups, err := LoadGroups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading groups %q: %v\n", *groupsFile, err)
		return subcommands.ExitFailure
	}

	s := collate.NewSort(os.Stdout, groups)
	if status := run(s, f); status != subcommands.ExitSuccess {
		return status
	}

	if c.xlsx != "" {
		if err := renderer.ReportXLSX(c.xlsx, groups, s.Graph()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing spreadsheet %q: %v\n", c.xlsx, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
