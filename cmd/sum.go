package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/cgjones/collate"
	"github.com/cgjones/collate/renderer"
	"github.com/google/subcommands"
)

// sumCmd holds the flags for the 'sum' subcommand.
type sumCmd struct {
	pretty   bool
	currency string
}

func (*sumCmd) Name() string     { return "sum" }
func (*sumCmd) Synopsis() string { return "sum amounts by label" }
func (*sumCmd) Usage() string {
	return `clt sum [-pretty] [-c <currency>] <file>...

  Sums all records sharing a label and prints one "label,amount" line per
  label, in unspecified order. With -pretty the totals are rendered as a
  markdown table instead, sorted by label.
`
}

func (c *sumCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.pretty, "pretty", false, "render totals as a markdown table")
	f.StringVar(&c.currency, "c", "", "currency code used to format totals, only with -pretty")
}

func (c *sumCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.pretty {
		return run(collate.NewSum(os.Stdout), f)
	}

	// Accumulate silently, then render.
	s := collate.NewSum(io.Discard)
	if status := run(s, f); status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.SumMarkdown(s.Totals(), c.currency))
	return subcommands.ExitSuccess
}
