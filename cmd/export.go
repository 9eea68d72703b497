package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cgjones/collate"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	query string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the aggregated group tree as JSON" }
func (*exportCmd) Usage() string {
	return `clt export [-q <jsonpath>] <file>...

  Aggregates records through the group tree like 'sort', then prints the
  tree with its totals as JSON. With -q, only the fragment selected by
  the jsonpath expression is printed.

Usage Examples:
# Total of the group nested first under the root.
$ clt export -q '$.children[0].amount' ledger.txt

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "jsonpath expression selecting a fragment of the outline")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	groups, err := LoadGroups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading groups %q: %v\n", *groupsFile, err)
		return subcommands.ExitFailure
	}

	s := collate.NewSort(io.Discard, groups)
	if status := run(s, f); status != subcommands.ExitSuccess {
		return status
	}

	buf, err := collate.EncodeOutline(collate.BuildOutline(groups, s.Graph()), c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(buf))
	return subcommands.ExitSuccess
}
