// Package cmd implements the CLI application to analyze ledger files.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cgjones/collate"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&echoCmd{}, "analyses")
	c.Register(&sumCmd{}, "analyses")
	c.Register(&sortCmd{}, "analyses")
	c.Register(&exportCmd{}, "analyses")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var groupsFile = flag.String("groups-file", "groups.yaml", "Path to the group tree configuration (YAML)")

// LoadGroups reads the app group tree configuration.
func LoadGroups() (*collate.Group, error) {
	return collate.LoadGroups(*groupsFile)
}

// openAll opens every ledger file, in command-line order. The caller owns
// the returned close function.
func openAll(paths []string) ([]io.Reader, func(), error) {
	files := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return readers, closeAll, nil
}

// run drives one analysis over the ledger files named on the command
// line: init, one update per parsed record in file order, then finalize.
func run(a collate.Analysis, f *flag.FlagSet) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ledger file is required")
		return subcommands.ExitUsageError
	}

	readers, closeAll, err := openAll(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeAll()

	if err := collate.Collate(a, readers...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
