package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/cgjones/collate"
	"github.com/google/subcommands"
)

type echoCmd struct{}

func (*echoCmd) Name() string     { return "echo" }
func (*echoCmd) Synopsis() string { return "print every parsed record" }
func (*echoCmd) Usage() string {
	return `clt echo <file>...

  Prints every successfully parsed record, one per line. Lines that do
  not match the record format are skipped silently.
`
}

func (*echoCmd) SetFlags(f *flag.FlagSet) {}

func (c *echoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(&collate.Echo{W: os.Stdout}, f)
}
