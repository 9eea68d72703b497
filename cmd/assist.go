package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cgjones/collate"
	"github.com/cgjones/collate/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	prompt string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about the collated report" }
func (*assistCmd) Usage() string {
	return `clt assist [-p <question>] <file>...

  Aggregates the ledger files through the group tree, then starts an
  interactive session with an AI assistant that answers questions about
  the resulting report. Type 'bye' to exit.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prompt, "p", "", "initial question to ask")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	groups, err := LoadGroups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading groups %q: %v\n", *groupsFile, err)
		return subcommands.ExitFailure
	}

	var report strings.Builder
	s := collate.NewSort(&report, groups)
	if status := run(s, f); status != subcommands.ExitSuccess {
		return status
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, report.String())
	if err := a.Run(ctx, client, c.prompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
