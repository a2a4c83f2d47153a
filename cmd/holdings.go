package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SimonKnogler/finplan/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the plan file's current holdings" }
func (*holdingsCmd) Usage() string {
	return `fpl holdings

  Lists the latest snapshot of every holding in the plan file, the state a
  projection starts from.

Usage Examples:
$ fpl holdings
`
}

func (p *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (p *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlanFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingsMarkdown(plan.Holdings()))
	return subcommands.ExitSuccess
}
