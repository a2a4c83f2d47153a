package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the plan file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fpl fmt

  Validates and formats the plan file. This command reads all entries,
  validates them, sorts them by date, and writes them back in a canonical
  JSONL format.

Usage Examples:
# Rewrites the default plan file in-place.
$ fpl fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlanFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SavePlan(plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted plan: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", *planFile)
	return subcommands.ExitSuccess
}
