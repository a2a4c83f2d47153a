package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SimonKnogler/finplan/renderer"
	"github.com/google/subcommands"
)

type plansCmd struct{}

func (*plansCmd) Name() string     { return "plans" }
func (*plansCmd) Synopsis() string { return "list the plan file's contribution plans" }
func (*plansCmd) Usage() string {
	return `fpl plans

  Lists the monthly contribution plans with their activity windows. For a
  symbol contributed to more than once, the latest entry wins.
`
}

func (*plansCmd) SetFlags(f *flag.FlagSet) {}

func (p *plansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlanFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ContributionsMarkdown(plan.Contributions()))
	return subcommands.ExitSuccess
}
