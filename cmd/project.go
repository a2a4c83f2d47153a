package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SimonKnogler/finplan"
	"github.com/SimonKnogler/finplan/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	years    int
	scenario string
	start    string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "simulate the plan's growth month by month" }
func (*projectCmd) Usage() string {
	return `fpl project [-years <n>] [-scenario <name>] [-start <date>]

  Projects the plan file's holdings and contribution plans over the horizon,
  compounding each holding's expected annual return monthly. Expect entries
  in the plan override the per-type default returns.

Usage Examples:
# Ten realistic years from today.
$ fpl project
# A cautious look at the next three years.
$ fpl project -years 3 -scenario conservative
`
}

func (p *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.years, "years", 10, "Projection horizon in years.")
	f.StringVar(&p.scenario, "scenario", "realistic", "Scenario: conservative, realistic or optimistic.")
	f.StringVar(&p.start, "start", "", "Anchor date of the projection. Defaults to today.")
}

func (p *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := finplan.ParseScenario(p.scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var projector finplan.Projector
	if p.start != "" {
		start, err := finplan.ParseDate(p.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		projector.Start = start
	}

	plan, err := DecodePlanFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	result, err := plan.Project(projector, p.years, scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProjectionMarkdown(result))
	return subcommands.ExitSuccess
}
