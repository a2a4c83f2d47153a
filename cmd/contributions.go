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

type contributionsCmd struct {
	year     int
	gross    float64
	currency string
}

func (*contributionsCmd) Name() string { return "contributions" }
func (*contributionsCmd) Synopsis() string {
	return "estimate social insurance contributions on a gross salary"
}
func (*contributionsCmd) Usage() string {
	return `fpl contributions -gross <salary>

  Estimates the employee share of pension, health, unemployment and care
  insurance on an annual gross salary, each branch capped at its ceiling.

Usage Examples:
$ fpl contributions -gross 50000
`
}

func (p *contributionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "year", 2025, "Contribution year of the schedule.")
	f.Float64Var(&p.gross, "gross", 0, "Annual gross salary.")
	f.StringVar(&p.currency, "currency", "EUR", "Currency of the amounts.")
}

func (p *contributionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	schedule, err := finplan.SocialScheduleFor(p.year)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	gross := finplan.M(p.gross, p.currency)
	estimate, err := schedule.Estimate(gross)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SocialMarkdown(estimate, gross))
	return subcommands.ExitSuccess
}
