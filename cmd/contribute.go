package cmd

import (
	"context"
	"flag"

	"github.com/SimonKnogler/finplan"
	"github.com/google/subcommands"
)

type contributeCmd struct {
	symbol   string
	monthly  float64
	currency string
	start    string
	end      string
	inactive bool
	date     string
	memo     string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a monthly savings plan in the plan file" }
func (*contributeCmd) Usage() string {
	return `fpl contribute -symbol <symbol> -monthly <amount> [-start <date>] [-end <date>]

  Appends a recurring monthly contribution entry to the plan file. A later
  contribute entry for the same symbol replaces the earlier one, so pausing a
  savings plan is recording it again with -inactive.

Usage Examples:
# 500 EUR per month into an ETF, already running, open ended.
$ fpl contribute -symbol VWCE -monthly 500
# A savings plan that starts next year and stops after five years.
$ fpl contribute -symbol Cash -monthly 200 -start 2026-01-01 -end 2030-12-31
# Pause the crypto savings plan without losing its definition.
$ fpl contribute -symbol BTC -monthly 150 -inactive
`
}

func (p *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Symbol the contribution buys into.")
	f.Float64Var(&p.monthly, "monthly", 0, "Amount contributed per month.")
	f.StringVar(&p.currency, "currency", "EUR", "Currency of the monthly amount.")
	f.StringVar(&p.start, "start", "", "First month of the plan. Empty means already started.")
	f.StringVar(&p.end, "end", "", "Last month of the plan. Empty means open-ended.")
	f.BoolVar(&p.inactive, "inactive", false, "Record the plan as paused.")
	f.StringVar(&p.date, "date", "", "Date of the entry. Defaults to today.")
	f.StringVar(&p.memo, "memo", "", "Free-form note on the entry.")
}

func (p *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, status := parseDateFlag(p.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	start, status := parseDateFlag(p.start)
	if status != subcommands.ExitSuccess {
		return status
	}
	end, status := parseDateFlag(p.end)
	if status != subcommands.ExitSuccess {
		return status
	}

	contribute := finplan.NewContribute(day, p.memo, p.symbol, finplan.M(p.monthly, p.currency), start, end, !p.inactive)
	return AppendEntries(contribute)
}
