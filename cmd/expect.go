package cmd

import (
	"context"
	"flag"

	"github.com/SimonKnogler/finplan"
	"github.com/google/subcommands"
)

type expectCmd struct {
	symbol string
	annual float64
	date   string
	memo   string
}

func (*expectCmd) Name() string     { return "expect" }
func (*expectCmd) Synopsis() string { return "record an expected annual return for a symbol" }
func (*expectCmd) Usage() string {
	return `fpl expect -symbol <symbol> -annual <rate>

  Appends an expected annual return entry to the plan file. Projections use
  it instead of the static default for that asset type. The analyze command
  with -save records the same kind of entry from measured history.

Usage Examples:
# Assume 5% a year for a bond ETF the defaults would treat as an equity ETF.
$ fpl expect -symbol AGGH -annual 0.05
# A deliberately pessimistic assumption.
$ fpl expect -symbol BTC -annual -0.10 -memo "crypto winter"
`
}

func (p *expectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Symbol the expectation applies to.")
	f.Float64Var(&p.annual, "annual", 0, "Expected annual return as a fraction (0.05 is 5%).")
	f.StringVar(&p.date, "date", "", "Date of the entry. Defaults to today.")
	f.StringVar(&p.memo, "memo", "", "Free-form note on the entry.")
}

func (p *expectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, status := parseDateFlag(p.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	expect := finplan.NewExpect(day, p.memo, p.symbol, finplan.R(p.annual))
	return AppendEntries(expect)
}
