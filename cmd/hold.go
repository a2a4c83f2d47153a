package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SimonKnogler/finplan"
	"github.com/google/subcommands"
)

type holdCmd struct {
	symbol   string
	typ      string
	shares   float64
	value    float64
	currency string
	date     string
	memo     string
}

func (*holdCmd) Name() string     { return "hold" }
func (*holdCmd) Synopsis() string { return "record a holding in the plan file" }
func (*holdCmd) Usage() string {
	return `fpl hold -symbol <symbol> -type <type> -value <amount> [-shares <n>]

  Appends a holding snapshot entry to the plan file. A later hold entry for
  the same symbol replaces the earlier one.

Usage Examples:
# 42.5 shares of an ETF currently worth 5031.25 EUR.
$ fpl hold -symbol VWCE -type etf -shares 42.5 -value 5031.25
# An emergency fund that projections keep flat.
$ fpl hold -symbol Cash -type cash -value 2000
`
}

func (p *holdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Symbol of the holding.")
	f.StringVar(&p.typ, "type", "etf", "Asset type: stock, etf, crypto or cash.")
	f.Float64Var(&p.shares, "shares", 0, "Number of shares held. Zero for value-only holdings.")
	f.Float64Var(&p.value, "value", 0, "Current market value of the holding.")
	f.StringVar(&p.currency, "currency", "EUR", "Currency of the value.")
	f.StringVar(&p.date, "date", "", "Date of the entry. Defaults to today.")
	f.StringVar(&p.memo, "memo", "", "Free-form note on the entry.")
}

func (p *holdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finplan.ParseAssetType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	day, status := parseDateFlag(p.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	hold := finplan.NewHold(day, p.memo, p.symbol, typ, finplan.Q(p.shares), finplan.M(p.value, p.currency))
	return AppendEntries(hold)
}

// parseDateFlag parses an optional date flag. Empty means the zero date,
// which entry validation defaults to today.
func parseDateFlag(s string) (finplan.Date, subcommands.ExitStatus) {
	if s == "" {
		return finplan.Date{}, subcommands.ExitSuccess
	}
	day, err := finplan.ParseDate(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return finplan.Date{}, subcommands.ExitUsageError
	}
	return day, subcommands.ExitSuccess
}
