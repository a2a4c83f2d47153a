package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/SimonKnogler/finplan"
	"github.com/SimonKnogler/finplan/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	symbol string
	save   bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "compute return statistics from historical prices" }
func (*analyzeCmd) Usage() string {
	return `fpl analyze [-symbol <symbol>] [-save]

  Computes annualized return, volatility, Sharpe ratio and maximum drawdown
  for every symbol in the prices file, from its monthly close series.
  Symbols held in the plan file are analyzed as their declared asset type,
  everything else as an ETF.

Usage Examples:
# Analyze all symbols in the default prices file.
$ fpl analyze
# Record the measured returns as expect entries in the plan file.
$ fpl analyze -save
`
}

func (p *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Analyze a single symbol instead of all of them.")
	f.BoolVar(&p.save, "save", false, "Append an expect entry per analyzed symbol to the plan file.")
}

func (p *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := DecodePriceSeries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	plan, err := DecodePlanFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	types := make(map[string]finplan.AssetType)
	for _, h := range plan.Holdings() {
		types[h.Symbol] = h.Type
	}

	symbols := make([]string, 0, len(series))
	for symbol := range series {
		if p.symbol != "" && symbol != p.symbol {
			continue
		}
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	if len(symbols) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no price series for %q in %s\n", p.symbol, *pricesFile)
		return subcommands.ExitFailure
	}

	var summaries []*finplan.ReturnSummary
	for _, symbol := range symbols {
		typ, ok := types[symbol]
		if !ok {
			typ = finplan.ETF
		}
		summary, err := finplan.AnalyzeReturns(symbol, typ, series[symbol])
		if errors.Is(err, finplan.ErrInsufficientData) {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", symbol, err)
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		summaries = append(summaries, summary)
	}
	if len(summaries) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no symbol has enough history to analyze")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AnalysisMarkdown(summaries))

	if p.save {
		entries := make([]finplan.Entry, 0, len(summaries))
		for _, s := range summaries {
			entries = append(entries, finplan.NewExpect(finplan.Today(), "measured by analyze", s.Symbol, s.AverageAnnualReturn))
		}
		return AppendEntries(entries...)
	}
	return subcommands.ExitSuccess
}
