// Command fpl is a financial planning tool: it keeps a plan file of
// holdings, savings plans and income, measures historical returns, projects
// growth and estimates German taxes.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/SimonKnogler/finplan/cmd"
	"github.com/SimonKnogler/finplan/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands get a chance to resolve as fpl-<name> extensions.
	if args := flag.Args(); len(args) > 0 && !cmd.Known(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for fpl. It only acts when the
// shell drives the process through the COMP_LINE environment variable.
func completion() {
	jsonl := predict.Files("*.jsonl")
	symbols := predict.Something
	dates := predict.Something
	amounts := predict.Something
	scenarios := predict.Set{"conservative", "realistic", "optimistic"}

	topics := complete.PredictFunc(func(prefix string) []string {
		all, err := docs.GetAllTopics()
		if err != nil {
			return nil
		}
		return append(all, "readme")
	})

	fpl := &complete.Command{
		Flags: map[string]complete.Predictor{
			"plan-file":   jsonl,
			"prices-file": jsonl,
		},
		Sub: map[string]*complete.Command{
			"hold": {Flags: map[string]complete.Predictor{
				"symbol":   symbols,
				"type":     predict.Set{"stock", "etf", "crypto", "cash"},
				"shares":   amounts,
				"value":    amounts,
				"currency": predict.Set{"EUR", "USD"},
				"date":     dates,
				"memo":     predict.Nothing,
			}},
			"contribute": {Flags: map[string]complete.Predictor{
				"symbol":   symbols,
				"monthly":  amounts,
				"currency": predict.Set{"EUR", "USD"},
				"start":    dates,
				"end":      dates,
				"inactive": predict.Nothing,
				"date":     dates,
				"memo":     predict.Nothing,
			}},
			"expect": {Flags: map[string]complete.Predictor{
				"symbol": symbols,
				"annual": amounts,
				"date":   dates,
				"memo":   predict.Nothing,
			}},
			"fmt": {},
			"import": {
				Flags: map[string]complete.Predictor{"force": predict.Nothing},
				Args:  predict.Files("*.json"),
			},
			"holdings": {},
			"plans":    {},
			"analyze": {Flags: map[string]complete.Predictor{
				"symbol": symbols,
				"save":   predict.Nothing,
			}},
			"project": {Flags: map[string]complete.Predictor{
				"years":    amounts,
				"scenario": scenarios,
				"start":    dates,
			}},
			"tax": {Flags: map[string]complete.Predictor{
				"year":            predict.Set{"2025"},
				"currency":        predict.Set{"EUR"},
				"salary":          amounts,
				"other":           amounts,
				"capital":         amounts,
				"filing":          predict.Set{"single", "married"},
				"class":           predict.Set{"1", "2", "3", "4", "5", "6"},
				"work":            amounts,
				"special":         amounts,
				"burdens":         amounts,
				"deductions":      amounts,
				"gains-allowance": amounts,
				"church":          predict.Nothing,
				"church-rate":     amounts,
				"no-solidarity":   predict.Nothing,
				"no-capital-tax":  predict.Nothing,
				"save":            predict.Nothing,
			}},
			"contributions": {Flags: map[string]complete.Predictor{
				"year":     predict.Set{"2025"},
				"gross":    amounts,
				"currency": predict.Set{"EUR"},
			}},
			"topic":  {Args: topics},
			"assist": {Args: predict.Something},
		},
	}
	fpl.Complete("fpl")
}
