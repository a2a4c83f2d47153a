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

type taxCmd struct {
	year     int
	currency string

	salary  float64
	other   float64
	capital float64
	filing  string
	class   int

	work       float64
	special    float64
	burdens    float64
	deductions float64
	allowance  float64

	church       bool
	churchRate   float64
	noSolidarity bool
	noCapitalTax bool

	save bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate German taxes for one year of income" }
func (*taxCmd) Usage() string {
	return `fpl tax [-salary <gross>] [-filing single|married] [-capital <gains>] [...]

  Estimates income tax, solidarity surcharge, church tax, capital gains tax
  and social insurance contributions for an annual income. Without -salary
  the scenario is read from the latest income entry in the plan file.

  Deduction flags left at zero fall back to the year's flat allowances.

Usage Examples:
# Single, 50k gross.
$ fpl tax -salary 50000
# Married couple with capital gains and church tax.
$ fpl tax -salary 110000 -filing married -capital 8000 -church
`
}

func (p *taxCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "year", 2025, "Assessment year of the tax schedule.")
	f.StringVar(&p.currency, "currency", "EUR", "Currency of the amounts.")
	f.Float64Var(&p.salary, "salary", -1, "Annual gross salary. Reads the plan file's income entry when omitted.")
	f.Float64Var(&p.other, "other", 0, "Other annual income taxed as employment income.")
	f.Float64Var(&p.capital, "capital", 0, "Annual capital gains.")
	f.StringVar(&p.filing, "filing", "single", "Filing status: single or married.")
	f.IntVar(&p.class, "class", 0, "Wage tax class 1 to 6, informational.")
	f.Float64Var(&p.work, "work", 0, "Work expenses. Zero means the employee flat allowance.")
	f.Float64Var(&p.special, "special", 0, "Special expenses. Zero means the flat allowance.")
	f.Float64Var(&p.burdens, "burdens", 0, "Extraordinary burdens.")
	f.Float64Var(&p.deductions, "deductions", 0, "Additional deductions.")
	f.Float64Var(&p.allowance, "gains-allowance", 0, "Capital gains allowance. Zero means the saver allowance.")
	f.BoolVar(&p.church, "church", false, "Levy church tax.")
	f.Float64Var(&p.churchRate, "church-rate", 0, "Church tax rate. Zero means the default 9%.")
	f.BoolVar(&p.noSolidarity, "no-solidarity", false, "Skip the solidarity surcharge.")
	f.BoolVar(&p.noCapitalTax, "no-capital-tax", false, "Skip the flat capital gains tax.")
	f.BoolVar(&p.save, "save", false, "Record the scenario as an income entry in the plan file.")
}

func (p *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	schedule, err := finplan.ScheduleFor(p.year)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	social, err := finplan.SocialScheduleFor(p.year)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	calculator := finplan.GermanTaxCalculator{Schedule: schedule, Social: social}

	input, status := p.scenario()
	if status != subcommands.ExitSuccess {
		return status
	}

	result, err := calculator.Calculate(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TaxMarkdown(result))

	if p.save {
		if p.salary < 0 {
			fmt.Fprintln(os.Stderr, "Error: nothing to save, -save records the scenario given by flags")
			return subcommands.ExitUsageError
		}
		return AppendEntries(finplan.NewIncome(finplan.Today(), "recorded by tax", input))
	}
	return subcommands.ExitSuccess
}

// scenario builds the tax input from the flags, or from the plan file's
// income entry when no salary was given.
func (p *taxCmd) scenario() (finplan.TaxScenarioInput, subcommands.ExitStatus) {
	if p.salary < 0 {
		plan, err := DecodePlanFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return finplan.TaxScenarioInput{}, subcommands.ExitFailure
		}
		input, ok := plan.Income()
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no income entry in %s, pass -salary instead\n", *planFile)
			return finplan.TaxScenarioInput{}, subcommands.ExitUsageError
		}
		return input, subcommands.ExitSuccess
	}

	filing, err := finplan.ParseFilingStatus(p.filing)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return finplan.TaxScenarioInput{}, subcommands.ExitUsageError
	}

	amount := func(v float64) finplan.Money {
		if v == 0 {
			return finplan.Money{}
		}
		return finplan.M(v, p.currency)
	}
	return finplan.TaxScenarioInput{
		FilingStatus:          filing,
		TaxClass:              p.class,
		GrossSalary:           finplan.M(p.salary, p.currency),
		OtherIncome:           amount(p.other),
		CapitalGains:          amount(p.capital),
		WorkExpenses:          amount(p.work),
		SpecialExpenses:       amount(p.special),
		ExtraordinaryBurdens:  amount(p.burdens),
		OtherDeductions:       amount(p.deductions),
		CapitalGainsAllowance: amount(p.allowance),
		ApplyCapitalGainsTax:  !p.noCapitalTax,
		ApplySolidarityTax:    !p.noSolidarity,
		ApplyChurchTax:        p.church,
		ChurchTaxRate:         finplan.R(p.churchRate),
	}, subcommands.ExitSuccess
}
