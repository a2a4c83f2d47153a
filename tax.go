package finplan

import (
	"encoding/json"
	"fmt"
)

// FilingStatus selects between individual assessment and the married
// splitting procedure.
type FilingStatus int

const (
	Single FilingStatus = iota
	MarriedJoint
)

func (f FilingStatus) String() string {
	switch f {
	case Single:
		return "single"
	case MarriedJoint:
		return "married"
	default:
		return "unknown"
	}
}

// ParseFilingStatus parses a string into a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch s {
	case "single":
		return Single, nil
	case "married":
		return MarriedJoint, nil
	default:
		return 0, fmt.Errorf("unknown filing status: %q", s)
	}
}

func (f FilingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FilingStatus) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParseFilingStatus(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// TaxScenarioInput describes one year of income and the toggles that shape
// its taxation. Amounts are annual and pre-tax. A zero deduction field
// means "use the flat allowance", not "no deduction".
type TaxScenarioInput struct {
	FilingStatus FilingStatus
	// TaxClass is the wage tax class (1..6). It is informational: class
	// changes withholding through the year, not the annual liability
	// computed here. Zero means unspecified.
	TaxClass int

	GrossSalary  Money
	OtherIncome  Money
	CapitalGains Money

	WorkExpenses          Money // zero means the employee flat allowance
	SpecialExpenses       Money // zero means the special-expense flat allowance
	ExtraordinaryBurdens  Money
	OtherDeductions       Money
	CapitalGainsAllowance Money // zero means the saver allowance for the filing status

	ApplyCapitalGainsTax bool
	ApplySolidarityTax   bool
	ApplyChurchTax       bool
	ChurchTaxRate        Rate // zero means the schedule default

	// SocialContributions overrides the statutory estimate, e.g. for
	// privately insured taxpayers. Nil means estimate from GrossSalary.
	SocialContributions *SocialContributionEstimate
}

func (in TaxScenarioInput) validate() error {
	for _, f := range []struct {
		name   string
		amount Money
	}{
		{"gross salary", in.GrossSalary},
		{"other income", in.OtherIncome},
		{"capital gains", in.CapitalGains},
		{"work expenses", in.WorkExpenses},
		{"special expenses", in.SpecialExpenses},
		{"extraordinary burdens", in.ExtraordinaryBurdens},
		{"other deductions", in.OtherDeductions},
		{"capital gains allowance", in.CapitalGainsAllowance},
	} {
		if f.amount.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", f.name, f.amount)
		}
	}
	if in.FilingStatus != Single && in.FilingStatus != MarriedJoint {
		return fmt.Errorf("unknown filing status: %d", in.FilingStatus)
	}
	if in.TaxClass < 0 || in.TaxClass > 6 {
		return fmt.Errorf("tax class must be 1 to 6, got %d", in.TaxClass)
	}
	if in.ChurchTaxRate.IsNegative() {
		return fmt.Errorf("church tax rate must not be negative, got %s", in.ChurchTaxRate)
	}
	return nil
}

// TaxBreakdown itemizes how gross income turns into net income.
type TaxBreakdown struct {
	EmploymentGross     Money                      `json:"employmentGross"`
	CapitalGross        Money                      `json:"capitalGross"`
	Deductions          Money                      `json:"deductions"`
	SocialContributions SocialContributionEstimate `json:"socialContributions"`
	EmploymentNet       Money                      `json:"employmentNet"`
	CapitalNet          Money                      `json:"capitalNet"`
}

// TaxResult is the outcome of one tax scenario.
type TaxResult struct {
	TotalGrossIncome   Money        `json:"totalGrossIncome"`
	TotalTaxableIncome Money        `json:"totalTaxableIncome"`
	IncomeTax          Money        `json:"incomeTax"`
	SolidarityTax      Money        `json:"solidarityTax"`
	ChurchTax          Money        `json:"churchTax"`
	CapitalGainsTax    Money        `json:"capitalGainsTax"`
	TotalTax           Money        `json:"totalTax"`
	NetIncome          Money        `json:"netIncome"`
	EffectiveTaxRate   Rate         `json:"effectiveTaxRate"`
	MarginalTaxRate    Rate         `json:"marginalTaxRate"`
	Breakdown          TaxBreakdown `json:"breakdown"`
}

// GermanTaxCalculator computes annual German taxes from injected year
// schedules, so future assessment years are a schedule away.
type GermanTaxCalculator struct {
	Schedule TaxSchedule
	Social   SocialSchedule
}

// NewGermanTaxCalculator returns a calculator loaded with the current
// (2025) schedules.
func NewGermanTaxCalculator() GermanTaxCalculator {
	return GermanTaxCalculator{Schedule: Schedule2025(), Social: SocialSchedule2025()}
}

// CalculateGermanTax computes a tax scenario under the current schedules.
// See [GermanTaxCalculator.Calculate].
func CalculateGermanTax(input TaxScenarioInput) (*TaxResult, error) {
	return NewGermanTaxCalculator().Calculate(input)
}

// Calculate runs one scenario through the progressive income tax formula,
// the flat capital gains tax, and the surcharges.
//
// Deviations from a full assessment, kept deliberately: social insurance
// contributions reduce net income but not taxable income, and the
// solidarity exemption is a hard threshold without the statutory
// phase-in band.
func (c GermanTaxCalculator) Calculate(input TaxScenarioInput) (*TaxResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	social := input.SocialContributions
	if social == nil {
		estimated, err := c.Social.Estimate(input.GrossSalary)
		if err != nil {
			return nil, err
		}
		social = estimated
	}

	// Employment side: gross minus deductions, floored at zero.
	employmentGross := input.GrossSalary.Add(input.OtherIncome)
	work := input.WorkExpenses
	if work.IsZero() {
		work = c.Schedule.WorkExpenseAllowance
	}
	special := input.SpecialExpenses
	if special.IsZero() {
		special = c.Schedule.SpecialExpenseAllowance
	}
	deductions := work.Add(special).Add(input.ExtraordinaryBurdens).Add(input.OtherDeductions)
	taxable := employmentGross.Sub(deductions)
	if taxable.IsNegative() {
		taxable = M(0, taxable.Currency())
	}

	incomeTax := c.Schedule.IncomeTax(taxable, input.FilingStatus)

	// Capital side: flat rate on gains above the saver allowance.
	allowance := input.CapitalGainsAllowance
	if allowance.IsZero() {
		allowance = c.Schedule.SaverAllowance
		if input.FilingStatus == MarriedJoint {
			allowance = allowance.Add(allowance)
		}
	}
	var capitalTax Money
	if input.ApplyCapitalGainsTax {
		taxableGains := input.CapitalGains.Sub(allowance)
		if taxableGains.IsNegative() {
			taxableGains = M(0, taxableGains.Currency())
		}
		capitalTax = taxableGains.MulRate(c.Schedule.CapitalGainsRate)
	}

	// Solidarity surcharge: exempt up to a threshold on the income tax,
	// never exempt on the capital gains tax.
	var solidarityOnIncome, solidarityOnCapital Money
	if input.ApplySolidarityTax {
		threshold := c.Schedule.SolidarityThreshold
		if input.FilingStatus == MarriedJoint {
			threshold = threshold.Add(threshold)
		}
		if incomeTax.GreaterThan(threshold) {
			solidarityOnIncome = incomeTax.MulRate(c.Schedule.SolidarityRate)
		}
		solidarityOnCapital = capitalTax.MulRate(c.Schedule.SolidarityRate)
	}
	solidarity := solidarityOnIncome.Add(solidarityOnCapital)

	var churchTax Money
	if input.ApplyChurchTax {
		rate := input.ChurchTaxRate
		if rate.IsZero() {
			rate = c.Schedule.DefaultChurchRate
		}
		churchTax = incomeTax.MulRate(rate)
	}

	totalGross := employmentGross.Add(input.CapitalGains)
	totalTax := incomeTax.Add(solidarity).Add(churchTax).Add(capitalTax)
	netIncome := totalGross.Sub(totalTax).Sub(social.Total)

	var effective Rate
	if totalGross.IsPositive() {
		effective = totalTax.Over(totalGross)
	}

	return &TaxResult{
		TotalGrossIncome:   totalGross,
		TotalTaxableIncome: taxable,
		IncomeTax:          incomeTax,
		SolidarityTax:      solidarity,
		ChurchTax:          churchTax,
		CapitalGainsTax:    capitalTax,
		TotalTax:           totalTax,
		NetIncome:          netIncome,
		EffectiveTaxRate:   effective,
		MarginalTaxRate:    c.Schedule.MarginalRate(taxable, input.FilingStatus),
		Breakdown: TaxBreakdown{
			EmploymentGross:     employmentGross,
			CapitalGross:        input.CapitalGains,
			Deductions:          deductions,
			SocialContributions: *social,
			EmploymentNet:       employmentGross.Sub(incomeTax).Sub(solidarityOnIncome).Sub(churchTax).Sub(social.Total),
			CapitalNet:          input.CapitalGains.Sub(capitalTax).Sub(solidarityOnCapital),
		},
	}, nil
}
