package finplan

import (
	"strings"
	"testing"
)

func TestIncomeTax(t *testing.T) {
	s := Schedule2025()
	tests := []struct {
		taxable float64
		status  FilingStatus
		want    float64
	}{
		// Zone 1: the basic allowance is untaxed.
		{0, Single, 0},
		{12096, Single, 0},
		// The first euros above the allowance round down to zero.
		{12097, Single, 0},
		// Zone 2.
		{15000, Single, 485},
		{17443, Single, 1015},
		// Zone 3 picks up where zone 2 ends.
		{17444, Single, 1015},
		{48734, Single, 10245},
		{68480, Single, 17849},
		// Zone 4.
		{68481, Single, 17850},
		{78734, Single, 22156},
		// Zone 5.
		{300000, Single, 115753},
		// Splitting: twice the tax on half the income.
		{78734, MarriedJoint, 14238},
		{157468, MarriedJoint, 44312},
		// The halved income ends in fifty cents here.
		{50001, MarriedJoint, 5855},
		{110000, MarriedJoint, 25018},
	}
	for _, tc := range tests {
		got := s.IncomeTax(EUR(tc.taxable), tc.status)
		if want := EUR(tc.want); !got.Equal(want) {
			t.Errorf("IncomeTax(%v, %s) = %s, want %s", tc.taxable, tc.status, got, want)
		}
	}
}

func TestIncomeTax_WholeEuros(t *testing.T) {
	s := Schedule2025()
	// Taxable income rounds down to whole euros before the formula.
	got := s.IncomeTax(EUR(48734.99), Single)
	if want := EUR(10245); !got.Equal(want) {
		t.Errorf("IncomeTax(48734.99) = %s, want %s", got, want)
	}
	// A negative taxable income owes nothing.
	if got := s.IncomeTax(EUR(-500), Single); !got.IsZero() {
		t.Errorf("IncomeTax(-500) = %s, want 0", got)
	}
}

func TestIncomeTax_SplittingNeverWorse(t *testing.T) {
	s := Schedule2025()
	for _, taxable := range []float64{0, 5000, 13000, 20000, 48734, 68480, 110000, 300000, 500000} {
		single := s.IncomeTax(EUR(taxable), Single)
		married := s.IncomeTax(EUR(taxable), MarriedJoint)
		if married.GreaterThan(single) {
			t.Errorf("taxable %v: married tax %s exceeds single tax %s", taxable, married, single)
		}
		// Splitting strictly wins once both halves clear the allowance.
		if taxable > 2*12096 && !married.LessThan(single) {
			t.Errorf("taxable %v: splitting gave %s, want strictly below %s", taxable, married, single)
		}
	}
}

func TestMarginalRate(t *testing.T) {
	s := Schedule2025()
	tests := []struct {
		taxable float64
		status  FilingStatus
		want    string
	}{
		{5000, Single, "0"},
		{15000, Single, "0.194147984"},
		{48734, Single, "0.3502448448"},
		{78734, Single, "0.42"},
		{300000, Single, "0.45"},
		// Splitting evaluates the slope at the half income.
		{157468, MarriedJoint, "0.42"},
		{97468, MarriedJoint, "0.3502448448"},
	}
	for _, tc := range tests {
		got := s.MarginalRate(EUR(tc.taxable), tc.status)
		if want := R(dec(tc.want)); !got.Equal(want) {
			t.Errorf("MarginalRate(%v, %s) = %s, want %s", tc.taxable, tc.status, got, want)
		}
	}
}

func TestCalculate_SalaryOnly(t *testing.T) {
	res, err := CalculateGermanTax(TaxScenarioInput{GrossSalary: EUR(50000)})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// 50000 less the 1230 employee and 36 special-expense allowances.
	if got, want := res.TotalTaxableIncome, EUR(48734); !got.Equal(want) {
		t.Errorf("TotalTaxableIncome = %s, want %s", got, want)
	}
	if got, want := res.IncomeTax, EUR(10245); !got.Equal(want) {
		t.Errorf("IncomeTax = %s, want %s", got, want)
	}
	if !res.SolidarityTax.IsZero() || !res.ChurchTax.IsZero() || !res.CapitalGainsTax.IsZero() {
		t.Errorf("surcharges = %s/%s/%s, want all zero without the toggles",
			res.SolidarityTax, res.ChurchTax, res.CapitalGainsTax)
	}
	if got, want := res.Breakdown.SocialContributions.Total, EUR(10475); !got.Equal(want) {
		t.Errorf("social contributions = %s, want %s", got, want)
	}
	if got, want := res.NetIncome, EUR(29280); !got.Equal(want) {
		t.Errorf("NetIncome = %s, want %s", got, want)
	}
	if got, want := res.EffectiveTaxRate, R(dec("0.2049")); !got.Equal(want) {
		t.Errorf("EffectiveTaxRate = %s, want %s", got, want)
	}
	if got, want := res.MarginalTaxRate, R(dec("0.3502448448")); !got.Equal(want) {
		t.Errorf("MarginalTaxRate = %s, want %s", got, want)
	}
	if got, want := res.Breakdown.Deductions, EUR(1266); !got.Equal(want) {
		t.Errorf("Deductions = %s, want %s", got, want)
	}
	if got, want := res.Breakdown.EmploymentNet, EUR(29280); !got.Equal(want) {
		t.Errorf("EmploymentNet = %s, want %s", got, want)
	}
	if !res.Breakdown.CapitalNet.IsZero() {
		t.Errorf("CapitalNet = %s, want 0", res.Breakdown.CapitalNet)
	}
}

func TestCalculate_BelowBasicAllowance(t *testing.T) {
	res, err := CalculateGermanTax(TaxScenarioInput{GrossSalary: EUR(10000), ApplySolidarityTax: true})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got, want := res.TotalTaxableIncome, EUR(8734); !got.Equal(want) {
		t.Errorf("TotalTaxableIncome = %s, want %s", got, want)
	}
	if !res.IncomeTax.IsZero() {
		t.Errorf("IncomeTax = %s, want 0 below the basic allowance", res.IncomeTax)
	}
	if !res.SolidarityTax.IsZero() {
		t.Errorf("SolidarityTax = %s, want 0 without income tax", res.SolidarityTax)
	}
}

func TestCalculate_MarriedSplitting(t *testing.T) {
	in := TaxScenarioInput{GrossSalary: EUR(80000)}
	single, err := CalculateGermanTax(in)
	if err != nil {
		t.Fatalf("Calculate(single) error = %v", err)
	}
	in.FilingStatus = MarriedJoint
	married, err := CalculateGermanTax(in)
	if err != nil {
		t.Fatalf("Calculate(married) error = %v", err)
	}
	if got, want := single.IncomeTax, EUR(22156); !got.Equal(want) {
		t.Errorf("single IncomeTax = %s, want %s", got, want)
	}
	if got, want := married.IncomeTax, EUR(14238); !got.Equal(want) {
		t.Errorf("married IncomeTax = %s, want %s", got, want)
	}
	if !married.NetIncome.GreaterThan(single.NetIncome) {
		t.Errorf("married net %s should exceed single net %s", married.NetIncome, single.NetIncome)
	}
}

func TestCalculate_SolidarityThreshold(t *testing.T) {
	// Default deductions are 1266, so these salaries land the income tax
	// exactly at and just above the 19950 exemption threshold. The real
	// schedule phases the surcharge in over a band above the exemption;
	// here the full 5.5% applies right away, a hard cutoff.
	tests := []struct {
		name      string
		salary    float64
		status    FilingStatus
		incomeTax float64
		soli      float64
	}{
		{"at the threshold", 74747, Single, 19950, 0},
		{"above the threshold", 74752, Single, 19952, 1097.36},
		// The married threshold doubles: an income tax of 25018 clears
		// the single figure but not the married one.
		{"married below doubled threshold", 111266, MarriedJoint, 25018, 0},
		{"married above doubled threshold", 158734, MarriedJoint, 44312, 2437.16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := CalculateGermanTax(TaxScenarioInput{
				FilingStatus:       tc.status,
				GrossSalary:        EUR(tc.salary),
				ApplySolidarityTax: true,
			})
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if got, want := res.IncomeTax, EUR(tc.incomeTax); !got.Equal(want) {
				t.Errorf("IncomeTax = %s, want %s", got, want)
			}
			if got, want := res.SolidarityTax, EUR(tc.soli); !got.Equal(want) && !(want.IsZero() && got.IsZero()) {
				t.Errorf("SolidarityTax = %s, want %s", got, want)
			}
		})
	}
}

func TestCalculate_CapitalGains(t *testing.T) {
	t.Run("flat rate above the saver allowance", func(t *testing.T) {
		res, err := CalculateGermanTax(TaxScenarioInput{
			CapitalGains:         EUR(11000),
			ApplyCapitalGainsTax: true,
		})
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if got, want := res.CapitalGainsTax, EUR(2500); !got.Equal(want) {
			t.Errorf("CapitalGainsTax = %s, want %s", got, want)
		}
		if !res.TotalTaxableIncome.IsZero() {
			t.Errorf("TotalTaxableIncome = %s, want 0: gains are not employment income", res.TotalTaxableIncome)
		}
		if got, want := res.NetIncome, EUR(8500); !got.Equal(want) {
			t.Errorf("NetIncome = %s, want %s", got, want)
		}
	})

	t.Run("solidarity applies without an exemption", func(t *testing.T) {
		res, err := CalculateGermanTax(TaxScenarioInput{
			CapitalGains:         EUR(11000),
			ApplyCapitalGainsTax: true,
			ApplySolidarityTax:   true,
		})
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if got, want := res.SolidarityTax, EUR(137.50); !got.Equal(want) {
			t.Errorf("SolidarityTax = %s, want %s", got, want)
		}
		if got, want := res.NetIncome, EUR(8362.50); !got.Equal(want) {
			t.Errorf("NetIncome = %s, want %s", got, want)
		}
		if got, want := res.Breakdown.CapitalNet, EUR(8362.50); !got.Equal(want) {
			t.Errorf("CapitalNet = %s, want %s", got, want)
		}
	})

	t.Run("married allowance doubles", func(t *testing.T) {
		res, err := CalculateGermanTax(TaxScenarioInput{
			FilingStatus:         MarriedJoint,
			CapitalGains:         EUR(1500),
			ApplyCapitalGainsTax: true,
		})
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if !res.CapitalGainsTax.IsZero() {
			t.Errorf("CapitalGainsTax = %s, want 0 below the doubled allowance", res.CapitalGainsTax)
		}
	})

	t.Run("explicit allowance wins", func(t *testing.T) {
		res, err := CalculateGermanTax(TaxScenarioInput{
			CapitalGains:          EUR(1500),
			CapitalGainsAllowance: EUR(500),
			ApplyCapitalGainsTax:  true,
		})
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if got, want := res.CapitalGainsTax, EUR(250); !got.Equal(want) {
			t.Errorf("CapitalGainsTax = %s, want %s", got, want)
		}
	})

	t.Run("gains below the allowance", func(t *testing.T) {
		res, err := CalculateGermanTax(TaxScenarioInput{
			CapitalGains:         EUR(800),
			ApplyCapitalGainsTax: true,
		})
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if !res.CapitalGainsTax.IsZero() {
			t.Errorf("CapitalGainsTax = %s, want 0", res.CapitalGainsTax)
		}
	})

	t.Run("toggle off leaves gains untaxed", func(t *testing.T) {
		res, err := CalculateGermanTax(TaxScenarioInput{CapitalGains: EUR(11000)})
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if !res.CapitalGainsTax.IsZero() {
			t.Errorf("CapitalGainsTax = %s, want 0", res.CapitalGainsTax)
		}
		if got, want := res.NetIncome, EUR(11000); !got.Equal(want) {
			t.Errorf("NetIncome = %s, want %s", got, want)
		}
	})
}

func TestCalculate_ChurchTax(t *testing.T) {
	res, err := CalculateGermanTax(TaxScenarioInput{
		GrossSalary:    EUR(50000),
		ApplyChurchTax: true,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// 9% of the 10245 income tax.
	if got, want := res.ChurchTax, EUR(922.05); !got.Equal(want) {
		t.Errorf("ChurchTax = %s, want %s", got, want)
	}

	res, err = CalculateGermanTax(TaxScenarioInput{
		GrossSalary:    EUR(50000),
		ApplyChurchTax: true,
		ChurchTaxRate:  R(0.08),
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got, want := res.ChurchTax, EUR(819.60); !got.Equal(want) {
		t.Errorf("ChurchTax at 8%% = %s, want %s", got, want)
	}
}

func TestCalculate_SocialOverride(t *testing.T) {
	res, err := CalculateGermanTax(TaxScenarioInput{
		GrossSalary:         EUR(50000),
		SocialContributions: &SocialContributionEstimate{Total: EUR(5000)},
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// Contributions change the net, never the taxable income.
	if got, want := res.TotalTaxableIncome, EUR(48734); !got.Equal(want) {
		t.Errorf("TotalTaxableIncome = %s, want %s", got, want)
	}
	if got, want := res.NetIncome, EUR(34755); !got.Equal(want) {
		t.Errorf("NetIncome = %s, want %s", got, want)
	}
	if got, want := res.Breakdown.SocialContributions.Total, EUR(5000); !got.Equal(want) {
		t.Errorf("SocialContributions.Total = %s, want %s", got, want)
	}
}

func TestCalculate_ExplicitDeductions(t *testing.T) {
	res, err := CalculateGermanTax(TaxScenarioInput{
		GrossSalary:          EUR(50000),
		WorkExpenses:         EUR(2500),
		SpecialExpenses:      EUR(1000),
		ExtraordinaryBurdens: EUR(400),
		OtherDeductions:      EUR(100),
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got, want := res.Breakdown.Deductions, EUR(4000); !got.Equal(want) {
		t.Errorf("Deductions = %s, want %s", got, want)
	}
	if got, want := res.TotalTaxableIncome, EUR(46000); !got.Equal(want) {
		t.Errorf("TotalTaxableIncome = %s, want %s", got, want)
	}
	// Deductions beyond the income clamp the taxable income at zero.
	res, err = CalculateGermanTax(TaxScenarioInput{
		GrossSalary:  EUR(1000),
		WorkExpenses: EUR(2500),
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !res.TotalTaxableIncome.IsZero() {
		t.Errorf("TotalTaxableIncome = %s, want 0", res.TotalTaxableIncome)
	}
	if !res.IncomeTax.IsZero() {
		t.Errorf("IncomeTax = %s, want 0", res.IncomeTax)
	}
}

func TestCalculate_MarginalAtLeastEffective(t *testing.T) {
	var previous Money
	for _, salary := range []float64{15000, 30000, 50000, 75000, 120000, 400000} {
		res, err := CalculateGermanTax(TaxScenarioInput{GrossSalary: EUR(salary)})
		if err != nil {
			t.Fatalf("Calculate(%v) error = %v", salary, err)
		}
		if res.MarginalTaxRate.LessThan(res.EffectiveTaxRate) {
			t.Errorf("salary %v: marginal %s below effective %s", salary, res.MarginalTaxRate, res.EffectiveTaxRate)
		}
		if res.IncomeTax.LessThan(previous) {
			t.Errorf("salary %v: income tax %s dropped below %s", salary, res.IncomeTax, previous)
		}
		previous = res.IncomeTax
	}
}

func TestCalculate_TaxClassIsInformational(t *testing.T) {
	one, err := CalculateGermanTax(TaxScenarioInput{GrossSalary: EUR(50000), TaxClass: 1})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	six, err := CalculateGermanTax(TaxScenarioInput{GrossSalary: EUR(50000), TaxClass: 6})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !one.NetIncome.Equal(six.NetIncome) {
		t.Errorf("net income differs across classes: %s vs %s", one.NetIncome, six.NetIncome)
	}
}

func TestCalculate_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   TaxScenarioInput
	}{
		{"negative salary", TaxScenarioInput{GrossSalary: EUR(-1)}},
		{"negative gains", TaxScenarioInput{CapitalGains: EUR(-1)}},
		{"negative allowance", TaxScenarioInput{CapitalGainsAllowance: EUR(-1)}},
		{"unknown filing status", TaxScenarioInput{FilingStatus: FilingStatus(7)}},
		{"tax class out of range", TaxScenarioInput{TaxClass: 7}},
		{"negative church rate", TaxScenarioInput{ChurchTaxRate: R(-0.09)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CalculateGermanTax(tc.in); err == nil {
				t.Error("Calculate() expected a validation error")
			}
		})
	}
}

func TestScheduleFor(t *testing.T) {
	s, err := ScheduleFor(2025)
	if err != nil {
		t.Fatalf("ScheduleFor(2025) error = %v", err)
	}
	if s.Year != 2025 {
		t.Errorf("Year = %d, want 2025", s.Year)
	}
	if _, err := ScheduleFor(2019); err == nil || !strings.Contains(err.Error(), "2019") {
		t.Errorf("ScheduleFor(2019) error = %v, want the year named", err)
	}
}

func TestParseFilingStatus(t *testing.T) {
	for _, status := range []FilingStatus{Single, MarriedJoint} {
		parsed, err := ParseFilingStatus(status.String())
		if err != nil {
			t.Fatalf("ParseFilingStatus(%q) error = %v", status, err)
		}
		if parsed != status {
			t.Errorf("ParseFilingStatus(%q) = %v, want %v", status, parsed, status)
		}
	}
	if _, err := ParseFilingStatus("widowed"); err == nil {
		t.Error("ParseFilingStatus(widowed) expected an error")
	}
}
