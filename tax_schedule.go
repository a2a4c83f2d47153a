package finplan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	two         = decimal.NewFromInt(2)
	tenThousand = decimal.NewFromInt(10000)
)

// dec parses a published schedule constant. It panics on malformed input,
// which can only happen at package initialization.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TaxSchedule carries the year-dependent constants of the German income
// tax formula (§32a EStG) plus the surcharge and allowance figures that
// change with it. Amounts are annual and in EUR.
type TaxSchedule struct {
	Year int

	// Progressive formula zone boundaries, in whole euros of taxable
	// income. Incomes at or below BasicAllowance are untaxed.
	BasicAllowance decimal.Decimal
	Zone2End       decimal.Decimal
	Zone3End       decimal.Decimal
	Zone4End       decimal.Decimal

	// Zone coefficients as published.
	Zone2A, Zone2B         decimal.Decimal
	Zone3A, Zone3B, Zone3C decimal.Decimal
	Zone4Rate, Zone4Offset decimal.Decimal
	Zone5Rate, Zone5Offset decimal.Decimal

	SolidarityRate      Rate
	SolidarityThreshold Money // exemption on income tax, doubled for married couples
	DefaultChurchRate   Rate
	CapitalGainsRate    Rate
	SaverAllowance      Money // doubled for married couples

	WorkExpenseAllowance    Money
	SpecialExpenseAllowance Money
}

// Schedule2025 returns the published parameters for the 2025 assessment year.
func Schedule2025() TaxSchedule {
	return TaxSchedule{
		Year:           2025,
		BasicAllowance: dec("12096"),
		Zone2End:       dec("17443"),
		Zone3End:       dec("68480"),
		Zone4End:       dec("277825"),
		Zone2A:         dec("932.30"),
		Zone2B:         dec("1400"),
		Zone3A:         dec("176.64"),
		Zone3B:         dec("2397"),
		Zone3C:         dec("1015.13"),
		Zone4Rate:      dec("0.42"),
		Zone4Offset:    dec("10911.92"),
		Zone5Rate:      dec("0.45"),
		Zone5Offset:    dec("19246.67"),

		SolidarityRate:      R(dec("0.055")),
		SolidarityThreshold: M(dec("19950"), "EUR"),
		DefaultChurchRate:   R(dec("0.09")),
		CapitalGainsRate:    R(dec("0.25")),
		SaverAllowance:      M(dec("1000"), "EUR"),

		WorkExpenseAllowance:    M(dec("1230"), "EUR"),
		SpecialExpenseAllowance: M(dec("36"), "EUR"),
	}
}

// ScheduleFor returns the tax schedule for an assessment year.
func ScheduleFor(year int) (TaxSchedule, error) {
	switch year {
	case 2025:
		return Schedule2025(), nil
	default:
		return TaxSchedule{}, fmt.Errorf("no tax schedule for year %d", year)
	}
}

// rawTax evaluates the progressive formula on a whole-euro taxable income,
// without the final rounding.
func (s TaxSchedule) rawTax(zve decimal.Decimal) decimal.Decimal {
	switch {
	case zve.LessThanOrEqual(s.BasicAllowance):
		return decimal.Zero
	case zve.LessThanOrEqual(s.Zone2End):
		y := zve.Sub(s.BasicAllowance).Div(tenThousand)
		return s.Zone2A.Mul(y).Add(s.Zone2B).Mul(y)
	case zve.LessThanOrEqual(s.Zone3End):
		z := zve.Sub(s.Zone2End).Div(tenThousand)
		return s.Zone3A.Mul(z).Add(s.Zone3B).Mul(z).Add(s.Zone3C)
	case zve.LessThanOrEqual(s.Zone4End):
		return s.Zone4Rate.Mul(zve).Sub(s.Zone4Offset)
	default:
		return s.Zone5Rate.Mul(zve).Sub(s.Zone5Offset)
	}
}

// marginal is the slope of rawTax at a whole-euro taxable income.
func (s TaxSchedule) marginal(zve decimal.Decimal) decimal.Decimal {
	switch {
	case zve.LessThanOrEqual(s.BasicAllowance):
		return decimal.Zero
	case zve.LessThanOrEqual(s.Zone2End):
		y := zve.Sub(s.BasicAllowance).Div(tenThousand)
		return two.Mul(s.Zone2A).Mul(y).Add(s.Zone2B).Div(tenThousand)
	case zve.LessThanOrEqual(s.Zone3End):
		z := zve.Sub(s.Zone2End).Div(tenThousand)
		return two.Mul(s.Zone3A).Mul(z).Add(s.Zone3B).Div(tenThousand)
	case zve.LessThanOrEqual(s.Zone4End):
		return s.Zone4Rate
	default:
		return s.Zone5Rate
	}
}

// IncomeTax returns the annual income tax on a taxable income, applying
// the splitting procedure for married couples. Taxable income rounds down
// to whole euros before the formula, and so does the resulting tax, as
// published.
func (s TaxSchedule) IncomeTax(taxable Money, status FilingStatus) Money {
	zve := taxable.value.Floor()
	if zve.IsNegative() {
		zve = decimal.Zero
	}
	if status == MarriedJoint {
		// Splitting: twice the tax on half the income. The half may end
		// in fifty cents; rounding happens once, on the doubled tax.
		return M(s.rawTax(zve.Div(two)).Mul(two).Floor(), "EUR")
	}
	return M(s.rawTax(zve).Floor(), "EUR")
}

// MarginalRate returns the slope of the tax formula at a taxable income.
// For married couples this is the slope at the split income, which is also
// the slope of the doubled schedule.
func (s TaxSchedule) MarginalRate(taxable Money, status FilingStatus) Rate {
	zve := taxable.value.Floor()
	if zve.IsNegative() {
		zve = decimal.Zero
	}
	if status == MarriedJoint {
		zve = zve.Div(two)
	}
	return Rate{value: s.marginal(zve)}
}
