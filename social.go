package finplan

import "fmt"

// SocialSchedule carries a year's statutory social insurance parameters:
// the employee's share of each contribution rate and the income ceiling
// (Beitragsbemessungsgrenze) it is capped at.
type SocialSchedule struct {
	Year int

	PensionRate         Rate
	PensionCeiling      Money
	UnemploymentRate    Rate
	UnemploymentCeiling Money
	HealthRate          Rate
	HealthCeiling       Money
	CareRate            Rate
	CareCeiling         Money
}

// SocialSchedule2025 returns the 2025 employee-share parameters. The
// health rate includes half of the average supplemental rate, and the care
// rate is the childless-free figure without the childless surcharge.
func SocialSchedule2025() SocialSchedule {
	return SocialSchedule{
		Year:                2025,
		PensionRate:         R(dec("0.093")),
		PensionCeiling:      M(dec("96600"), "EUR"),
		UnemploymentRate:    R(dec("0.013")),
		UnemploymentCeiling: M(dec("96600"), "EUR"),
		HealthRate:          R(dec("0.0855")),
		HealthCeiling:       M(dec("66150"), "EUR"),
		CareRate:            R(dec("0.018")),
		CareCeiling:         M(dec("66150"), "EUR"),
	}
}

// SocialScheduleFor returns the social insurance schedule for a year.
func SocialScheduleFor(year int) (SocialSchedule, error) {
	switch year {
	case 2025:
		return SocialSchedule2025(), nil
	default:
		return SocialSchedule{}, fmt.Errorf("no social insurance schedule for year %d", year)
	}
}

// SocialContributionEstimate is the employee share of the four statutory
// social insurance branches for one year of gross salary.
type SocialContributionEstimate struct {
	Pension      Money `json:"pension"`
	Health       Money `json:"health"`
	Unemployment Money `json:"unemployment"`
	Care         Money `json:"care"`
	Total        Money `json:"total"`
}

// Estimate computes each branch as rate times the gross salary capped at
// the branch ceiling. Above a ceiling the contribution is flat, so the
// estimate is regressive in the gross salary.
func (s SocialSchedule) Estimate(gross Money) (*SocialContributionEstimate, error) {
	if gross.IsNegative() {
		return nil, fmt.Errorf("gross salary must not be negative, got %s", gross)
	}
	contribution := func(rate Rate, ceiling Money) Money {
		base := gross
		if base.GreaterThan(ceiling) {
			base = ceiling
		}
		return base.MulRate(rate)
	}
	e := &SocialContributionEstimate{
		Pension:      contribution(s.PensionRate, s.PensionCeiling),
		Health:       contribution(s.HealthRate, s.HealthCeiling),
		Unemployment: contribution(s.UnemploymentRate, s.UnemploymentCeiling),
		Care:         contribution(s.CareRate, s.CareCeiling),
	}
	e.Total = e.Pension.Add(e.Health).Add(e.Unemployment).Add(e.Care)
	return e, nil
}

// EstimateSocialContributions estimates the employee share of social
// insurance for an annual gross salary under the 2025 schedule.
func EstimateSocialContributions(gross Money) (*SocialContributionEstimate, error) {
	return SocialSchedule2025().Estimate(gross)
}
