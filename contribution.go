package finplan

import "fmt"

// ContributionPlan is a recurring monthly savings plan for one symbol.
type ContributionPlan struct {
	Symbol  string
	Monthly Money
	Active  bool
	Start   Date // zero means already started
	End     Date // zero means open-ended
}

// Validate reports whether the plan can take part in a projection.
func (p ContributionPlan) Validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("contribution plan has no symbol")
	}
	if !p.Monthly.IsPositive() {
		return fmt.Errorf("contribution plan %s: monthly amount must be positive, got %s", p.Symbol, p.Monthly)
	}
	if !p.End.IsZero() && p.End.Before(p.Start) {
		return fmt.Errorf("contribution plan %s: ends %s before it starts %s", p.Symbol, p.End, p.Start)
	}
	return nil
}

// covers reports whether the plan contributes in the month of on. Plan
// windows have month granularity: a plan starting any day of a month
// contributes for that whole month, and likewise for the end date.
func (p ContributionPlan) covers(on Date) bool {
	if !p.Active {
		return false
	}
	month := on.StartOfMonth()
	if month.Before(p.Start.StartOfMonth()) {
		return false
	}
	if !p.End.IsZero() && month.After(p.End.StartOfMonth()) {
		return false
	}
	return true
}
