package finplan

import (
	"fmt"
	"slices"
)

// Plan represents a financial plan document: the holdings snapshot, the
// recurring savings plans, expected-return overrides, and the optional
// income scenario for the tax estimate.
//
// In a Plan entries are always in chronological order. For hold,
// contribute and expect entries the latest line per symbol wins, so a plan
// file accumulates updates over time without rewriting history.
type Plan struct {
	entries []Entry
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{entries: make([]Entry, 0)}
}

// Append validates entries and adds them to the plan, keeping it sorted.
func (p *Plan) Append(entries ...Entry) error {
	for _, e := range entries {
		validated, err := e.Validate()
		if err != nil {
			return fmt.Errorf("invalid %s entry on %v: %w", e.What(), e.When(), err)
		}
		p.entries = append(p.entries, validated)
	}
	p.stableSort()
	return nil
}

// append adds entries without validation, for the decoder which validates
// per line itself.
func (p *Plan) append(e Entry) { p.entries = append(p.entries, e) }

// stableSort orders entries by date, preserving the relative order of
// entries recorded on the same day.
func (p *Plan) stableSort() {
	slices.SortStableFunc(p.entries, func(a, b Entry) int {
		switch {
		case a.When().Before(b.When()):
			return -1
		case a.When().After(b.When()):
			return 1
		default:
			return 0
		}
	})
}

// Entries returns the plan's entries in chronological order. The returned
// slice is shared, callers must not modify it.
func (p *Plan) Entries() []Entry { return p.entries }

// Holdings returns the latest holding snapshot per symbol, in the order
// symbols first appear in the plan.
func (p *Plan) Holdings() []Holding {
	var out []Holding
	index := make(map[string]int)
	for _, e := range p.entries {
		h, ok := e.(Hold)
		if !ok {
			continue
		}
		if i, seen := index[h.Symbol]; seen {
			out[i] = h.Holding()
			continue
		}
		index[h.Symbol] = len(out)
		out = append(out, h.Holding())
	}
	return out
}

// Contributions returns the latest savings plan per symbol, in the order
// symbols first appear in the plan. Inactive plans are included, the
// projector skips them.
func (p *Plan) Contributions() []ContributionPlan {
	var out []ContributionPlan
	index := make(map[string]int)
	for _, e := range p.entries {
		c, ok := e.(Contribute)
		if !ok {
			continue
		}
		if i, seen := index[c.Symbol]; seen {
			out[i] = c.Plan()
			continue
		}
		index[c.Symbol] = len(out)
		out = append(out, c.Plan())
	}
	return out
}

// Overrides returns the latest expected annual return per symbol.
func (p *Plan) Overrides() map[string]Rate {
	out := make(map[string]Rate)
	for _, e := range p.entries {
		if x, ok := e.(Expect); ok {
			out[x.Symbol] = x.Annual
		}
	}
	return out
}

// Income returns the latest income scenario, if the plan has one.
func (p *Plan) Income() (TaxScenarioInput, bool) {
	var scenario TaxScenarioInput
	found := false
	for _, e := range p.entries {
		if in, ok := e.(Income); ok {
			scenario = in.Scenario()
			found = true
		}
	}
	return scenario, found
}

// Project runs a projection over the plan's current holdings, savings
// plans and overrides. See [Projector.Project].
func (p *Plan) Project(projector Projector, years int, scenario Scenario) (*ProjectionResult, error) {
	return projector.Project(p.Holdings(), p.Contributions(), p.Overrides(), years, scenario)
}
