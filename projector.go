package finplan

import (
	"fmt"
	"math"
)

// Projector runs month-by-month compounding simulations over a portfolio
// snapshot. The zero value anchors projections on today; set Start to make
// runs reproducible.
type Projector struct {
	Start Date
}

// Project runs a projection anchored on today. See [Projector.Project].
func Project(snapshot []Holding, plans []ContributionPlan, overrides map[string]Rate, years int, scenario Scenario) (*ProjectionResult, error) {
	return Projector{}.Project(snapshot, plans, overrides, years, scenario)
}

// holdingState is the mutable per-symbol record tracked through the
// simulated months.
type holdingState struct {
	symbol  string
	typ     AssetType
	shares  Quantity
	value   Money
	monthly Rate // scenario-adjusted annual return, divided by 12
}

// arena holds every simulated position in first-seen order, so that two
// runs over the same inputs produce identical breakdowns.
type arena struct {
	order []*holdingState
	index map[string]*holdingState
}

func newArena() *arena { return &arena{index: make(map[string]*holdingState)} }

func (a *arena) get(symbol string) *holdingState { return a.index[symbol] }

func (a *arena) add(hs *holdingState) *holdingState {
	a.order = append(a.order, hs)
	a.index[hs.symbol] = hs
	return hs
}

// point snapshots the arena at the end of a month.
func (a *arena) point(index int, on Date, cumulative Money) ProjectionPoint {
	pt := ProjectionPoint{
		MonthIndex:              index,
		Date:                    on,
		CumulativeContributions: cumulative,
		Breakdown:               make([]SymbolValue, 0, len(a.order)),
	}
	var invest, cash Money
	for _, hs := range a.order {
		if hs.typ == Cash {
			cash = cash.Add(hs.value)
		} else {
			invest = invest.Add(hs.value)
		}
		pt.Breakdown = append(pt.Breakdown, SymbolValue{Symbol: hs.symbol, Value: hs.value})
	}
	pt.InvestmentValue = invest
	pt.CashValue = cash
	pt.PortfolioValue = invest.Add(cash)
	// Net worth equals the portfolio value as long as no other asset or
	// liability kinds are simulated.
	pt.NetWorth = pt.PortfolioValue
	return pt
}

// Project simulates years of monthly compounding over the snapshot.
//
// Expected annual returns resolve per symbol: an entry in overrides wins,
// otherwise [DefaultReturn] applies. The resolved return is scaled once by
// the scenario multiplier and then compounds naively, value += value*(r/12)
// each month. Cash holdings never grow. Contribution plans are applied
// after growth in every month their window covers; when the target holding
// carries both shares and value, the contribution buys shares at the
// implied price, and a plan for an unknown symbol opens a new value-only
// position treated as an ETF.
//
// years <= 0 is not an error and yields an empty projection.
func (p Projector) Project(snapshot []Holding, plans []ContributionPlan, overrides map[string]Rate, years int, scenario Scenario) (*ProjectionResult, error) {
	for _, h := range snapshot {
		if err := h.Validate(); err != nil {
			return nil, err
		}
	}
	for _, pl := range plans {
		if err := pl.Validate(); err != nil {
			return nil, err
		}
	}
	currency, err := projectionCurrency(snapshot, plans)
	if err != nil {
		return nil, err
	}

	start := p.Start
	if start.IsZero() {
		start = Today()
	}

	result := &ProjectionResult{
		Scenario: scenario,
		Years:    years,
		Start:    start,
		Points:   []ProjectionPoint{},
	}
	if years <= 0 {
		return result, nil
	}

	factor := scenario.Multiplier()
	a := newArena()
	for _, h := range snapshot {
		if hs := a.get(h.Symbol); hs != nil {
			// Same symbol held twice, e.g. in two depots.
			hs.shares = hs.shares.Add(h.Shares)
			hs.value = hs.value.Add(h.Value)
			continue
		}
		annual := DefaultReturn(h.Type, h.Symbol)
		if r, ok := overrides[h.Symbol]; ok {
			annual = r
		}
		a.add(&holdingState{
			symbol:  h.Symbol,
			typ:     h.Type,
			shares:  h.Shares,
			value:   h.Value,
			monthly: annual.Mul(factor).Monthly(),
		})
	}

	starting := a.point(0, start, M(0, currency)).NetWorth

	// Month labels anchor on the first of the month so that a projection
	// started on January 31st does not drift across month ends.
	base := start.StartOfMonth()
	months := years * 12
	cumulative := M(0, currency)
	for m := 1; m <= months; m++ {
		on := base.AddMonth(m)

		for _, hs := range a.order {
			if hs.typ == Cash {
				continue
			}
			hs.value = hs.value.Add(hs.value.MulRate(hs.monthly))
		}

		for _, pl := range plans {
			if !pl.covers(on) {
				continue
			}
			hs := a.get(pl.Symbol)
			if hs == nil {
				hs = a.add(&holdingState{
					symbol:  pl.Symbol,
					typ:     ETF,
					value:   M(0, currency),
					monthly: DefaultReturn(ETF, pl.Symbol).Mul(factor).Monthly(),
				})
			}
			if hs.shares.IsPositive() && hs.value.IsPositive() {
				price := hs.value.Div(hs.shares)
				hs.shares = hs.shares.Add(pl.Monthly.DivPrice(price))
			}
			hs.value = hs.value.Add(pl.Monthly)
			cumulative = cumulative.Add(pl.Monthly)
		}

		result.Points = append(result.Points, a.point(m, on, cumulative))
	}

	ending := result.Points[len(result.Points)-1].NetWorth
	result.Summary = ProjectionSummary{
		StartingValue:       starting,
		EndingValue:         ending,
		TotalGain:           ending.Sub(starting).Sub(cumulative),
		TotalContributions:  cumulative,
		AverageAnnualReturn: cagr(starting, ending, years),
	}
	return result, nil
}

// projectionCurrency checks that every amount shares one currency and
// returns it. Amounts without a currency are compatible with anything.
func projectionCurrency(snapshot []Holding, plans []ContributionPlan) (string, error) {
	currency := ""
	merge := func(what, symbol, c string) error {
		if c == "" || c == currency {
			return nil
		}
		if currency == "" {
			currency = c
			return nil
		}
		return fmt.Errorf("%s %s: currency %s differs from %s, convert amounts to a single currency first", what, symbol, c, currency)
	}
	for _, h := range snapshot {
		if err := merge("holding", h.Symbol, h.Value.Currency()); err != nil {
			return "", err
		}
	}
	for _, pl := range plans {
		if err := merge("contribution plan", pl.Symbol, pl.Monthly.Currency()); err != nil {
			return "", err
		}
	}
	return currency, nil
}

// cagr is the compound annual growth rate between two values. This is the
// only floating point figure in a projection.
func cagr(starting, ending Money, years int) Rate {
	if !starting.IsPositive() || years <= 0 {
		return Rate{}
	}
	ratio := ending.Over(starting).Float64()
	return R(math.Pow(ratio, 1/float64(years)) - 1)
}
