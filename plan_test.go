package finplan

import (
	"strings"
	"testing"
)

func TestPlanAppend_SortsByDate(t *testing.T) {
	p := NewPlan()
	err := p.Append(
		NewHold(MustParse("2025-03-01"), "", "C", ETF, Q(0), EUR(3)),
		NewHold(MustParse("2025-01-01"), "", "A", ETF, Q(0), EUR(1)),
		NewHold(MustParse("2025-02-01"), "", "B", ETF, Q(0), EUR(2)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	var got []string
	for _, e := range p.Entries() {
		got = append(got, e.(Hold).Symbol)
	}
	if want := "A,B,C"; strings.Join(got, ",") != want {
		t.Errorf("entries order = %s, want %s", strings.Join(got, ","), want)
	}
}

func TestPlanAppend_KeepsSameDayOrder(t *testing.T) {
	p := NewPlan()
	err := p.Append(
		NewHold(MustParse("2025-01-01"), "", "FIRST", ETF, Q(0), EUR(1)),
		NewHold(MustParse("2025-01-01"), "", "SECOND", ETF, Q(0), EUR(2)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if got := p.Entries()[0].(Hold).Symbol; got != "FIRST" {
		t.Errorf("first same-day entry = %s, want FIRST", got)
	}
}

func TestPlanAppend_Invalid(t *testing.T) {
	p := NewPlan()
	err := p.Append(NewHold(MustParse("2025-01-01"), "", "", ETF, Q(0), EUR(1)))
	if err == nil {
		t.Fatal("Append() expected an error for a hold without symbol")
	}
	if !strings.Contains(err.Error(), "invalid hold entry") {
		t.Errorf("error = %v, want the entry kind named", err)
	}
}

func TestPlanAppend_DefaultsDate(t *testing.T) {
	p := NewPlan()
	if err := p.Append(NewHold(Date{}, "", "VWCE", ETF, Q(0), EUR(1))); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if got := p.Entries()[0].When(); got != Today() {
		t.Errorf("defaulted date = %s, want today %s", got, Today())
	}
}

func TestPlanHoldings_LatestWins(t *testing.T) {
	p := NewPlan()
	err := p.Append(
		NewHold(MustParse("2025-01-01"), "", "VWCE", ETF, Q(10), EUR(1000)),
		NewHold(MustParse("2025-02-01"), "", "AAPL", Stock, Q(5), EUR(800)),
		NewHold(MustParse("2025-03-01"), "quarterly update", "VWCE", ETF, Q(12), EUR(1300)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	holdings := p.Holdings()
	if len(holdings) != 2 {
		t.Fatalf("len(Holdings) = %d, want 2", len(holdings))
	}
	// First-seen order, latest values.
	if holdings[0].Symbol != "VWCE" || !holdings[0].Value.Equal(EUR(1300)) {
		t.Errorf("Holdings[0] = %+v, want the updated VWCE line", holdings[0])
	}
	if !holdings[0].Shares.Equal(Q(12)) {
		t.Errorf("Holdings[0].Shares = %s, want 12", holdings[0].Shares)
	}
	if holdings[1].Symbol != "AAPL" {
		t.Errorf("Holdings[1].Symbol = %s, want AAPL", holdings[1].Symbol)
	}
}

func TestPlanContributions_LatestWins(t *testing.T) {
	p := NewPlan()
	err := p.Append(
		NewContribute(MustParse("2025-01-01"), "", "VWCE", EUR(500), Date{}, Date{}, true),
		NewContribute(MustParse("2025-06-01"), "raise", "VWCE", EUR(650), Date{}, Date{}, true),
		NewContribute(MustParse("2025-02-01"), "", "BTC", EUR(50), Date{}, Date{}, false),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	plans := p.Contributions()
	if len(plans) != 2 {
		t.Fatalf("len(Contributions) = %d, want 2", len(plans))
	}
	if !plans[0].Monthly.Equal(EUR(650)) {
		t.Errorf("Contributions[0].Monthly = %s, want %s", plans[0].Monthly, EUR(650))
	}
	if plans[1].Symbol != "BTC" || plans[1].Active {
		t.Errorf("Contributions[1] = %+v, want the inactive BTC plan", plans[1])
	}
}

func TestPlanOverrides(t *testing.T) {
	p := NewPlan()
	err := p.Append(
		NewExpect(MustParse("2025-01-01"), "", "VWCE", R(0.05)),
		NewExpect(MustParse("2025-02-01"), "analysis", "VWCE", R(0.064)),
		NewExpect(MustParse("2025-01-15"), "", "AAPL", R(-0.02)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	overrides := p.Overrides()
	if len(overrides) != 2 {
		t.Fatalf("len(Overrides) = %d, want 2", len(overrides))
	}
	if got := overrides["VWCE"]; !got.Equal(R(0.064)) {
		t.Errorf("Overrides[VWCE] = %s, want 0.064", got)
	}
	if got := overrides["AAPL"]; !got.Equal(R(-0.02)) {
		t.Errorf("Overrides[AAPL] = %s, want -0.02", got)
	}
}

func TestPlanIncome_LatestWins(t *testing.T) {
	p := NewPlan()
	if _, ok := p.Income(); ok {
		t.Fatal("Income() on an empty plan reported a scenario")
	}
	err := p.Append(
		NewIncome(MustParse("2025-01-01"), "", TaxScenarioInput{GrossSalary: EUR(50000)}),
		NewIncome(MustParse("2025-07-01"), "new job", TaxScenarioInput{GrossSalary: EUR(62000)}),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	scenario, ok := p.Income()
	if !ok {
		t.Fatal("Income() found no scenario")
	}
	if !scenario.GrossSalary.Equal(EUR(62000)) {
		t.Errorf("GrossSalary = %s, want %s", scenario.GrossSalary, EUR(62000))
	}
}

func TestPlanProject(t *testing.T) {
	p := NewPlan()
	err := p.Append(
		NewHold(MustParse("2025-01-10"), "", "VWCE", ETF, Q(10), EUR(1000)),
		NewContribute(MustParse("2025-01-10"), "", "VWCE", EUR(100), Date{}, Date{}, true),
		NewExpect(MustParse("2025-01-10"), "flat market", "VWCE", R(0)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	res, err := p.Project(Projector{Start: NewDate(2025, 1, 15)}, 1, Realistic)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if got, want := res.Summary.EndingValue, EUR(2200); !got.Equal(want) {
		t.Errorf("EndingValue = %s, want %s", got, want)
	}
	if got, want := res.Summary.TotalContributions, EUR(1200); !got.Equal(want) {
		t.Errorf("TotalContributions = %s, want %s", got, want)
	}
}
