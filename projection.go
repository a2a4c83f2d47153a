package finplan

// SymbolValue is a single holding's value at one projection point.
type SymbolValue struct {
	Symbol string `json:"symbol"`
	Value  Money  `json:"value"`
}

// ProjectionPoint is the state of the simulated portfolio at the end of one
// month. MonthIndex is 1-based: the first projected month is 1.
type ProjectionPoint struct {
	MonthIndex              int           `json:"monthIndex"`
	Date                    Date          `json:"date"`
	NetWorth                Money         `json:"netWorth"`
	PortfolioValue          Money         `json:"portfolioValue"`
	CashValue               Money         `json:"cashValue"`
	InvestmentValue         Money         `json:"investmentValue"`
	CumulativeContributions Money         `json:"cumulativeContributions"`
	NetCashFlow             Money         `json:"netCashFlow"` // stays zero until outflows are modelled
	Breakdown               []SymbolValue `json:"breakdown"`
}

// ProjectionSummary condenses a whole projection into five figures.
type ProjectionSummary struct {
	StartingValue      Money `json:"startingValue"`
	EndingValue        Money `json:"endingValue"`
	TotalGain          Money `json:"totalGain"` // market growth net of contributions
	TotalContributions Money `json:"totalContributions"`
	// AverageAnnualReturn is the compound annual growth rate of the net
	// worth, contributions included.
	AverageAnnualReturn Rate `json:"averageAnnualReturn"`
}

// ProjectionResult is the full output of one simulation run.
type ProjectionResult struct {
	Scenario Scenario          `json:"scenario"`
	Years    int               `json:"years"`
	Start    Date              `json:"start"`
	Points   []ProjectionPoint `json:"points"`
	Summary  ProjectionSummary `json:"summary"`
}
