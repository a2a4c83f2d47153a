package finplan

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// RiskFreeRate is the flat annual risk-free rate used for Sharpe ratios.
var RiskFreeRate = R(0.02)

// minMonthlyReturns is the smallest number of usable month-over-month
// returns accepted by AnalyzeReturns.
const minMonthlyReturns = 12

// ErrInsufficientData reports that a price series cannot support a
// meaningful return analysis, either because it is too short or because
// no comparable monthly history exists for the asset class.
var ErrInsufficientData = errors.New("insufficient historical data")

// PricePoint is a single month-close observation in a price series.
type PricePoint struct {
	Date  Date
	Close Money
}

// ReturnSummary describes the historical behaviour of one symbol.
type ReturnSummary struct {
	Symbol              string
	AverageAnnualReturn Rate
	Volatility          Rate // annualized standard deviation of returns
	SharpeRatio         Rate
	MaxDrawdown         Rate // zero or negative
	DataPoints          int
	Start               Date
	End                 Date
}

// AnalyzeReturns computes annualized return statistics for a symbol from a
// chronological series of month-close prices.
//
// Monthly simple returns are compounded into an annual figure, volatility is
// the annualized standard deviation of the monthly returns, the Sharpe ratio
// is measured against [RiskFreeRate], and the maximum drawdown is the worst
// decline from a running peak. A pair whose earlier close is not positive
// yields no usable return and is skipped; fewer than [minMonthlyReturns]
// usable returns is an [ErrInsufficientData] error.
//
// The series is read-only for the analyzer and must be strictly
// chronological with no duplicate dates.
func AnalyzeReturns(symbol string, typ AssetType, series []PricePoint) (*ReturnSummary, error) {
	switch typ {
	case Crypto, Cash:
		// No provider serves comparable monthly closes for these classes.
		return nil, fmt.Errorf("%s: no monthly history for %s assets: %w", symbol, typ, ErrInsufficientData)
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			return nil, fmt.Errorf("%s: price series must be strictly chronological, got %s after %s", symbol, series[i].Date, series[i-1].Date)
		}
	}

	var returns []decimal.Decimal
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Close
		if !prev.IsPositive() {
			continue
		}
		returns = append(returns, series[i].Close.Sub(prev).Over(prev).value)
	}
	if len(returns) < minMonthlyReturns {
		return nil, fmt.Errorf("%s: %d monthly returns, want at least %d: %w", symbol, len(returns), minMonthlyReturns, ErrInsufficientData)
	}

	one := decimal.NewFromInt(1)
	n := decimal.NewFromInt(int64(len(returns)))

	sum := decimal.Zero
	for _, r := range returns {
		sum = sum.Add(r)
	}
	mean := sum.Div(n)

	// (1+mean)^12 - 1, exponent is positive so PowInt32 cannot fail.
	compounded, _ := one.Add(mean).PowInt32(12)
	annual := compounded.Sub(one)

	// Population variance. Scaling by sqrt(12) turns the monthly standard
	// deviation into an annual one.
	varSum := decimal.Zero
	for _, r := range returns {
		d := r.Sub(mean)
		varSum = varSum.Add(d.Mul(d))
	}
	variance := varSum.Div(n)
	sigma := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64() * 12))

	sharpe := decimal.Zero
	if !sigma.IsZero() {
		sharpe = annual.Sub(RiskFreeRate.value).Div(sigma)
	}

	// Worst decline from a running peak, 0 for a series that never dips.
	peak := decimal.Zero
	maxDD := decimal.Zero
	for _, p := range series {
		c := p.Close.value
		if c.GreaterThan(peak) {
			peak = c
		}
		if peak.IsPositive() {
			if dd := c.Sub(peak).Div(peak); dd.LessThan(maxDD) {
				maxDD = dd
			}
		}
	}

	return &ReturnSummary{
		Symbol:              symbol,
		AverageAnnualReturn: Rate{value: annual},
		Volatility:          Rate{value: sigma},
		SharpeRatio:         Rate{value: sharpe},
		MaxDrawdown:         Rate{value: maxDD},
		DataPoints:          len(series),
		Start:               series[0].Date,
		End:                 series[len(series)-1].Date,
	}, nil
}
