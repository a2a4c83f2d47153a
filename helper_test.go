package finplan

import (
	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// monthlySeries builds a month-close series starting at first, multiplying
// the close by growth every month.
func monthlySeries(first Date, start float64, growth float64, months int) []PricePoint {
	series := make([]PricePoint, 0, months)
	price := decimal.NewFromFloat(start)
	g := decimal.NewFromFloat(growth)
	day := first
	for i := 0; i < months; i++ {
		series = append(series, PricePoint{Date: day, Close: M(price, "EUR")})
		price = price.Mul(g)
		day = day.AddMonth(1)
	}
	return series
}
