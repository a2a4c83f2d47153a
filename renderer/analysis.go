package renderer

import (
	"fmt"
	"strings"

	"github.com/SimonKnogler/finplan"
)

// AnalysisMarkdown renders historical return statistics, one row per symbol.
func AnalysisMarkdown(summaries []*finplan.ReturnSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Historical Returns\n\n")
	fmt.Fprintln(&b, "| Symbol | Annual Return | Volatility | Sharpe | Max Drawdown | Samples | Period |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|:---|")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f | %s | %d | %s to %s |\n",
			s.Symbol,
			s.AverageAnnualReturn.Percent().SignedString(),
			s.Volatility.Percent(),
			s.SharpeRatio.Float64(),
			s.MaxDrawdown.Percent().SignedString(),
			s.DataPoints,
			s.Start, s.End,
		)
	}
	return b.String()
}
