package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/SimonKnogler/finplan"
)

// ProjectionMarkdown renders a projection as a summary table, one milestone
// row per completed year, and the final allocation.
func ProjectionMarkdown(result *finplan.ProjectionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Projection: %d months, %s scenario\n\n", result.Years*12, result.Scenario)

	if len(result.Points) == 0 {
		fmt.Fprintln(&b, "Nothing to project: the horizon is empty.")
		return b.String()
	}

	s := result.Summary
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Starting Value | %s |\n", s.StartingValue)
	fmt.Fprintf(&b, "| Ending Value | %s |\n", s.EndingValue)
	fmt.Fprintf(&b, "| Total Contributions | %s |\n", s.TotalContributions.SignedString())
	fmt.Fprintf(&b, "| Total Gain | %s |\n", s.TotalGain.SignedString())
	fmt.Fprintf(&b, "| Average Annual Return | %s |\n", s.AverageAnnualReturn.Percent().SignedString())

	fmt.Fprintf(&b, "\n## Milestones\n\n")
	fmt.Fprintln(&b, "| Year | Date | Net Worth | Invested | Cash | Contributed |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|")
	for i := 11; i < len(result.Points); i += 12 {
		p := result.Points[i]
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			(i+1)/12, p.Date, p.NetWorth,
			amountOrDash(p.InvestmentValue),
			amountOrDash(p.CashValue),
			amountOrDash(p.CumulativeContributions),
		)
	}

	last := result.Points[len(result.Points)-1]
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(last.Breakdown) == 0 || !last.PortfolioValue.IsPositive() {
			return false
		}
		fmt.Fprintf(w, "\n## Final Allocation\n\n")
		fmt.Fprintln(w, "| Symbol | Value | Share |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for _, sv := range last.Breakdown {
			fmt.Fprintf(w, "| %s | %s | %s |\n",
				sv.Symbol, amountOrDash(sv.Value), sv.Value.Over(last.PortfolioValue).Percent())
		}
		return true
	})

	return b.String()
}
