package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/SimonKnogler/finplan"
)

// ContributionsMarkdown renders the monthly savings plans with their
// activity window. Active plans are marked with an X.
func ContributionsMarkdown(plans []finplan.ContributionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Contribution Plans\n\n")
	if len(plans) == 0 {
		fmt.Fprintln(&b, "No contribution plans.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Monthly | Active | From | Until |")
	fmt.Fprintln(&b, "|:---|---:|:---:|:---|:---|")
	for _, p := range plans {
		active := " "
		if p.Active {
			active = "X"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.Symbol, p.Monthly, active, orDash(p.Start), orDash(p.End))
	}

	// The total line only makes sense when every active plan pays in the
	// same currency.
	ConditionalBlock(&b, func(w io.Writer) bool {
		var total finplan.Money
		seen := false
		for _, p := range plans {
			if !p.Active {
				continue
			}
			if seen && p.Monthly.Currency() != total.Currency() {
				return false
			}
			if !seen {
				total = p.Monthly
				seen = true
				continue
			}
			total = total.Add(p.Monthly)
		}
		if !seen {
			return false
		}
		fmt.Fprintf(w, "| **Total** | **%s** | | | |\n", total)
		return true
	})

	return b.String()
}
