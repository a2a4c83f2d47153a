package renderer

import (
	"fmt"
	"strings"

	"github.com/SimonKnogler/finplan"
)

// SocialMarkdown renders the employee share of the social insurance
// branches estimated on a gross salary.
func SocialMarkdown(estimate *finplan.SocialContributionEstimate, gross finplan.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Social Insurance Contributions\n\n")
	fmt.Fprintf(&b, "Employee share on a gross salary of %s:\n\n", gross)
	fmt.Fprintln(&b, "| Branch | Contribution |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Pension | %s |\n", estimate.Pension)
	fmt.Fprintf(&b, "| Health | %s |\n", estimate.Health)
	fmt.Fprintf(&b, "| Unemployment | %s |\n", estimate.Unemployment)
	fmt.Fprintf(&b, "| Care | %s |\n", estimate.Care)
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", estimate.Total)
	if gross.IsPositive() {
		fmt.Fprintf(&b, "\nTotal burden: %s of gross.\n", estimate.Total.Over(gross).Percent())
	}
	return b.String()
}
