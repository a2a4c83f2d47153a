package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/SimonKnogler/finplan"
)

// TaxMarkdown renders one year's tax scenario: the income, the taxes levied
// on it, and the resulting net. Surcharges that are zero are left out.
func TaxMarkdown(res *finplan.TaxResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# German Tax Estimate\n\n")

	fmt.Fprintln(&b, "| Income | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Gross Income | %s |\n", res.TotalGrossIncome)
	fmt.Fprintf(&b, "| Deductions | %s |\n", amountOrDash(res.Breakdown.Deductions.Neg()))
	fmt.Fprintf(&b, "| Taxable Income | %s |\n", res.TotalTaxableIncome)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| Tax | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Income Tax | %s |\n", res.IncomeTax)
	if !res.SolidarityTax.IsZero() {
		fmt.Fprintf(&b, "| Solidarity Surcharge | %s |\n", res.SolidarityTax)
	}
	if !res.ChurchTax.IsZero() {
		fmt.Fprintf(&b, "| Church Tax | %s |\n", res.ChurchTax)
	}
	if !res.CapitalGainsTax.IsZero() {
		fmt.Fprintf(&b, "| Capital Gains Tax | %s |\n", res.CapitalGainsTax)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", res.TotalTax)

	ConditionalBlock(&b, func(w io.Writer) bool {
		soc := res.Breakdown.SocialContributions
		if soc.Total.IsZero() {
			return false
		}
		fmt.Fprintf(w, "\n## Social Contributions\n\n")
		fmt.Fprintln(w, "| Branch | Employee Share |")
		fmt.Fprintln(w, "|:---|---:|")
		fmt.Fprintf(w, "| Pension | %s |\n", soc.Pension)
		fmt.Fprintf(w, "| Health | %s |\n", soc.Health)
		fmt.Fprintf(w, "| Unemployment | %s |\n", soc.Unemployment)
		fmt.Fprintf(w, "| Care | %s |\n", soc.Care)
		fmt.Fprintf(w, "| **Total** | **%s** |\n", soc.Total)
		return true
	})

	fmt.Fprintf(&b, "\nNet income: **%s** (effective %s, marginal %s)\n",
		res.NetIncome, res.EffectiveTaxRate.Percent(), res.MarginalTaxRate.Percent())
	return b.String()
}
