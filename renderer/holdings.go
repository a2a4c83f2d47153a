package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/SimonKnogler/finplan"
)

// HoldingsMarkdown renders the current portfolio snapshot, one line per
// symbol.
func HoldingsMarkdown(holdings []finplan.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Type | Shares | Value |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, h := range holdings {
		shares := "-"
		if !h.Shares.IsZero() {
			shares = h.Shares.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", h.Symbol, h.Type, shares, h.Value)
	}

	// The total line only makes sense when every holding is valued in the
	// same currency.
	ConditionalBlock(&b, func(w io.Writer) bool {
		total := holdings[0].Value
		for _, h := range holdings[1:] {
			if h.Value.Currency() != total.Currency() {
				return false
			}
			total = total.Add(h.Value)
		}
		fmt.Fprintf(w, "| **Total** | | | **%s** |\n", total)
		return true
	})

	return b.String()
}
