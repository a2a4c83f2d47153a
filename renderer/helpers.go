package renderer

import (
	"bytes"
	"io"

	"github.com/SimonKnogler/finplan"
)

// ConditionalBlock lets you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// orDash renders a zero date as "-" in tables.
func orDash(d finplan.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// amountOrDash renders a zero amount as "-" in tables. A zero Money can
// carry no currency, in which case its String would be empty.
func amountOrDash(m finplan.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}
