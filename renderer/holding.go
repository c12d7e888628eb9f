package renderer

import (
	"fmt"
	"strings"

	"github.com/coinsim/coinsim"
)

// Holdings renders the current positions and the portfolio total.
func Holdings(l *coinsim.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	if l.Len() == 0 {
		fmt.Fprintln(&b, "The portfolio is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Name | Quantity | Price | Value |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for p := range l.Positions() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.Symbol(),
			p.Asset().Name(),
			p.Quantity(),
			p.Asset().Price(),
			p.Value(),
		)
	}
	fmt.Fprintf(&b, "\nTotal: **%s**\n", l.TotalValue())
	return b.String()
}
