package renderer

import (
	"fmt"
	"strings"

	"github.com/coinsim/coinsim"
)

// Allocation renders the allocation breakdown and the top holding.
func Allocation(l *coinsim.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Allocation\n\n")

	breakdown := l.Allocation()
	if len(breakdown) == 0 {
		fmt.Fprintln(&b, "The portfolio is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Value | Allocation |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, a := range breakdown {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Symbol, a.Value, a.Percent)
	}

	if top, ok := l.TopHolding(); ok {
		fmt.Fprintf(&b, "\nTop holding: **%s** at %s\n", top.Symbol(), top.Value())
	}
	return b.String()
}
