// Package renderer turns the simulator's read models into markdown,
// leaving terminal styling to the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/coinsim/coinsim"
)

// Market renders the asset catalog with current prices.
func Market(c *coinsim.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Price |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for a := range c.Assets() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Symbol(), a.Name(), a.Price())
	}
	return b.String()
}
