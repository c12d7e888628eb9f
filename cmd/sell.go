package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coinsim/coinsim"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	symbol   string
	quantity string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "reduce or close a position" }
func (*sellCmd) Usage() string {
	return `csim sell -s <symbol> -q <quantity>

  Removes the given quantity from the position for the symbol. Selling
  everything held, or more, deletes the position. Selling a symbol that
  is not held does nothing.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Asset symbol (e.g. BTC)")
	f.StringVar(&c.quantity, "q", "", "Quantity to sell")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	if !quantity.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: quantity must be strictly positive, got %s\n", quantity)
		return subcommands.ExitUsageError
	}

	catalog, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodePortfolio(catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	_, wasHeld := ledger.Position(c.symbol)
	ledger.Remove(c.symbol, coinsim.Q(quantity))

	if err := EncodePortfolio(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbol := coinsim.NormalizeSymbol(c.symbol)
	switch p, held := ledger.Position(c.symbol); {
	case held:
		fmt.Printf("Sold %s %s, still holding %s worth %s\n", quantity, p.Symbol(), p.Quantity(), p.Value())
	case wasHeld:
		fmt.Printf("Sold %s %s, position closed\n", quantity, symbol)
	default:
		fmt.Printf("Nothing to sell, %s is not held\n", symbol)
	}
	return subcommands.ExitSuccess
}
