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

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	symbol   string
	quantity string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "accumulate a quantity of an asset" }
func (*buyCmd) Usage() string {
	return `csim buy -s <symbol> -q <quantity>

  Adds the given quantity to the position for the symbol, creating the
  position if it does not exist yet. The quantity must be strictly
  positive.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Asset symbol (e.g. BTC)")
	f.StringVar(&c.quantity, "q", "", "Quantity to buy")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}

	catalog, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	asset, ok := catalog.Find(c.symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: symbol %q is not in the market, see 'csim market'\n", c.symbol)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodePortfolio(catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Add(asset, coinsim.Q(quantity)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := EncodePortfolio(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, _ := ledger.Position(asset.Symbol())
	fmt.Printf("Bought %s %s, now holding %s worth %s\n", quantity, asset.Symbol(), p.Quantity(), p.Value())
	return subcommands.ExitSuccess
}
