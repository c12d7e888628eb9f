package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coinsim/coinsim/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current positions and the portfolio total" }
func (*holdingCmd) Usage() string {
	return `csim holding

  Displays every position with its quantity, current price and value,
  and the total portfolio value.
`
}

func (*holdingCmd) SetFlags(f *flag.FlagSet) {}

func (*holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Holdings(ledger))
	return subcommands.ExitSuccess
}
