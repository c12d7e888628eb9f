package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coinsim/coinsim/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the allocation breakdown and top holding" }
func (*allocationCmd) Usage() string {
	return `csim allocation

  Displays each position's value as a percentage of the total portfolio
  value, and the top holding.
`
}

func (*allocationCmd) SetFlags(f *flag.FlagSet) {}

func (*allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Allocation(ledger))
	return subcommands.ExitSuccess
}
