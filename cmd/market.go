package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coinsim/coinsim/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the asset catalog with current prices" }
func (*marketCmd) Usage() string {
	return `csim market

  Displays every tradable asset and its current simulated price.
`
}

func (*marketCmd) SetFlags(f *flag.FlagSet) {}

func (*marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Market(catalog))
	return subcommands.ExitSuccess
}
