package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the snapshot file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `csim fmt

  Reads the snapshot, resolves every position against the current market,
  and writes it back in canonical JSONL form. Records for symbols unknown
  to the market are dropped, duplicated records are merged.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := EncodePortfolio(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Rewrote %s with %d positions\n", *snapshotFile, ledger.Len())
	return subcommands.ExitSuccess
}
