package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coinsim/coinsim"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "set market prices from an exported quote document" }
func (*importCmd) Usage() string {
	return `csim import -f <file>

  Reads a JSON quote document (the export format of the common listing
  APIs) and applies its prices to the market. Symbols the market does
  not know are skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the quote document")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}

	catalog, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quote document: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	updated, err := coinsim.ImportPrices(file, catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeMarket(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %d prices from %s\n", updated, c.file)
	return subcommands.ExitSuccess
}
