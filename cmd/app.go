// Package cmd implements the CLI application to drive the portfolio
// simulator.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/coinsim/coinsim"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "market")
	c.Register(&marketCmd{}, "market")
	c.Register(&tickCmd{}, "market")
	c.Register(&importCmd{}, "market")

	c.Register(&buyCmd{}, "portfolio")
	c.Register(&sellCmd{}, "portfolio")
	c.Register(&holdingCmd{}, "portfolio")
	c.Register(&allocationCmd{}, "portfolio")
	c.Register(&fmtCmd{}, "portfolio")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var marketFile = flag.String("market-file", envOr("CSIM_MARKET_FILE", "market.jsonl"), "Path to the market file (JSONL format)")
var snapshotFile = flag.String("snapshot-file", envOr("CSIM_SNAPSHOT_FILE", "portfolio.jsonl"), "Path to the portfolio snapshot file (JSONL format)")

// dotenvOnce loads .env before the first environment lookup. Flag defaults
// are computed during package initialization, before main runs, so the load
// cannot happen there.
var dotenvOnce sync.Once

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	dotenvOnce.Do(func() { _ = godotenv.Load() })
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// DecodeMarket loads the catalog from the market file.
func DecodeMarket() (*coinsim.Catalog, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("market file %q does not exist, run 'csim init' first", *marketFile)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open market file %q: %w", *marketFile, err)
	}
	defer f.Close()
	return coinsim.DecodeCatalog(f)
}

// EncodeMarket writes the catalog back to the market file.
func EncodeMarket(c *coinsim.Catalog) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return fmt.Errorf("cannot write market file %q: %w", *marketFile, err)
	}
	defer f.Close()
	return coinsim.EncodeCatalog(f, c)
}

// DecodePortfolio loads the ledger from the snapshot file, resolving
// positions against the given catalog. A missing snapshot is an empty
// portfolio, not an error.
func DecodePortfolio(c *coinsim.Catalog) (*coinsim.Ledger, error) {
	f, err := os.Open(*snapshotFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot does not exist, starting with an empty portfolio instead")
		return coinsim.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return coinsim.DecodeSnapshot(f, c)
}

// EncodePortfolio writes the ledger to the snapshot file.
func EncodePortfolio(l *coinsim.Ledger) error {
	f, err := os.Create(*snapshotFile)
	if err != nil {
		return fmt.Errorf("cannot write snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return coinsim.EncodeSnapshot(f, l)
}

// printMarkdown renders markdown to the terminal. If styling fails the raw
// markdown is still readable, so it falls back to plain output.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
