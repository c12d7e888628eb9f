package cmd

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/coinsim/coinsim/renderer"
	"github.com/google/subcommands"
)

// tickCmd holds the flags for the 'tick' subcommand.
type tickCmd struct {
	rounds int
	seed   uint64
}

func (*tickCmd) Name() string     { return "tick" }
func (*tickCmd) Synopsis() string { return "apply simulated market movement to all prices" }
func (*tickCmd) Usage() string {
	return `csim tick [-n <rounds>] [-seed <n>]

  Applies one or more rounds of simulated market movement: every price
  changes by a bounded random factor and can never drop below the floor.
  The updated market is written back to the market file.
`
}

func (c *tickCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.rounds, "n", 1, "Number of fluctuation rounds to apply")
	f.Uint64Var(&c.seed, "seed", 0, "Seed for the random draws (0 means time-based)")
}

func (c *tickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rounds < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1")
		return subcommands.ExitUsageError
	}

	catalog, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := 0; i < c.rounds; i++ {
		catalog.Perturb(rng)
	}

	if err := EncodeMarket(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Market(catalog))
	return subcommands.ExitSuccess
}
