// Package coinsim provides the types and functions to track a simulated
// cryptocurrency portfolio. It is designed to be local-first and
// deterministic, so that every run can be reproduced from a seed.
//
// The core functionalities include:
//   - Asset Catalog: The fixed list of tradable assets, each with a
//     symbol, a display name and a mutable current price.
//   - Market Simulation: A bounded random perturbation applied to catalog
//     prices to simulate market movement, floor-clamped so that a price
//     can never reach zero.
//   - Holdings Ledger: The portfolio itself, an ordered collection of
//     positions that merge on buy and disappear when sold out.
//   - Analytics: Valuation, allocation percentages and top-holding
//     queries derived from the ledger's current state.
//   - Data Persistence: Encoding and decoding of the ledger and catalog
//     to and from human-readable JSONL snapshots.
//
// This package serves as the foundational logic for the `csim`
// command-line tool; it performs no I/O of its own beyond the reader and
// writer contracts of its codecs.
package coinsim
