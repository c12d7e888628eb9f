package coinsim

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// ReportingCurrency is the currency every price and valuation is quoted in.
// Multi-currency conversion is out of scope for the simulator.
const ReportingCurrency = "USD"

// AssetSpec configures the bootstrap of a single asset: its identity and
// the range its initial price is drawn from.
type AssetSpec struct {
	Symbol   string
	Name     string
	MinPrice float64
	MaxPrice float64
}

// CatalogConfig is the full bootstrap configuration of a catalog.
type CatalogConfig []AssetSpec

// DefaultCatalogConfig returns the reference set of tradable assets.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		{Symbol: "BTC", Name: "Bitcoin", MinPrice: 20000, MaxPrice: 70000},
		{Symbol: "ETH", Name: "Ethereum", MinPrice: 1000, MaxPrice: 4000},
		{Symbol: "SOL", Name: "Solana", MinPrice: 20, MaxPrice: 250},
		{Symbol: "ADA", Name: "Cardano", MinPrice: 0.2, MaxPrice: 3},
		{Symbol: "DOT", Name: "Polkadot", MinPrice: 3, MaxPrice: 50},
		{Symbol: "LINK", Name: "Chainlink", MinPrice: 5, MaxPrice: 50},
		{Symbol: "MATIC", Name: "Polygon", MinPrice: 0.3, MaxPrice: 3},
		{Symbol: "AVAX", Name: "Avalanche", MinPrice: 9, MaxPrice: 150},
	}
}

// Catalog holds the fixed set of tradable assets, in insertion order.
// Assets are created once by Generate and never removed; only their price
// changes afterwards.
type Catalog struct {
	assets []*Asset
	index  map[string]*Asset
}

// NewCatalog returns a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		assets: make([]*Asset, 0),
		index:  make(map[string]*Asset),
	}
}

// Generate builds a catalog from the given configuration. Each asset's
// initial price is drawn uniformly from its price range, half-open
// [MinPrice, MaxPrice), using the injected random source, so a seeded
// source makes the whole bootstrap deterministic.
func Generate(cfg CatalogConfig, rng *rand.Rand) (*Catalog, error) {
	c := NewCatalog()
	for _, spec := range cfg {
		if spec.MinPrice <= 0 || spec.MaxPrice < spec.MinPrice {
			return nil, fmt.Errorf("invalid price range for %q: [%v, %v]", spec.Symbol, spec.MinPrice, spec.MaxPrice)
		}
		price := spec.MinPrice + rng.Float64()*(spec.MaxPrice-spec.MinPrice)
		asset, err := NewAsset(spec.Symbol, spec.Name, M(price, ReportingCurrency))
		if err != nil {
			return nil, err
		}
		if err := c.add(asset); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// add appends an asset, rejecting duplicate symbols.
func (c *Catalog) add(a *Asset) error {
	if c.Has(a.Symbol()) {
		return fmt.Errorf("symbol %q is already defined", a.Symbol())
	}
	c.assets = append(c.assets, a)
	c.index[a.Symbol()] = a
	return nil
}

// Has reports whether a symbol exists in the catalog.
func (c *Catalog) Has(symbol string) bool {
	_, ok := c.index[NormalizeSymbol(symbol)]
	return ok
}

// Find returns the asset with the given symbol. The lookup is
// case-normalized. A miss is not an error, callers decide how to react.
func (c *Catalog) Find(symbol string) (*Asset, bool) {
	a, ok := c.index[NormalizeSymbol(symbol)]
	return a, ok
}

// Assets iterates over the catalog's assets in insertion order.
func (c *Catalog) Assets() iter.Seq[*Asset] {
	return func(yield func(*Asset) bool) {
		for _, a := range c.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of assets in the catalog.
func (c *Catalog) Len() int { return len(c.assets) }
