package coinsim

import "testing"

// newTestCatalog builds a catalog with fixed, known prices so tests do not
// depend on random bootstrap.
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	for _, spec := range []struct {
		symbol, name string
		price        float64
	}{
		{"BTC", "Bitcoin", 50000},
		{"ETH", "Ethereum", 2000},
		{"SOL", "Solana", 100},
	} {
		a, err := NewAsset(spec.symbol, spec.name, M(spec.price, ReportingCurrency))
		if err != nil {
			t.Fatalf("cannot create asset %q: %v", spec.symbol, err)
		}
		if err := c.add(a); err != nil {
			t.Fatalf("cannot add asset %q: %v", spec.symbol, err)
		}
	}
	return c
}

// mustFind returns the asset or fails the test.
func mustFind(t *testing.T, c *Catalog, symbol string) *Asset {
	t.Helper()
	a, ok := c.Find(symbol)
	if !ok {
		t.Fatalf("symbol %q not found in test catalog", symbol)
	}
	return a
}
