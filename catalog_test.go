package coinsim

import (
	"math/rand/v2"
	"testing"
)

func TestGenerate(t *testing.T) {
	cfg := DefaultCatalogConfig()
	rng := rand.New(rand.NewPCG(42, 0))

	c, err := Generate(cfg, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := c.Len(), len(cfg); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	// Prices must fall inside their configured range, order must be preserved.
	i := 0
	for a := range c.Assets() {
		spec := cfg[i]
		if a.Symbol() != NormalizeSymbol(spec.Symbol) {
			t.Errorf("asset %d: symbol %q, want %q", i, a.Symbol(), spec.Symbol)
		}
		min := M(spec.MinPrice, ReportingCurrency)
		max := M(spec.MaxPrice, ReportingCurrency)
		if a.Price().LessThan(min) || a.Price().GreaterThan(max) {
			t.Errorf("asset %q: price %s outside [%s, %s]", a.Symbol(), a.Price(), min, max)
		}
		i++
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultCatalogConfig()

	a, err := Generate(cfg, rand.New(rand.NewPCG(7, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(cfg, rand.New(rand.NewPCG(7, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for asset := range a.Assets() {
		other := mustFind(t, b, asset.Symbol())
		if !asset.Price().Equal(other.Price()) {
			t.Errorf("asset %q: price %s != %s for the same seed", asset.Symbol(), asset.Price(), other.Price())
		}
	}
}

func TestGenerate_RejectsInvalidRange(t *testing.T) {
	testCases := []struct {
		name string
		spec AssetSpec
	}{
		{"zero min", AssetSpec{Symbol: "BTC", Name: "Bitcoin", MinPrice: 0, MaxPrice: 10}},
		{"negative min", AssetSpec{Symbol: "BTC", Name: "Bitcoin", MinPrice: -1, MaxPrice: 10}},
		{"max below min", AssetSpec{Symbol: "BTC", Name: "Bitcoin", MinPrice: 10, MaxPrice: 5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Generate(CatalogConfig{tc.spec}, rand.New(rand.NewPCG(1, 0))); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestCatalog_Find(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("case-normalized lookup", func(t *testing.T) {
		a, ok := c.Find("btc")
		if !ok {
			t.Fatal("Find(btc) not found, want BTC")
		}
		if a.Symbol() != "BTC" {
			t.Errorf("Find(btc) = %q, want BTC", a.Symbol())
		}
	})

	t.Run("miss is not fatal", func(t *testing.T) {
		if _, ok := c.Find("DOGE"); ok {
			t.Error("Find(DOGE) found an asset, want a miss")
		}
	})
}

func TestCatalog_RejectsDuplicateSymbol(t *testing.T) {
	c := newTestCatalog(t)
	dup, err := NewAsset("BTC", "Bitcoin Again", M(1, ReportingCurrency))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.add(dup); err == nil {
		t.Error("expected an error adding a duplicate symbol, got nil")
	}
}
