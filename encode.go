package coinsim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to persist the simulator state in JSONL files,
// human-readable and git-friendly: one record per line, no envelope.
//
// The holdings snapshot embeds the full asset (symbol, name, price) next to
// the quantity. The embedded name and price are informational only: decoding
// re-resolves every symbol against the live catalog and trusts nothing else,
// so a snapshot can never resurrect a stale price.

// jposition is the snapshot record for one position.
type jposition struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity Quantity        `json:"quantity"`
}

// EncodeSnapshot writes the ledger as JSONL, one position per line, in
// insertion order.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	for p := range l.Positions() {
		var jw jsonObjectWriter
		jw.Append("symbol", p.Symbol())
		jw.Append("name", p.Asset().Name())
		jw.Append("price", p.Asset().Price().Decimal())
		jw.Append("quantity", p.Quantity())
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode position %q: %w", p.Symbol(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSnapshot reads a JSONL snapshot and rebuilds a fresh ledger against
// the given catalog. Each record's symbol is re-resolved; records whose
// symbol is unknown to the catalog are logged and skipped, the same
// "ignore unknown" policy as catalog lookups. Resolved records go through
// the regular Add merge rule.
func DecodeSnapshot(r io.Reader, c *Catalog) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jp jposition
		if err := json.Unmarshal(line, &jp); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}

		asset, ok := c.Find(jp.Symbol)
		if !ok {
			log.Printf("skipping snapshot line %d: symbol %q is not in the catalog", i, jp.Symbol)
			continue
		}
		if err := ledger.Add(asset, jp.Quantity); err != nil {
			return nil, fmt.Errorf("invalid snapshot line %d for %q: %w", i, jp.Symbol, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// jasset is the persisted record for one catalog asset.
type jasset struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// EncodeCatalog writes the catalog as JSONL, one asset per line, so that
// simulated prices survive across runs.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	for a := range c.Assets() {
		var jw jsonObjectWriter
		jw.Append("symbol", a.Symbol())
		jw.Append("name", a.Name())
		jw.Append("price", a.Price().Decimal())
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode asset %q: %w", a.Symbol(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeCatalog reads a JSONL catalog file back into a catalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var ja jasset
		if err := json.Unmarshal(line, &ja); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}
		asset, err := NewAsset(ja.Symbol, ja.Name, M(ja.Price, ReportingCurrency))
		if err != nil {
			return nil, fmt.Errorf("invalid asset on line %d: %w", i, err)
		}
		if err := c.add(asset); err != nil {
			return nil, fmt.Errorf("invalid asset on line %d: %w", i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// jspec is the bootstrap configuration record for one asset.
type jspec struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// DecodeCatalogConfig reads a JSONL bootstrap configuration, one asset spec
// per line: {"symbol":"BTC","name":"Bitcoin","min":20000,"max":70000}.
func DecodeCatalogConfig(r io.Reader) (CatalogConfig, error) {
	var cfg CatalogConfig
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jspec
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}
		cfg = append(cfg, AssetSpec{Symbol: js.Symbol, Name: js.Name, MinPrice: js.Min, MaxPrice: js.Max})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
