package coinsim

import (
	"fmt"
	"regexp"
	"strings"
)

// floorPrice is the lowest price an asset can ever have, in major units of
// its currency. Repeated negative fluctuations converge to this floor
// instead of zero, which would break valuation math.
const floorPrice = 0.0001

// symbolRegex checks for the format of a crypto ticker symbol: 2 to 10
// uppercase alphanumeric characters, starting with a letter (e.g. "BTC").
var symbolRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

// NormalizeSymbol returns the canonical form of a symbol: trimmed and
// uppercased. All lookups and comparisons go through this form.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSymbol checks that a string is a validly formatted symbol in its
// canonical form. It returns nil if valid, or a descriptive error if invalid.
func ValidateSymbol(symbol string) error {
	if len(symbol) < 2 || len(symbol) > 10 {
		return fmt.Errorf("invalid length: must be 2 to 10 characters, got %d", len(symbol))
	}
	if !symbolRegex.MatchString(symbol) {
		return fmt.Errorf("invalid format: must be uppercase alphanumeric starting with a letter, got %q", symbol)
	}
	return nil
}

// Asset represents a tradable instrument: a unique symbol, a display name,
// and the current price. The price is the only mutable part, and only the
// catalog's perturbation and import paths mutate it.
//
// Positions hold a reference to their Asset, so a price change is
// immediately visible in every holding's value.
type Asset struct {
	symbol string
	name   string
	price  Money
}

// NewAsset creates an asset after validating its symbol and price.
// The symbol is normalized, the price must be strictly positive.
func NewAsset(symbol, name string, price Money) (*Asset, error) {
	symbol = NormalizeSymbol(symbol)
	if err := ValidateSymbol(symbol); err != nil {
		return nil, fmt.Errorf("invalid symbol: %w", err)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("invalid price for %s: must be strictly positive, got %s", symbol, price)
	}
	return &Asset{symbol: symbol, name: name, price: price}, nil
}

func (a *Asset) Symbol() string { return a.symbol }
func (a *Asset) Name() string   { return a.name }
func (a *Asset) Price() Money   { return a.price }

// setPrice updates the current price, clamped to the floor.
func (a *Asset) setPrice(p Money) {
	floor := M(floorPrice, a.price.Currency())
	if p.LessThan(floor) {
		p = floor
	}
	a.price = p
}
