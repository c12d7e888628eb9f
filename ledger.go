package coinsim

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidQuantity is returned by Add when the quantity is zero or
// negative. Accepting such a call would let a position violate the
// strictly-positive invariant, so it is rejected rather than ignored.
var ErrInvalidQuantity = errors.New("quantity must be strictly positive")

// Ledger represents the portfolio: the ordered collection of current
// positions, unique by asset symbol.
//
// Insertion order is preserved for display purposes but carries no other
// meaning. The ledger is single-owner and performs no locking; a
// concurrent host must serialize calls to Add and Remove itself.
type Ledger struct {
	positions []Position
	index     map[string]int // position index by symbol
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		positions: make([]Position, 0),
		index:     make(map[string]int),
	}
}

// Add accumulates quantity of the given asset. If a position for the
// asset's symbol already exists its quantity increases, otherwise a new
// position is appended. A zero or negative quantity is rejected with
// ErrInvalidQuantity.
func (l *Ledger) Add(asset *Asset, quantity Quantity) error {
	if asset == nil {
		return errors.New("asset must not be nil")
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("cannot add %s of %s: %w", quantity, asset.Symbol(), ErrInvalidQuantity)
	}
	if i, ok := l.index[asset.Symbol()]; ok {
		l.positions[i].quantity = l.positions[i].quantity.Add(quantity)
		return nil
	}
	l.positions = append(l.positions, Position{asset: asset, quantity: quantity})
	l.index[asset.Symbol()] = len(l.positions) - 1
	return nil
}

// Remove decrements the position for symbol by the given quantity. An
// absent symbol is a no-op, not an error. When the remaining quantity
// reaches zero or below the position is deleted outright: removing more
// than held empties the position silently, there is no negative-balance
// tracking.
//
// A zero or negative quantity is a no-op: subtracting it would grow the
// position, an acquisition that must go through Add and its validation.
func (l *Ledger) Remove(symbol string, quantity Quantity) {
	if !quantity.IsPositive() {
		return
	}
	symbol = NormalizeSymbol(symbol)
	i, ok := l.index[symbol]
	if !ok {
		return
	}
	remaining := l.positions[i].quantity.Sub(quantity)
	if remaining.IsPositive() {
		l.positions[i].quantity = remaining
		return
	}
	l.positions = append(l.positions[:i], l.positions[i+1:]...)
	delete(l.index, symbol)
	// reindex the positions that shifted left.
	for j := i; j < len(l.positions); j++ {
		l.index[l.positions[j].Symbol()] = j
	}
}

// Position returns the position held for symbol, if any.
func (l *Ledger) Position(symbol string) (Position, bool) {
	i, ok := l.index[NormalizeSymbol(symbol)]
	if !ok {
		return Position{}, false
	}
	return l.positions[i], true
}

// Positions iterates over current positions in insertion order.
func (l *Ledger) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range l.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of positions currently held.
func (l *Ledger) Len() int { return len(l.positions) }

// TotalValue is the exact sum of all position values. An empty ledger is
// worth exactly zero, it is not an error.
func (l *Ledger) TotalValue() Money {
	total := M(0, ReportingCurrency)
	for _, p := range l.positions {
		total = total.Add(p.Value())
	}
	return total
}
