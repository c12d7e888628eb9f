package coinsim

// AssetAllocation is one line of the allocation breakdown: a position's
// value expressed as a percentage of the whole portfolio.
type AssetAllocation struct {
	Symbol  string
	Value   Money
	Percent Percent
}

// Allocation computes the allocation breakdown of the portfolio, one entry
// per position in insertion order. An empty portfolio, or one whose total
// value is zero, yields an empty slice rather than a division by zero.
func (l *Ledger) Allocation() []AssetAllocation {
	total := l.TotalValue()
	if total.IsZero() {
		return nil
	}
	breakdown := make([]AssetAllocation, 0, len(l.positions))
	for _, p := range l.positions {
		value := p.Value()
		breakdown = append(breakdown, AssetAllocation{
			Symbol:  p.Symbol(),
			Value:   value,
			Percent: value.PercentOf(total),
		})
	}
	return breakdown
}

// TopHolding returns the position with the highest value. When two
// positions have exactly the same value the lexicographically smaller
// symbol wins, so the result is deterministic. The boolean is false on an
// empty ledger: there is no sentinel "no holding" position.
func (l *Ledger) TopHolding() (Position, bool) {
	if len(l.positions) == 0 {
		return Position{}, false
	}
	top := l.positions[0]
	for _, p := range l.positions[1:] {
		v, best := p.Value(), top.Value()
		if v.GreaterThan(best) || (v.Equal(best) && p.Symbol() < top.Symbol()) {
			top = p
		}
	}
	return top, true
}
