package coinsim

// Position is a held quantity of a specific asset. The asset is a live
// reference into the catalog, so the position's value follows price
// changes without any re-resolution.
//
// A Position only exists inside a Ledger while its quantity is strictly
// positive.
type Position struct {
	asset    *Asset
	quantity Quantity
}

func (p Position) Asset() *Asset      { return p.asset }
func (p Position) Symbol() string     { return p.asset.Symbol() }
func (p Position) Quantity() Quantity { return p.quantity }

// Value is the position's market value, always derived, never stored.
func (p Position) Value() Money {
	return p.asset.Price().Mul(p.quantity)
}
