package coinsim

import "math/rand/v2"

// maxFluctuation bounds the relative price change applied per Perturb call.
const maxFluctuation = 0.05

// Perturb applies one round of simulated market movement to every asset in
// the catalog. Each price moves by a relative factor drawn uniformly from
// [-5%, +5%], then is clamped to the floor. The mutation is in place;
// positions referencing these assets see the new prices immediately.
//
// The random source is injected so tests and reproducible runs can seed it.
func (c *Catalog) Perturb(rng *rand.Rand) {
	for _, a := range c.assets {
		change := (rng.Float64() - 0.5) * 2 * maxFluctuation
		a.setPrice(a.Price().Add(a.Price().Mul(Q(change))))
	}
}
