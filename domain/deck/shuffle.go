package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// pick returns an index in [0, n) read from the deck's random stream.
// Values outside the range are rejected and redrawn so every index is
// equally likely.
func (d *Deck) pick(n int) int {
	bound := big.NewInt(int64(n))
	v := new(big.Int)
	for {
		v.SetBytes(random.Bits(uint(bound.BitLen()), false, d.stream))
		if v.Cmp(bound) < 0 {
			return int(v.Int64())
		}
	}
}
