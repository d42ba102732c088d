package movesearch

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// RNG is the source of randomness for stochastic searches. *frand.RNG and
// *math/rand.Rand both satisfy it.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a ChaCha-based generator. A zero seed draws a fresh seed
// from the system; any other seed gives a reproducible stream.
func NewRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}
