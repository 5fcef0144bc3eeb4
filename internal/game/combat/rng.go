package combat

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// SeededRNG returns a deterministic random source for the given seed.
// Non-cryptographic PRNG is intentional: the point is reproducible fights.
// #nosec G404
func SeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}
