package randutil

import (
	cryptorand "crypto/rand"
	"fmt"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites (notably the simulator's per-game sources) get
// reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewCrypto returns a *rand.Rand backed by a ChaCha8 generator seeded from
// the operating system's CSPRNG. Shoe shuffles default to this source: the
// simulation burns millions of draws, so the generator must be uniform and
// the v2 IntN bounding avoids modulo bias.
func NewCrypto() *rand.Rand {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// The OS entropy source failing is not a condition we can limp past.
		panic(fmt.Sprintf("randutil: reading crypto seed: %v", err))
	}
	return rand.New(rand.NewChaCha8(seed))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
