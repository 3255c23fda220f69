package bingo

import (
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// NewRand returns the random source for board generation. With an empty seed
// every run is different. Any other seed string is hashed into a ChaCha8 key,
// so the same seed and input always produce the same boards.
func NewRand(seed string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(blake2b.Sum256([]byte(seed))))
}
