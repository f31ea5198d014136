// File: rng.go
// Role: deterministic, independent RNG streams for Generate, grounded on the
// teacher's tsp.deriveSeed/deriveRNG SplitMix64 pattern so corpus generation
// never touches the global math/rand source and concurrent Generate calls
// over distinct (n, kind, p) combinations never race on shared RNG state.
package instance

import "math/rand"

const (
	streamMixed = iota
	streamPerturb
	streamShuffleF1
	streamShuffleF2
)

// deriveSeed mixes a parent seed and a stream identifier via a SplitMix64
// avalanche finalizer, producing decorrelated child seeds from one parent.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a parent
// seed and a stream identifier.
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// permRange returns a permutation of [0, n) generated deterministically by
// a Fisher-Yates shuffle of the identity sequence.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
