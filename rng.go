// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package glass

import (
	"math/rand/v2"
)

// rng is a small deterministic generator: a 32-bit state advanced by a
// fixed additive constant, with each output derived from two
// xorshift/multiply mixing rounds. The same seed always yields the same
// stream. An rng must not be shared between concurrent generations.
type rng struct {
	state uint32
}

func newRNG(seed string) *rng {
	return &rng{state: hashSeed(seed)}
}

// newRandomRNG returns a generator with a non-deterministic initial state,
// for callers that did not supply a seed.
func newRandomRNG() *rng {
	return &rng{state: rand.Uint32()}
}

// hashSeed folds the seed string into 32 bits with the classic 31*h+c
// rolling hash over the string's runes, wrapped in signed arithmetic and
// reinterpreted unsigned.
func hashSeed(seed string) uint32 {
	var h int32
	for _, c := range seed {
		h = 31*h + int32(c)
	}
	return uint32(h)
}

// next advances the state and returns the next value in [0, 1).
func (r *rng) next() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / (1 << 32)
}
