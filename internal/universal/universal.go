// Package universal implements the linear-mod-prime universal hash family
// h(x) = (a*x + b) mod p used at both levels of the FKS construction.
//
// The family guarantees that for any fixed pair of distinct keys, a randomly
// drawn member collides with probability at most 1/p. Parameters are sampled
// once per table (primary level) or once per successful bucket build
// (secondary level) and never mutated afterwards.
package universal

import (
	"fmt"
	"math/bits"
	randv2 "math/rand/v2"
)

// Prime is the field modulus shared by every hash function in the process.
// 2^61-1 is the largest Mersenne prime below 2^64, large enough that
// distinct uint64 keys are almost never congruent mod Prime.
const Prime uint64 = 1<<61 - 1

// Params describes one member of the family: h(x) = (A*x + B) mod P.
//
// Invariants: 1 <= A < P and 0 <= B < P. A is never zero, which would
// degenerate the map to the constant B.
type Params struct {
	A uint64
	B uint64
	P uint64
}

// New samples a random family member using the supplied generator.
func New(rng *randv2.Rand) Params {
	return Params{
		A: 1 + rng.Uint64N(Prime-1),
		B: rng.Uint64N(Prime),
		P: Prime,
	}
}

// Identity returns the fixed member used for single-key tables, where any
// descriptor is collision-free and randomized search is unnecessary.
func Identity() Params {
	return Params{A: 1, B: 0, P: Prime}
}

// Hash evaluates h(x) = (A*x + B) mod P.
//
// The product A*x can reach 125 bits, so it is computed as a 128-bit value
// with bits.Mul64 and reduced with bits.Div64. The reduction is safe: the
// high word of the product is strictly less than A, and A < P.
func (p Params) Hash(x uint64) uint64 {
	hi, lo := bits.Mul64(p.A, x)
	_, r := bits.Div64(hi, lo, p.P)
	r += p.B
	if r >= p.P {
		r -= p.P
	}
	return r
}

// String renders the descriptor for diagnostics.
func (p Params) String() string {
	return fmt.Sprintf("(%d*x + %d) mod %d", p.A, p.B, p.P)
}
