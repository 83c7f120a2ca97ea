// Package twister wraps a 64-bit Mersenne Twister engine behind a small
// ergonomic surface for the common non-cryptographic cases: uniform
// integers, uniform reals, and normal samples.
//
// The package makes a few assumptions:
//   - Cryptographic-quality randomness is unnecessary.
//   - Roughly 2.5kb of engine state per generator is acceptable.
//   - 64 bits of seed entropy is enough.
//
// If any of those fail, use crypto/rand or a purpose-built engine instead.
//
// A Generator is not safe for concurrent use; give each goroutine its own
// instance or serialize access externally.
package twister

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Generator owns exactly one engine. The zero value owns nothing; use New
// or NewSeeded, or call Reseed to install an engine.
type Generator struct {
	eng *mt19937
	rnd *rand.Rand
}

// New returns a Generator seeded from the system entropy source. The
// entropy read is the only fallible step; on failure no generator is
// constructed.
func New() (*Generator, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, fmt.Errorf("unable to seed generator: %w", err)
	}
	return NewSeeded(seed), nil
}

// NewSeeded returns a Generator with a deterministic starting state.
// Generators constructed with equal seeds produce equal sequences.
func NewSeeded(seed int64) *Generator {
	eng := new(mt19937)
	eng.Seed(seed)
	return &Generator{eng: eng, rnd: rand.New(eng)}
}

// UniformInt returns an integer uniformly distributed over [low, high],
// both bounds inclusive, with every value in the range equally likely.
// low <= high is the caller's responsibility; the result is meaningless
// otherwise.
func UniformInt[T constraints.Integer](g *Generator, low, high T) T {
	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		// The range covers every value of a 64-bit type.
		return T(g.eng.Uint64())
	}
	return low + T(g.uint64n(span))
}

// UniformReal returns a value uniformly distributed over the continuous
// interval [low, high). The distribution is uniform over real values, not
// over representable floats: results near high are no more likely than the
// more densely representable values near low.
func UniformReal[T constraints.Float](g *Generator, low, high T) T {
	return low + T(g.rnd.Float64())*(high-low)
}

// UniformProbability returns a value uniformly distributed over [0, 1).
func (g *Generator) UniformProbability() float64 {
	return g.rnd.Float64()
}

// NormalReal returns a sample from the normal distribution with the given
// mean and standard deviation. NormalReal(0, 1) samples the standard
// normal.
func (g *Generator) NormalReal(mean, sigma float64) float64 {
	return g.rnd.NormFloat64()*sigma + mean
}

// FillUniform overwrites every element of target with a value uniformly
// distributed over [low, high).
func (g *Generator) FillUniform(target []float64, low, high float64) {
	for i := range target {
		target[i] = low + g.rnd.Float64()*(high-low)
	}
}

// Reseed resets the engine so that the subsequent sequence is a
// deterministic function of seed. Reseeding a generator that has been
// moved from installs a fresh engine, making it usable again.
func (g *Generator) Reseed(seed int64) {
	if g.eng == nil {
		g.eng = new(mt19937)
		g.rnd = rand.New(g.eng)
	}
	g.eng.Seed(seed)
}

// Move transfers engine ownership to a new Generator and empties the
// receiver. The returned Generator continues the receiver's sequence
// exactly; the receiver owns nothing until it is reseeded or swapped with
// an owning instance.
func (g *Generator) Move() *Generator {
	moved := &Generator{eng: g.eng, rnd: g.rnd}
	g.eng = nil
	g.rnd = nil
	return moved
}

// Swap exchanges engines with other in place.
func (g *Generator) Swap(other *Generator) {
	g.eng, other.eng = other.eng, g.eng
	g.rnd, other.rnd = other.rnd, g.rnd
}

// Owns reports whether g currently owns an engine. A moved-from Generator
// owns nothing, and only Reseed and Swap are valid on it.
func (g *Generator) Owns() bool {
	return g.eng != nil
}

// uint64n returns a uniform value in [0, n), unbiased. Power-of-two spans
// reduce to a mask; everything else rejects the biased tail.
func (g *Generator) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return g.eng.Uint64() & (n - 1)
	}
	tail := (0 - n) % n // 2^64 mod n, the size of the biased region
	limit := ^uint64(0) - tail
	for {
		v := g.eng.Uint64()
		if v <= limit {
			return v % n
		}
	}
}
