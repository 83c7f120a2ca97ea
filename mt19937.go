package twister

import "math/rand"

const (
	mtN         = 312
	mtM         = 156
	mtMatrixA   = 0xB5026F5AA96619E9
	mtUpperMask = 0xFFFFFFFF80000000
	mtLowerMask = 0x000000007FFFFFFF
	mtSeedMult  = 6364136223846793005

	maxInt63 = (1 << 63) - 1
)

// mt19937 is the 64-bit Mersenne Twister engine. The state array is the
// ~2.5kb blob the package doc warns about, so Generator keeps exactly one
// behind a pointer and never copies it.
type mt19937 struct {
	state [mtN]uint64
	index int
}

// NewSource returns a seeded MT19937-64 engine as a rand.Source64, for
// callers that want to plug the raw engine into math/rand themselves.
func NewSource(seed int64) rand.Source64 {
	eng := new(mt19937)
	eng.Seed(seed)
	return eng
}

func (e *mt19937) Seed(seed int64) {
	e.state[0] = uint64(seed)
	for i := 1; i < mtN; i++ {
		e.state[i] = mtSeedMult*(e.state[i-1]^(e.state[i-1]>>62)) + uint64(i)
	}
	e.index = mtN
}

func (e *mt19937) Uint64() uint64 {
	if e.index >= mtN {
		e.twist()
	}
	x := e.state[e.index]
	e.index++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71D67FFFEDA60000
	x ^= (x << 37) & 0xFFF7EEE000000000
	x ^= x >> 43
	return x
}

func (e *mt19937) Int63() int64 {
	return int64(e.Uint64() & maxInt63)
}

// twist regenerates the state array in place. Indexing is modular: by the
// time state[(i+mtM)%mtN] wraps around, those slots already hold the new
// generation, which is what the recurrence requires.
func (e *mt19937) twist() {
	for i := 0; i < mtN; i++ {
		x := (e.state[i] & mtUpperMask) | (e.state[(i+1)%mtN] & mtLowerMask)
		y := e.state[(i+mtM)%mtN] ^ (x >> 1)
		if x&1 != 0 {
			y ^= mtMatrixA
		}
		e.state[i] = y
	}
	e.index = 0
}
