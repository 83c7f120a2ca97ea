package twister

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// NewSeed draws a seed from the system entropy source.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := crypto_rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("unable to read system entropy: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// SeedString derives a stable seed from a label, so that independent
// components can keep their own deterministic streams without coordinating
// seed integers.
func SeedString(label string) int64 {
	return int64(xxhash.Sum64String(label))
}
