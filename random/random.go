// Package random builds the pseudo-random sources used for synthesized data.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a source seeded with seed, or with a fresh random seed when seed is 0.
// The returned source is not safe for concurrent use.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed))
}
