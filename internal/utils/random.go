package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// pcgStream is the fixed PCG stream selector; the seed alone picks the sequence
const pcgStream = 0x9E3779B97F4A7C15

// RandomSource is the randomness the wheel engine draws from.
// *rand.Rand satisfies it; tests inject seeded or scripted sources.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// lockedSource serializes access to a non-thread-safe *rand.Rand
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// NewSeededSource returns a goroutine-safe deterministic source for the given seed
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, pcgStream))} //nolint:gosec // Game logic randomness, not security critical
}

// NewRandomSource returns a goroutine-safe source seeded from crypto/rand
func NewRandomSource() RandomSource {
	return NewSeededSource(SecureSeed())
}

// SecureSeed returns a seed read from crypto/rand, falling back to the clock
func SecureSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
