// Package entropy provides the injectable random sources used by agent
// decisions. Every agent owns its own source so runs are reproducible
// from a seed and agents never share generator state.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Range returns a uniform value in [lo, hi) drawn from src.
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Seeded is a deterministic source backed by math/rand.
// It also implements io.Reader so it can feed uuid generation.
type Seeded struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded creates a deterministic source for the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewSource(seed))}
}

// Float64 returns a random float64 in [0, 1).
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (s *Seeded) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

// Read fills p with pseudo-random bytes.
func (s *Seeded) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Read(p)
}

// Crypto draws from crypto/rand. Ducks get one when the run is unseeded.
type Crypto struct{}

// Float64 returns a random float64 in [0, 1).
func (Crypto) Float64() float64 {
	return cryptoRandFloat()
}

// CryptoSeed returns a non-negative seed drawn from crypto/rand.
func CryptoSeed() int64 {
	return int64(cryptoRandFloat() * (1 << 53))
}

// cryptoRandFloat generates a random float64 using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Handy for pinning decision outcomes in tests and replays.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a source that yields values in order.
// An empty sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Drawn returns how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}
