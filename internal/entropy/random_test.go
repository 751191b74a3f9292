package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsDeterministic(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestCryptoInRange(t *testing.T) {
	var c Crypto
	for i := 0; i < 100; i++ {
		v := c.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestCryptoSeedVaries(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		v := CryptoSeed()
		assert.GreaterOrEqual(t, v, int64(0))
		seen[v] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 3, s.Drawn())

	assert.Equal(t, 0.0, NewSequence().Float64())
}

func TestRange(t *testing.T) {
	assert.Equal(t, 1.0, Range(NewSequence(0), 1, 3))
	assert.Equal(t, 2.0, Range(NewSequence(0.5), 1, 3))
	assert.InDelta(t, 1.25, Range(NewSequence(0.5), 0.5, 2.0), 1e-12)
}
