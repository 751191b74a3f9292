package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	u, ok := V(3, 4).Normalized()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
	assert.InDelta(t, 1.0, u.Length(), 1e-12)

	u, ok = Zero.Normalized()
	assert.False(t, ok)
	assert.Equal(t, Zero, u)

	_, ok = V(math.NaN(), 1).Normalized()
	assert.False(t, ok)
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, V(1, 1).DistanceTo(V(4, 5)), 1e-12)
	assert.Equal(t, 0.0, V(2, 2).DistanceTo(V(2, 2)))
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 800, 600)
	b := r.Inset(16)
	assert.Equal(t, 16.0, b.Min[0])
	assert.Equal(t, 16.0, b.Min[1])
	assert.Equal(t, 784.0, b.Max[0])
	assert.Equal(t, 584.0, b.Max[1])

	// Offset origin shifts the inset rect with it.
	b = NewRect(100, 50, 200, 200).Inset(16)
	assert.Equal(t, 116.0, b.Min[0])
	assert.Equal(t, 284.0, b.Max[0])
}

func TestRectInsetCollapses(t *testing.T) {
	b := NewRect(0, 0, 20, 600).Inset(16)
	assert.Equal(t, 10.0, b.Min[0])
	assert.Equal(t, 10.0, b.Max[0])
	assert.Equal(t, 16.0, b.Min[1])
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(0, 0, 800, 600)
	assert.True(t, r.Contains(V(0, 0)))
	assert.True(t, r.Contains(V(800, 600)))
	assert.False(t, r.Contains(V(801, 10)))
	assert.Equal(t, V(400, 300), r.Center())
}
