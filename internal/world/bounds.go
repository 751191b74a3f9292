package world

import (
	"sync"

	"github.com/talgya/duckpond/internal/geom"
)

// Viewport is a bounds provider whose rect the host may resize at any time,
// e.g. when the window changes size.
type Viewport struct {
	mu   sync.RWMutex
	rect geom.Rect
}

// NewViewport creates a viewport of w×h anchored at the origin.
func NewViewport(w, h float64) *Viewport {
	return &Viewport{rect: geom.NewRect(0, 0, w, h)}
}

// CurrentBounds returns the current world rect.
func (v *Viewport) CurrentBounds() geom.Rect {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rect
}

// Resize replaces the world rect.
func (v *Viewport) Resize(r geom.Rect) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rect = r
}
