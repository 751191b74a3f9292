package geom

import "github.com/paulmach/orb"

// Rect is an axis-aligned rectangle given by its origin and size,
// matching what a viewport reports.
type Rect struct {
	Origin Vec2 `json:"origin"`
	Size   Vec2 `json:"size"`
}

// NewRect builds a rect from origin (x, y) and size (w, h).
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: V(x, y), Size: V(w, h)}
}

// Bound returns the rect as an orb bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: r.Origin.Point(), Max: r.Origin.Add(r.Size).Point()}
}

// Center returns the middle of the rect.
func (r Rect) Center() Vec2 {
	return FromPoint(r.Bound().Center())
}

// Contains reports whether p lies inside the rect, edges included.
func (r Rect) Contains(p Vec2) bool {
	return r.Bound().Contains(p.Point())
}

// Inset shrinks the rect by margin on every edge. An axis narrower than
// twice the margin collapses to its center line so Min never exceeds Max.
func (r Rect) Inset(margin float64) orb.Bound {
	b := r.Bound().Pad(-margin)
	c := r.Bound().Center()
	if b.Min[0] > b.Max[0] {
		b.Min[0], b.Max[0] = c[0], c[0]
	}
	if b.Min[1] > b.Max[1] {
		b.Min[1], b.Max[1] = c[1], c[1]
	}
	return b
}
