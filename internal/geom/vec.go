// Package geom provides the planar vector and rectangle types used by the
// duck simulation. Distance and bounds math go through paulmach/orb.
package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Vec2 is a position, velocity, or direction in world units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the zero vector.
var Zero = Vec2{}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromPoint converts an orb point.
func FromPoint(p orb.Point) Vec2 {
	return Vec2{X: p.X(), Y: p.Y()}
}

// Point converts to an orb point.
func (v Vec2) Point() orb.Point {
	return orb.Point{v.X, v.Y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return planar.Distance(orb.Point{}, v.Point())
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return planar.Distance(v.Point(), o.Point())
}

// Normalized returns the unit vector in the direction of v.
// ok is false when v has no usable length (zero, NaN, or Inf); the
// returned vector is then Zero and must not be used as a direction.
func (v Vec2) Normalized() (unit Vec2, ok bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}
