package world

import (
	"math"

	"github.com/talgya/duckpond/internal/geom"
)

// FindNearest returns the resource closest to pos by Euclidean distance.
// Ties keep the first one encountered. ok is false when the set is empty.
// A linear scan is fine for the tens of resources a scene holds.
func FindNearest(pos geom.Vec2, resources []Resource) (nearest Resource, ok bool) {
	best := math.Inf(1)
	for _, res := range resources {
		d := pos.DistanceTo(res.Position)
		if d < best {
			best = d
			nearest = res
			ok = true
		}
	}
	return nearest, ok
}
