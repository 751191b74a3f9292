package agents

import (
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/world"
)

// reflect keeps the duck inside bounds shrunk by the margin. Crossing an
// edge clamps the position and flips that axis of Direction; any clamp
// restarts the decision timer so an imminent expiry cannot undo the turn.
func (a *Agent) reflect(bounds geom.Rect) bool {
	inner := bounds.Inset(a.cfg.BoundsMargin)
	pos := a.Position
	hit := false

	if pos.X < inner.Min[0] {
		pos.X = inner.Min[0]
		a.Direction.X = -a.Direction.X
		hit = true
	} else if pos.X > inner.Max[0] {
		pos.X = inner.Max[0]
		a.Direction.X = -a.Direction.X
		hit = true
	}

	if pos.Y < inner.Min[1] {
		pos.Y = inner.Min[1]
		a.Direction.Y = -a.Direction.Y
		hit = true
	} else if pos.Y > inner.Max[1] {
		pos.Y = inner.Max[1]
		a.Direction.Y = -a.Direction.Y
		hit = true
	}

	if hit {
		a.Position = pos
		a.timer.Restart()
	}
	return hit
}

// stepSeek walks toward the target and drinks on arrival.
func (a *Agent) stepSeek(dt float64) {
	target, ok := a.resolveTarget()
	if !ok {
		a.seekWater(CauseTargetLost)
		if a.State != StateSeekWater {
			a.Velocity = geom.Zero
			return
		}
		if target, ok = a.resolveTarget(); !ok {
			a.Velocity = geom.Zero
			return
		}
	}

	delta := target.Position.Sub(a.Position)
	if heading, ok := delta.Normalized(); ok {
		a.Velocity = heading.Scale(a.cfg.MoveSpeed)
		// Never step past the water.
		if dist := delta.Length(); dt > 0 && a.cfg.MoveSpeed*dt > dist {
			a.Velocity = heading.Scale(dist / dt)
		}
		a.Position = a.mover.Move(a.Position, a.Velocity, dt)
	} else {
		a.Velocity = geom.Zero
	}

	if a.Position.DistanceTo(target.Position) < a.cfg.ArrivalRadius {
		a.Needs.Quench()
		a.pickNewState(CauseArrived)
	}
}

func (a *Agent) resolveTarget() (world.Resource, bool) {
	if a.Target == nil {
		return world.Resource{}, false
	}
	return a.resources.Lookup(*a.Target)
}
