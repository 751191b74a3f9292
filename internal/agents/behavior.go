// Duck behavior: a timer-driven state selector with a thirst override.
//
// Every tick needs decay first. A thirsty duck that is idling or wandering
// is forced into seeking water at once; otherwise the decision timer's
// expiry triggers a free reselection. Seeking ends only by reaching water
// or by finding none, so the duck can never freeze on an unreachable goal.
package agents

import (
	"log/slog"

	"github.com/talgya/duckpond/internal/entropy"
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/world"
)

// maxDirectionDraws bounds resampling of a degenerate wander direction.
const maxDirectionDraws = 8

// fallbackDirection is used when every direction draw is degenerate.
var fallbackDirection = geom.V(1, 0)

// Initialize makes the first decision, the same free pick a timer expiry
// makes. Calling it again is a no-op.
func (a *Agent) Initialize() []Transition {
	a.pending = nil
	a.initialize()
	return a.pending
}

func (a *Agent) initialize() {
	if a.initialized {
		return
	}
	a.initialized = true
	a.pickNewState(CauseInitial)
}

// Tick advances the duck by dt seconds: needs decay, decision, motion,
// then presentation. It returns the decisions taken during the tick.
func (a *Agent) Tick(dt float64) []Transition {
	a.pending = nil
	a.initialize()
	if !(dt > 0) {
		dt = 0
	}

	a.Needs.Decay(dt)
	if !a.Needs.Thirsty() {
		a.seekFailed = false
	}

	if a.State != StateSeekWater {
		switch {
		case a.Needs.Thirsty() && (!a.seekFailed || a.waterExists()):
			a.seekWater(CauseThirst)
		case a.timer.Advance(dt):
			a.decide(CauseTimer)
		}
	}

	bounds := a.bounds.CurrentBounds()
	switch a.State {
	case StateWander:
		a.Velocity = a.Direction.Scale(a.cfg.MoveSpeed)
		a.Position = a.mover.Move(a.Position, a.Velocity, dt)
		a.reflect(bounds)
	case StateSeekWater:
		a.stepSeek(dt)
	default:
		a.Velocity = geom.Zero
	}

	a.present()
	return a.pending
}

// decide is the timer-driven decision: seek water when thirsty, otherwise
// a free pick.
func (a *Agent) decide(cause Cause) {
	if a.Needs.Thirsty() {
		a.seekWater(cause)
		return
	}
	a.pickNewState(cause)
}

// pickNewState makes a free choice between Idle and Wander and rearms the
// decision timer. The boundary is exclusive toward Idle: a draw of exactly
// IdleCutoff wanders.
func (a *Agent) pickNewState(cause Cause) {
	var (
		next State
		wait float64
	)
	if a.rng.Float64() > a.cfg.IdleCutoff {
		next = StateIdle
		wait = entropy.Range(a.rng, a.cfg.IdleWaitMin, a.cfg.IdleWaitMax)
	} else {
		next = StateWander
		a.Direction = a.randomDirection()
		wait = entropy.Range(a.rng, a.cfg.WanderWaitMin, a.cfg.WanderWaitMax)
	}

	a.Target = nil
	a.timer.Arm(wait)
	a.setState(next, cause)
}

// randomDirection draws each axis uniformly in [-1, 1) and normalizes.
// A zero-length draw is resampled, never normalized into NaN.
func (a *Agent) randomDirection() geom.Vec2 {
	for i := 0; i < maxDirectionDraws; i++ {
		x := a.rng.Float64()*2 - 1
		y := a.rng.Float64()*2 - 1
		if dir, ok := geom.V(x, y).Normalized(); ok {
			return dir
		}
	}
	return fallbackDirection
}

// seekWater starts a seeking episode toward the nearest water, stopping
// the decision timer. With no water anywhere it falls back to a free pick
// and suppresses the thirst override until water appears or the timer
// expires. A lost target keeps its cause through the fallback.
func (a *Agent) seekWater(cause Cause) {
	a.Target = nil

	nearest, ok := world.FindNearest(a.Position, a.resources.OfKind(world.KindWater))
	if !ok {
		slog.Debug("no water found, falling back", "agent", a.Name, "thirst", a.Needs.Thirst)
		a.seekFailed = true
		fallback := CauseNoWater
		if cause == CauseTargetLost {
			fallback = CauseTargetLost
		}
		a.pickNewState(fallback)
		return
	}

	a.seekFailed = false
	a.timer.Stop()
	id := nearest.ID
	a.Target = &id
	a.setState(StateSeekWater, cause)
}

// waterExists is the per-tick check made while the override is suppressed.
func (a *Agent) waterExists() bool {
	return len(a.resources.OfKind(world.KindWater)) > 0
}

func (a *Agent) setState(next State, cause Cause) {
	from := a.State
	a.State = next
	a.pending = append(a.pending, Transition{
		AgentID: a.ID,
		From:    from,
		To:      next,
		Cause:   cause,
		Thirst:  a.Needs.Thirst,
	})
	slog.Debug("duck decided",
		"agent", a.Name,
		"from", from,
		"to", next,
		"cause", cause,
	)
}
