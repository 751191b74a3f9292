package agents

import (
	"github.com/google/uuid"

	"github.com/talgya/duckpond/internal/geom"
)

// Animation is the key of the sprite animation to play.
type Animation string

const (
	AnimIdle   Animation = "idle"
	AnimWander Animation = "wander"
)

// AnimationFor maps a state to its animation. Seeking water walks.
func AnimationFor(s State) Animation {
	if s == StateIdle {
		return AnimIdle
	}
	return AnimWander
}

// Frame is what the presentation layer receives once per tick.
type Frame struct {
	AgentID    uuid.UUID
	State      State
	Animation  Animation
	FacingLeft bool
	Position   geom.Vec2
	Velocity   geom.Vec2
}

// Presenter observes frames. It never feeds back into the duck.
type Presenter interface {
	Present(Frame)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Frame)

func (f PresenterFunc) Present(fr Frame) { f(fr) }

// Discard drops every frame.
var Discard Presenter = PresenterFunc(func(Frame) {})

// present updates facing and hands the frame out. Facing only changes
// with horizontal motion, so a duck that stops keeps looking the same way.
func (a *Agent) present() {
	if a.Velocity.X != 0 {
		a.facingLeft = a.Velocity.X < 0
	}
	a.presenter.Present(Frame{
		AgentID:    a.ID,
		State:      a.State,
		Animation:  AnimationFor(a.State),
		FacingLeft: a.facingLeft,
		Position:   a.Position,
		Velocity:   a.Velocity,
	})
}
