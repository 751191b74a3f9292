// Package agents provides the duck entity: its needs, the decision engine
// that picks between idling, wandering and seeking water, and the motion
// step that keeps it inside the world.
package agents

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/duckpond/internal/clock"
	"github.com/talgya/duckpond/internal/entropy"
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/world"
)

// State is the current behavior mode. Exactly one is active at a time.
type State uint8

const (
	StateIdle      State = iota
	StateWander          // Walk along Direction
	StateSeekWater       // Walk toward Target until close enough to drink
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWander:
		return "wander"
	case StateSeekWater:
		return "seek-water"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Cause records why a decision was made.
type Cause uint8

const (
	CauseInitial    Cause = iota // First pick on Initialize
	CauseTimer                   // Decision timer expired
	CauseThirst                  // Forced by the thirst threshold
	CauseArrived                 // Reached water and drank
	CauseNoWater                 // Search found nothing, fell back to a normal pick
	CauseTargetLost              // Target left the registry mid-seek
)

func (c Cause) String() string {
	switch c {
	case CauseInitial:
		return "initial"
	case CauseTimer:
		return "timer"
	case CauseThirst:
		return "thirst"
	case CauseArrived:
		return "arrived"
	case CauseNoWater:
		return "no-water"
	case CauseTargetLost:
		return "target-lost"
	}
	return fmt.Sprintf("cause(%d)", uint8(c))
}

// Transition is one decision taken by an agent. From and To may be equal
// when a reselection keeps the same mode.
type Transition struct {
	AgentID uuid.UUID
	From    State
	To      State
	Cause   Cause
	Thirst  float64
}

// BoundsProvider reports the world rect; queried every tick so the host
// can resize the world at will.
type BoundsProvider interface {
	CurrentBounds() geom.Rect
}

// Resources is the read-only view of the resource registry.
type Resources interface {
	OfKind(kind world.Kind) []world.Resource
	Lookup(id uuid.UUID) (world.Resource, bool)
}

// DecisionTimer is the one-shot, rearmable timer driving reselection.
// clock.Countdown is the default implementation.
type DecisionTimer interface {
	Arm(wait float64)
	Restart()
	Stop()
	Armed() bool
	WaitTime() float64
	Advance(dt float64) bool
}

// Mover applies a velocity for dt seconds and returns the resolved position.
// Hosts with their own physics plug in here to handle obstacles.
type Mover interface {
	Move(pos, vel geom.Vec2, dt float64) geom.Vec2
}

// EulerMover integrates velocity without any collision handling.
type EulerMover struct{}

func (EulerMover) Move(pos, vel geom.Vec2, dt float64) geom.Vec2 {
	return pos.Add(vel.Scale(dt))
}

var (
	ErrNoBounds    = errors.New("agents: bounds provider is required")
	ErrNoResources = errors.New("agents: resource registry is required")
	ErrNoRandom    = errors.New("agents: random source is required")
)

// Deps are the collaborators an agent consumes. Bounds, Resources and
// Random are required; the rest fall back to defaults.
type Deps struct {
	Bounds    BoundsProvider
	Resources Resources
	Random    entropy.Source
	Timer     DecisionTimer // default: clock.NewCountdown()
	Mover     Mover         // default: EulerMover
	Presenter Presenter     // default: Discard
}

// Agent is a duck.
type Agent struct {
	ID   uuid.UUID
	Name string

	Position  geom.Vec2
	Velocity  geom.Vec2 // Derived each tick from State and Direction
	State     State
	Direction geom.Vec2 // Unit length while wandering
	Needs     Needs

	// Target is the water being sought. Set only while seeking and
	// re-resolved through the registry every tick.
	Target *uuid.UUID

	cfg       Config
	bounds    BoundsProvider
	resources Resources
	rng       entropy.Source
	timer     DecisionTimer
	mover     Mover
	presenter Presenter

	facingLeft  bool
	seekFailed  bool
	initialized bool
	pending     []Transition
}

// New creates a duck at pos with full needs. Call Initialize (or just Tick)
// to make its first decision.
func New(id uuid.UUID, name string, pos geom.Vec2, cfg Config, deps Deps) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if deps.Bounds == nil {
		return nil, ErrNoBounds
	}
	if deps.Resources == nil {
		return nil, ErrNoResources
	}
	if deps.Random == nil {
		return nil, ErrNoRandom
	}
	if deps.Timer == nil {
		deps.Timer = clock.NewCountdown()
	}
	if deps.Mover == nil {
		deps.Mover = EulerMover{}
	}
	if deps.Presenter == nil {
		deps.Presenter = Discard
	}

	return &Agent{
		ID:        id,
		Name:      name,
		Position:  pos,
		State:     StateIdle,
		Needs:     NewNeeds(cfg),
		cfg:       cfg,
		bounds:    deps.Bounds,
		resources: deps.Resources,
		rng:       deps.Random,
		timer:     deps.Timer,
		mover:     deps.Mover,
		presenter: deps.Presenter,
	}, nil
}

// Config returns the agent's tuning.
func (a *Agent) Config() Config {
	return a.cfg
}

// Timer exposes the decision timer for inspection.
func (a *Agent) Timer() DecisionTimer {
	return a.timer
}

// View is a copyable snapshot of an agent.
type View struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	State      string     `json:"state"`
	Position   geom.Vec2  `json:"position"`
	Velocity   geom.Vec2  `json:"velocity"`
	Thirst     float64    `json:"thirst"`
	Hunger     float64    `json:"hunger"`
	Target     *uuid.UUID `json:"target,omitempty"`
	FacingLeft bool       `json:"facing_left"`
}

// View returns a snapshot of the agent.
func (a *Agent) View() View {
	v := View{
		ID:         a.ID,
		Name:       a.Name,
		State:      a.State.String(),
		Position:   a.Position,
		Velocity:   a.Velocity,
		Thirst:     a.Needs.Thirst,
		Hunger:     a.Needs.Hunger,
		FacingLeft: a.facingLeft,
	}
	if a.Target != nil {
		t := *a.Target
		v.Target = &t
	}
	return v
}
