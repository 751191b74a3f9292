// Simulation ties together the flock and the water registry and runs
// them each tick.
package engine

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/talgya/duckpond/internal/agents"
	"github.com/talgya/duckpond/internal/world"
)

// maxPendingEvents caps undrained events; the oldest are dropped first.
const maxPendingEvents = 4096

// Event is one duck decision, as journaled.
type Event struct {
	Tick    uint64  `json:"tick" db:"tick"`
	AgentID string  `json:"agent_id" db:"agent_id"`
	Agent   string  `json:"agent" db:"agent"`
	From    string  `json:"from" db:"from_state"`
	To      string  `json:"to" db:"to_state"`
	Cause   string  `json:"cause" db:"cause"`
	Thirst  float64 `json:"thirst" db:"thirst"`
}

// Stats tracks aggregate flock statistics.
type Stats struct {
	Ducks     int     `json:"ducks"`
	Idle      int     `json:"idle"`
	Wandering int     `json:"wandering"`
	Seeking   int     `json:"seeking"`
	AvgThirst float64 `json:"avg_thirst"`
	AvgHunger float64 `json:"avg_hunger"`
	Drinks    int     `json:"drinks"` // Cumulative arrivals at water
	Dropped   int     `json:"dropped_events"`
}

// Simulation holds the flock and serializes every mutation of it, so
// ticks and outside readers never race.
type Simulation struct {
	mu sync.Mutex

	flock    []*agents.Agent
	index    map[uuid.UUID]*agents.Agent
	water    *world.Registry
	events   []Event
	lastTick uint64
	stats    Stats
}

// NewSimulation creates a Simulation and makes each duck's first decision.
func NewSimulation(flock []*agents.Agent, water *world.Registry) *Simulation {
	s := &Simulation{
		index: make(map[uuid.UUID]*agents.Agent, len(flock)),
		water: water,
	}
	for _, a := range flock {
		s.add(a)
	}
	s.updateStats()
	return s
}

// AddDuck brings a new duck into the simulation.
func (s *Simulation) AddDuck(a *agents.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(a)
	s.updateStats()
}

func (s *Simulation) add(a *agents.Agent) {
	s.flock = append(s.flock, a)
	s.index[a.ID] = a
	s.record(a, a.Initialize())
}

// Water returns the water registry the flock reads from.
func (s *Simulation) Water() *world.Registry {
	return s.water
}

// TickFrame advances every duck by dt seconds.
func (s *Simulation) TickFrame(tick uint64, dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastTick = tick
	for _, a := range s.flock {
		s.record(a, a.Tick(dt))
	}
	s.updateStats()
}

func (s *Simulation) record(a *agents.Agent, ts []agents.Transition) {
	for _, tr := range ts {
		if tr.Cause == agents.CauseArrived {
			s.stats.Drinks++
		}
		s.events = append(s.events, Event{
			Tick:    s.lastTick,
			AgentID: tr.AgentID.String(),
			Agent:   a.Name,
			From:    tr.From.String(),
			To:      tr.To.String(),
			Cause:   tr.Cause.String(),
			Thirst:  tr.Thirst,
		})
	}
	s.trim()
}

func (s *Simulation) trim() {
	if over := len(s.events) - maxPendingEvents; over > 0 {
		s.events = append(s.events[:0], s.events[over:]...)
		s.stats.Dropped += over
		slog.Warn("event buffer full, dropped oldest", "dropped", over)
	}
}

func (s *Simulation) updateStats() {
	st := Stats{Drinks: s.stats.Drinks, Dropped: s.stats.Dropped, Ducks: len(s.flock)}
	for _, a := range s.flock {
		switch a.State {
		case agents.StateIdle:
			st.Idle++
		case agents.StateWander:
			st.Wandering++
		case agents.StateSeekWater:
			st.Seeking++
		}
		st.AvgThirst += a.Needs.Thirst
		st.AvgHunger += a.Needs.Hunger
	}
	if st.Ducks > 0 {
		st.AvgThirst /= float64(st.Ducks)
		st.AvgHunger /= float64(st.Ducks)
	}
	s.stats = st
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTick
}

// Stats returns the statistics as of the last tick.
func (s *Simulation) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Snapshot returns a view of every duck.
func (s *Simulation) Snapshot() []agents.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]agents.View, 0, len(s.flock))
	for _, a := range s.flock {
		out = append(out, a.View())
	}
	return out
}

// Duck returns a view of one duck.
func (s *Simulation) Duck(id uuid.UUID) (agents.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.index[id]
	if !ok {
		return agents.View{}, false
	}
	return a.View(), true
}

// RequeueEvents puts drained events back ahead of any recorded since, so a
// failed save can be retried. The buffer cap still applies.
func (s *Simulation) RequeueEvents(events []Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(append([]Event(nil), events...), s.events...)
	s.trim()
}

// DrainEvents returns and clears the events recorded since the last drain.
func (s *Simulation) DrainEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.events
	s.events = nil
	return out
}
