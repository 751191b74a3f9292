// Duck spawning: places a flock at random positions inside the world,
// each with its own timer and random source.
package agents

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/duckpond/internal/clock"
	"github.com/talgya/duckpond/internal/entropy"
	"github.com/talgya/duckpond/internal/geom"
)

// Spawner creates ducks for the simulation.
type Spawner struct {
	rng       *rand.Rand
	seed      int64
	spawned   int
	cfg       Config
	bounds    BoundsProvider
	resources Resources
	presenter Presenter
}

// NewSpawner creates a spawner. The flock is reproducible for a given
// non-zero seed; seed 0 spawns an unseeded flock whose ducks draw from
// crypto/rand.
func NewSpawner(seed int64, cfg Config, bounds BoundsProvider, resources Resources) *Spawner {
	base := seed + 300
	if seed == 0 {
		base = entropy.CryptoSeed()
	}
	return &Spawner{
		rng:       rand.New(rand.NewSource(base)),
		seed:      seed,
		cfg:       cfg,
		bounds:    bounds,
		resources: resources,
	}
}

// WithPresenter sets the presenter every spawned duck reports to.
func (s *Spawner) WithPresenter(p Presenter) *Spawner {
	s.presenter = p
	return s
}

// SpawnFlock creates count ducks.
func (s *Spawner) SpawnFlock(count int) ([]*Agent, error) {
	flock := make([]*Agent, 0, count)
	for i := 0; i < count; i++ {
		a, err := s.spawnOne()
		if err != nil {
			return nil, fmt.Errorf("spawn duck %d: %w", i, err)
		}
		flock = append(flock, a)
	}
	return flock, nil
}

func (s *Spawner) spawnOne() (*Agent, error) {
	n := s.spawned
	s.spawned++

	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return nil, fmt.Errorf("duck id: %w", err)
	}

	inner := s.bounds.CurrentBounds().Inset(s.cfg.BoundsMargin)
	pos := geom.V(
		inner.Min[0]+s.rng.Float64()*(inner.Max[0]-inner.Min[0]),
		inner.Min[1]+s.rng.Float64()*(inner.Max[1]-inner.Min[1]),
	)

	return New(id, s.generateName(n), pos, s.cfg, Deps{
		Bounds:    s.bounds,
		Resources: s.resources,
		Random:    s.sourceFor(n),
		Timer:     clock.NewCountdown(),
		Presenter: s.presenter,
	})
}

func (s *Spawner) sourceFor(n int) entropy.Source {
	if s.seed == 0 {
		return entropy.Crypto{}
	}
	return entropy.NewSeeded(s.seed + int64(n)*7919 + 1)
}

var duckNames = []string{
	"Puddles", "Quackers", "Waddles", "Dabble", "Mallard", "Pip",
	"Drake", "Paddle", "Bill", "Ripple", "Feather", "Nibbles",
	"Splash", "Muddle", "Teal", "Wigeon", "Pintail", "Scaup",
}

func (s *Spawner) generateName(n int) string {
	name := duckNames[s.rng.Intn(len(duckNames))]
	return fmt.Sprintf("%s-%d", name, n+1)
}
