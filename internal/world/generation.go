// Pond placement using layered simplex noise.
// Samples a grid over the world rect, scores each cell by noise "wetness",
// and keeps the wettest cells that are far enough apart.
package world

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/duckpond/internal/geom"
)

// PondConfig holds pond generation parameters.
type PondConfig struct {
	Seed       int64     // Random seed (0 = random)
	Count      int       // Ponds to place
	Bounds     geom.Rect // World rect to place into
	Margin     float64   // Keep ponds this far from the edges
	CellSize   float64   // Sampling grid spacing
	MinSpacing float64   // Minimum distance between two ponds
}

// DefaultPondConfig returns a reasonable layout for an 800×600 scene.
func DefaultPondConfig() PondConfig {
	return PondConfig{
		Seed:       0,
		Count:      3,
		Bounds:     geom.NewRect(0, 0, 800, 600),
		Margin:     48,
		CellSize:   16,
		MinSpacing: 160,
	}
}

// GeneratePonds places up to cfg.Count water resources. The layout and the
// resource IDs are deterministic for a given non-zero seed. Fewer ponds are
// returned when the spacing rule cannot be met.
func GeneratePonds(cfg PondConfig) []Resource {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Count <= 0 || cfg.CellSize <= 0 {
		return nil
	}

	wetNoise := opensimplex.NewNormalized(seed)
	idRNG := rand.New(rand.NewSource(seed + 100))

	area := cfg.Bounds.Inset(cfg.Margin)

	type scored struct {
		pos   geom.Vec2
		score float64
	}
	var candidates []scored

	for x := area.Min[0]; x <= area.Max[0]; x += cfg.CellSize {
		for y := area.Min[1]; y <= area.Max[1]; y += cfg.CellSize {
			s := octaveNoise(wetNoise, x, y, 3, 0.004, 0.5)
			candidates = append(candidates, scored{geom.V(x, y), s})
		}
	}

	// Wettest first; stable so equal scores keep grid order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var ponds []Resource
	for _, c := range candidates {
		if len(ponds) >= cfg.Count {
			break
		}
		if tooClose(c.pos, ponds, cfg.MinSpacing) {
			continue
		}
		id, err := uuid.NewRandomFromReader(idRNG)
		if err != nil {
			// rand.Rand.Read never fails.
			id = uuid.New()
		}
		ponds = append(ponds, Resource{ID: id, Kind: KindWater, Position: c.pos})
	}
	return ponds
}

func tooClose(p geom.Vec2, placed []Resource, minDist float64) bool {
	for _, r := range placed {
		if p.DistanceTo(r.Position) < minDist {
			return true
		}
	}
	return false
}

// octaveNoise sums several noise octaves, normalized back to the noise range.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
