// Command ducksim runs a headless duck pond: a flock wandering an
// 800×600 world, getting thirsty, and waddling to the nearest pond.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/duckpond/internal/agents"
	"github.com/talgya/duckpond/internal/engine"
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/persistence"
	"github.com/talgya/duckpond/internal/world"
)

func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("duckpond starting",
		"seed", cfg.Seed,
		"ducks", cfg.Ducks,
		"world", fmt.Sprintf("%gx%g", cfg.Width, cfg.Height),
	)

	// ── Database ──────────────────────────────────────────────────────
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		slog.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Ponds ─────────────────────────────────────────────────────────
	viewport := world.NewViewport(cfg.Width, cfg.Height)
	ponds, err := loadOrGeneratePonds(db, cfg, viewport.CurrentBounds())
	if err != nil {
		slog.Error("failed to prepare ponds", "error", err)
		os.Exit(1)
	}
	for _, p := range ponds {
		slog.Info("pond", "id", p.ID, "x", fmt.Sprintf("%.0f", p.Position.X), "y", fmt.Sprintf("%.0f", p.Position.Y))
	}
	registry := world.NewRegistry(ponds...)

	// ── Flock ─────────────────────────────────────────────────────────
	spawner := agents.NewSpawner(cfg.Seed, agents.DefaultConfig(), viewport, registry).
		WithPresenter(newLogPresenter())
	flock, err := spawner.SpawnFlock(cfg.Ducks)
	if err != nil {
		slog.Error("failed to spawn flock", "error", err)
		os.Exit(1)
	}
	sim := engine.NewSimulation(flock, registry)

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Speed = cfg.Speed
	eng.OnTick = sim.TickFrame
	if cfg.ReportSeconds > 0 {
		eng.ReportEvery = uint64(time.Duration(cfg.ReportSeconds) * time.Second / eng.Step)
	}
	eng.OnReport = func(tick uint64) {
		report(db, sim, tick, eng.Step)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("\n%d ducks on a %gx%g pond with %d water sources.\n", len(flock), cfg.Width, cfg.Height, len(ponds))
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run(ctx)

	report(db, sim, eng.Tick, eng.Step)
	fmt.Println("Simulation stopped. Journal saved.")
}

// layoutKeys are the world_meta entries a saved pond layout was generated
// for. The layout is reused only when all of them match.
var layoutKeys = []string{"seed", "bounds", "ponds"}

func layoutMeta(cfg Config, bounds geom.Rect) map[string]string {
	b := bounds.Bound()
	return map[string]string{
		"seed":   strconv.FormatInt(cfg.Seed, 10),
		"bounds": fmt.Sprintf("%g,%g,%g,%g", b.Min[0], b.Min[1], b.Max[0], b.Max[1]),
		"ponds":  strconv.Itoa(cfg.Ponds),
	}
}

func layoutMatches(db *persistence.DB, want map[string]string) bool {
	for _, k := range layoutKeys {
		if saved, err := db.GetMeta(k); err != nil || saved != want[k] {
			return false
		}
	}
	return db.HasResources()
}

// loadOrGeneratePonds reuses the saved layout when it was generated for the
// same seed, bounds and pond count, otherwise generates and saves a new one.
func loadOrGeneratePonds(db *persistence.DB, cfg Config, bounds geom.Rect) ([]world.Resource, error) {
	meta := layoutMeta(cfg, bounds)
	if layoutMatches(db, meta) {
		ponds, err := db.LoadResources()
		if err != nil {
			return nil, fmt.Errorf("load ponds: %w", err)
		}
		slog.Info("pond layout restored", "ponds", len(ponds))
		return ponds, nil
	}

	pc := world.DefaultPondConfig()
	pc.Seed = cfg.Seed
	pc.Count = cfg.Ponds
	pc.Bounds = bounds
	ponds := world.GeneratePonds(pc)

	if err := db.SaveResources(ponds); err != nil {
		return nil, fmt.Errorf("save ponds: %w", err)
	}
	for _, k := range layoutKeys {
		if err := db.SaveMeta(k, meta[k]); err != nil {
			return nil, fmt.Errorf("save %s: %w", k, err)
		}
	}
	slog.Info("pond layout generated", "ponds", len(ponds))
	return ponds, nil
}

func report(db *persistence.DB, sim *engine.Simulation, tick uint64, step time.Duration) {
	n, err := db.FlushEvents(sim)
	if err != nil {
		slog.Error("journal flush failed", "error", err)
	}
	total, err := db.CountEvents("")
	if err != nil {
		slog.Error("journal count failed", "error", err)
	}

	st := sim.Stats()
	slog.Info("pond status",
		"tick", humanize.Comma(int64(tick)),
		"sim_time", engine.SimTime(tick, step),
		"idle", st.Idle,
		"wandering", st.Wandering,
		"seeking", st.Seeking,
		"ponds", sim.Water().Len(),
		"avg_thirst", fmt.Sprintf("%.1f", st.AvgThirst),
		"avg_hunger", fmt.Sprintf("%.1f", st.AvgHunger),
		"drinks", humanize.Comma(int64(st.Drinks)),
		"journaled", n,
		"journal_total", humanize.Comma(int64(total)),
	)
}
