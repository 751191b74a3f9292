package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/duckpond/internal/agents"
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/persistence"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.Ducks)
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DUCKSIM_DUCKS=12\nDUCKSIM_WIDTH=1024.5\nDUCKSIM_LOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("DUCKSIM_DUCKS")
		os.Unsetenv("DUCKSIM_WIDTH")
		os.Unsetenv("DUCKSIM_LOG_LEVEL")
	})

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Ducks)
	assert.Equal(t, 1024.5, cfg.Width)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestEnvOverridesBadValues(t *testing.T) {
	t.Setenv("DUCKSIM_SEED", "not-a-number")
	t.Setenv("DUCKSIM_SPEED", "2.5")
	assert.Equal(t, 42, envIntOrDefault("DUCKSIM_SEED", 42))
	assert.Equal(t, 2.5, envFloatOrDefault("DUCKSIM_SPEED", 1))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
}

func TestLoadOrGeneratePondsReuses(t *testing.T) {
	db, err := persistence.Open(filepath.Join(t.TempDir(), "p.db"))
	require.NoError(t, err)
	defer db.Close()

	cfg := Config{Seed: 7, Ponds: 3}
	bounds := geom.NewRect(0, 0, 800, 600)

	first, err := loadOrGeneratePonds(db, cfg, bounds)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	again, err := loadOrGeneratePonds(db, cfg, bounds)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	cfg.Seed = 8
	other, err := loadOrGeneratePonds(db, cfg, bounds)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestLoadOrGeneratePondsFollowsWorldSize(t *testing.T) {
	db, err := persistence.Open(filepath.Join(t.TempDir(), "p.db"))
	require.NoError(t, err)
	defer db.Close()

	cfg := Config{Seed: 7, Ponds: 3}
	_, err = loadOrGeneratePonds(db, cfg, geom.NewRect(0, 0, 800, 600))
	require.NoError(t, err)

	cfg.Ponds = 1
	small := geom.NewRect(0, 0, 200, 150)
	ponds, err := loadOrGeneratePonds(db, cfg, small)
	require.NoError(t, err)
	require.Len(t, ponds, 1)
	for _, p := range ponds {
		assert.True(t, small.Contains(p.Position), "pond %v outside the world", p.Position)
	}

	saved, err := db.LoadResources()
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	// Same pond count, different size still regenerates.
	cfg.Ponds = 3
	_, err = loadOrGeneratePonds(db, cfg, geom.NewRect(0, 0, 800, 600))
	require.NoError(t, err)
	ponds, err = loadOrGeneratePonds(db, cfg, geom.NewRect(0, 0, 1024, 768))
	require.NoError(t, err)
	for _, p := range ponds {
		assert.True(t, geom.NewRect(0, 0, 1024, 768).Contains(p.Position))
	}
	v, err := db.GetMeta("bounds")
	require.NoError(t, err)
	assert.Equal(t, "0,0,1024,768", v)
}

func TestLogPresenterDedupes(t *testing.T) {
	p := newLogPresenter()
	id := uuid.New()
	p.Present(agents.Frame{AgentID: id, Animation: agents.AnimIdle})
	p.Present(agents.Frame{AgentID: id, Animation: agents.AnimIdle})
	assert.Len(t, p.last, 1)
	p.Present(agents.Frame{AgentID: id, Animation: agents.AnimWander, FacingLeft: true})
	assert.Equal(t, presented{anim: agents.AnimWander, facingLeft: true}, p.last[id])
}
