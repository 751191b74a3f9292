package persistence

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/duckpond/internal/agents"
	"github.com/talgya/duckpond/internal/engine"
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/world"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "duckpond.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestResourcesRoundTrip(t *testing.T) {
	db := openTemp(t)
	assert.False(t, db.HasResources())

	cfg := world.DefaultPondConfig()
	cfg.Seed = 9
	ponds := world.GeneratePonds(cfg)
	require.NotEmpty(t, ponds)

	require.NoError(t, db.SaveResources(ponds))
	assert.True(t, db.HasResources())

	loaded, err := db.LoadResources()
	require.NoError(t, err)
	assert.Equal(t, ponds, loaded)

	// Saving again replaces the layout.
	require.NoError(t, db.SaveResources(ponds[:1]))
	loaded, err = db.LoadResources()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestEventsJournal(t *testing.T) {
	db := openTemp(t)
	id := uuid.New()
	events := []engine.Event{
		{Tick: 0, AgentID: id.String(), Agent: "Pip-1", From: "idle", To: "wander", Cause: "initial", Thirst: 100},
		{Tick: 420, AgentID: id.String(), Agent: "Pip-1", From: "wander", To: "seek-water", Cause: "thirst", Thirst: 30},
		{Tick: 900, AgentID: uuid.NewString(), Agent: "Bill-2", From: "idle", To: "idle", Cause: "timer", Thirst: 80},
	}
	require.NoError(t, db.SaveEvents(events))
	require.NoError(t, db.SaveEvents(nil))

	recent, err := db.RecentEvents(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, events[2], recent[0])
	assert.Equal(t, events[1], recent[1])

	mine, err := db.AgentEvents(id)
	require.NoError(t, err)
	assert.Equal(t, events[:2], mine)

	n, err := db.CountEvents("")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = db.CountEvents("thirst")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMeta(t *testing.T) {
	db := openTemp(t)
	_, err := db.GetMeta("seed")
	assert.ErrorIs(t, err, ErrNoMeta)

	require.NoError(t, db.SaveMeta("seed", "42"))
	require.NoError(t, db.SaveMeta("seed", "43"))
	v, err := db.GetMeta("seed")
	require.NoError(t, err)
	assert.Equal(t, "43", v)
}

func TestFlushEvents(t *testing.T) {
	db := openTemp(t)
	reg := world.NewRegistry(world.Resource{ID: uuid.New(), Kind: world.KindWater, Position: geom.V(400, 300)})
	flock, err := agents.NewSpawner(5, agents.DefaultConfig(), world.NewViewport(800, 600), reg).SpawnFlock(3)
	require.NoError(t, err)
	sim := engine.NewSimulation(flock, reg)

	n, err := db.FlushEvents(sim)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = db.FlushEvents(sim)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	count, err := db.CountEvents("initial")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestFailedFlushKeepsEvents(t *testing.T) {
	db := openTemp(t)
	reg := world.NewRegistry()
	flock, err := agents.NewSpawner(5, agents.DefaultConfig(), world.NewViewport(800, 600), reg).SpawnFlock(2)
	require.NoError(t, err)
	sim := engine.NewSimulation(flock, reg)

	_, err = db.conn.Exec("DROP TABLE events")
	require.NoError(t, err)
	_, err = db.FlushEvents(sim)
	require.Error(t, err)

	require.NoError(t, db.migrate())
	n, err := db.FlushEvents(sim)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	db := openTemp(t)
	_, err := db.conn.Exec("INSERT INTO resources (id, kind, pos_x, pos_y) VALUES (?, 'lava', 1, 2)", uuid.NewString())
	require.NoError(t, err)

	_, err = db.LoadResources()
	assert.ErrorIs(t, err, world.ErrUnknownKind)
}
