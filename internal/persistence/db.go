// Package persistence provides SQLite storage for the pond layout, the
// decision journal, and world metadata. Duck state is never saved: each
// run starts a fresh flock.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/duckpond/internal/engine"
	"github.com/talgya/duckpond/internal/geom"
	"github.com/talgya/duckpond/internal/world"
)

// ErrNoMeta is returned by GetMeta for a missing key.
var ErrNoMeta = errors.New("meta key not found")

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS resources (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		agent_id TEXT NOT NULL,
		agent TEXT NOT NULL,
		from_state TEXT NOT NULL,
		to_state TEXT NOT NULL,
		cause TEXT NOT NULL,
		thirst REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_tick ON events(tick);
	CREATE INDEX IF NOT EXISTS idx_events_agent ON events(agent_id);
	CREATE INDEX IF NOT EXISTS idx_resources_kind ON resources(kind);
	`
	_, err := db.conn.Exec(schema)
	return err
}

type resourceRow struct {
	ID   string  `db:"id"`
	Kind string  `db:"kind"`
	X    float64 `db:"pos_x"`
	Y    float64 `db:"pos_y"`
}

// SaveResources writes the resource layout (full replace).
func (db *DB) SaveResources(resources []world.Resource) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM resources"); err != nil {
		return err
	}

	for _, r := range resources {
		_, err := tx.NamedExec(
			"INSERT INTO resources (id, kind, pos_x, pos_y) VALUES (:id, :kind, :pos_x, :pos_y)",
			resourceRow{ID: r.ID.String(), Kind: string(r.Kind), X: r.Position.X, Y: r.Position.Y},
		)
		if err != nil {
			return fmt.Errorf("insert resource %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// LoadResources reads the resource layout.
func (db *DB) LoadResources() ([]world.Resource, error) {
	var rows []resourceRow
	if err := db.conn.Select(&rows, "SELECT id, kind, pos_x, pos_y FROM resources ORDER BY rowid"); err != nil {
		return nil, fmt.Errorf("select resources: %w", err)
	}

	out := make([]world.Resource, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, fmt.Errorf("resource id %q: %w", row.ID, err)
		}
		kind, err := world.ParseKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", row.ID, err)
		}
		out = append(out, world.Resource{ID: id, Kind: kind, Position: geom.V(row.X, row.Y)})
	}
	return out, nil
}

// HasResources reports whether a layout has been saved.
func (db *DB) HasResources() bool {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM resources"); err != nil {
		return false
	}
	return n > 0
}

// SaveEvents appends events to the journal.
func (db *DB) SaveEvents(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(`INSERT INTO events
		(tick, agent_id, agent, from_state, to_state, cause, thirst)
		VALUES (:tick, :agent_id, :agent, :from_state, :to_state, :cause, :thirst)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(e); err != nil {
			return fmt.Errorf("insert event at tick %d: %w", e.Tick, err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events, newest first.
func (db *DB) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		`SELECT tick, agent_id, agent, from_state, to_state, cause, thirst
		 FROM events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	return events, err
}

// AgentEvents returns every journaled decision of one duck, oldest first.
func (db *DB) AgentEvents(agentID uuid.UUID) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		`SELECT tick, agent_id, agent, from_state, to_state, cause, thirst
		 FROM events WHERE agent_id = ? ORDER BY id`,
		agentID.String(),
	)
	return events, err
}

// CountEvents returns journal size, optionally filtered by cause.
func (db *DB) CountEvents(cause string) (int, error) {
	var n int
	var err error
	if cause == "" {
		err = db.conn.Get(&n, "SELECT COUNT(*) FROM events")
	} else {
		err = db.conn.Get(&n, "SELECT COUNT(*) FROM events WHERE cause = ?", cause)
	}
	return n, err
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNoMeta, key)
	}
	return value, err
}

// FlushEvents drains the simulation's pending events into the journal.
// On failure the batch goes back to the simulation for the next flush.
func (db *DB) FlushEvents(sim *engine.Simulation) (int, error) {
	events := sim.DrainEvents()
	if err := db.SaveEvents(events); err != nil {
		sim.RequeueEvents(events)
		return 0, fmt.Errorf("save events: %w", err)
	}
	slog.Debug("journal flushed", "events", len(events))
	return len(events), nil
}
