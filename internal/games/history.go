package games

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/log"
)

// History records opened sessions so the recent list survives restarts.
type History interface {
	Record(ctx context.Context, s Session) error
	Recent(ctx context.Context, limit int) ([]catalog.GameID, error)
}

const historySchema = `
CREATE TABLE IF NOT EXISTS plays (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL,
	started_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS plays_game_id ON plays(game_id);
`

// SQLiteHistory is a History stored in a SQLite file.
type SQLiteHistory struct {
	db   *sql.DB
	path string
}

// OpenHistory opens or creates the history database at path.
func OpenHistory(path string) (*SQLiteHistory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	log.Debug(log.CatGame, "opening history", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to history %s: %w", path, err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &SQLiteHistory{db: db, path: path}, nil
}

// Record stores s.
func (h *SQLiteHistory) Record(ctx context.Context, s Session) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO plays (id, game_id, started_at) VALUES (?, ?, ?)`,
		s.ID, string(s.Game.ID), s.StartedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("recording session %s: %w", s.ID, err)
	}
	return nil
}

// Recent returns up to limit distinct game ids, most recently played first.
func (h *SQLiteHistory) Recent(ctx context.Context, limit int) ([]catalog.GameID, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT game_id FROM plays GROUP BY game_id ORDER BY MAX(rowid) DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []catalog.GameID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		ids = append(ids, catalog.GameID(id))
	}
	return ids, rows.Err()
}

// Close closes the database.
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}
