package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkarpenko/gonotes/internal/config"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/models"
)

const createCacheSchema = `
	CREATE TABLE IF NOT EXISTS notes_cache (
		id         TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`

const (
	cacheReplaceWipe = `DELETE FROM notes_cache;`
	cacheUpsert      = `INSERT INTO notes_cache (id, payload, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at;`
	cacheSelectAll = `SELECT payload FROM notes_cache ORDER BY created_at DESC;`
	cacheDelete    = `DELETE FROM notes_cache WHERE id = ?;`
)

// sqliteNoteCache stores whole notes as JSON payloads in a single
// SQLite table. The cache is a convenience mirror, so the schema stays
// deliberately loose: no per-field columns to migrate when the note
// shape grows.
type sqliteNoteCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewNoteCache opens (and creates, if needed) the SQLite cache file.
func NewNoteCache(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (NoteCache, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Err(err).Str("func", "NewNoteCache").Msg("error creating cache directory")
			return nil, fmt.Errorf("error creating cache directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewNoteCache").Msg("error opening cache database")
		return nil, fmt.Errorf("error opening cache database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewNoteCache").Msg("error connecting cache database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createCacheSchema); err != nil {
		log.Err(err).Str("func", "NewNoteCache").Msg("error creating cache schema")
		return nil, fmt.Errorf("error creating cache schema: %w", err)
	}

	return &sqliteNoteCache{db: conn, logger: log}, nil
}

func (c *sqliteNoteCache) ReplaceAll(ctx context.Context, notes []models.Note) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache replace begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, cacheReplaceWipe); err != nil {
		return fmt.Errorf("cache replace wipe: %w", err)
	}

	for _, note := range notes {
		if err = upsertNote(ctx, tx, note); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("cache replace commit: %w", err)
	}

	return nil
}

func (c *sqliteNoteCache) All(ctx context.Context) ([]models.Note, error) {
	rows, err := c.db.QueryContext(ctx, cacheSelectAll)
	if err != nil {
		return nil, fmt.Errorf("cache select: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("cache scan: %w", err)
		}

		var note models.Note
		if err = json.Unmarshal([]byte(payload), &note); err != nil {
			return nil, fmt.Errorf("cache decode: %w", err)
		}

		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("cache rows: %w", err)
	}

	return notes, nil
}

func (c *sqliteNoteCache) Put(ctx context.Context, note models.Note) error {
	return upsertNote(ctx, c.db, note)
}

func (c *sqliteNoteCache) Remove(ctx context.Context, id string) error {
	if _, err := c.db.ExecContext(ctx, cacheDelete, id); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *sqliteNoteCache) Close() error {
	return c.db.Close()
}

// execer covers *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertNote(ctx context.Context, db execer, note models.Note) error {
	payload, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	createdAt := note.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000Z")

	if _, err = db.ExecContext(ctx, cacheUpsert, note.ID, string(payload), createdAt); err != nil {
		return fmt.Errorf("cache upsert: %w", err)
	}

	return nil
}
