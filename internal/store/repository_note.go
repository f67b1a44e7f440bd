package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/utils"
	"github.com/mkarpenko/gonotes/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. It executes all note CRUD operations directly
// against the "notes" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with
// structured fields.
type noteRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the
// provided database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Create inserts a new note. The repository assigns the id; created_at
// and updated_at come from the table defaults.
func (n *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.ID = n.ids.Generate()

	tags, err := marshalTags(note.Tags)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Msg("failed to encode tags")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := n.DB.QueryRowContext(ctx, createNote,
		note.ID, note.Title, note.Content, note.Summary, note.Elaboration, tags)

	created, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotSaved
		}
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("note_id", note.ID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// List returns every note ordered newest first. An empty table yields
// an empty slice, not nil.
func (n *noteRepository) List(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := n.DB.QueryContext(ctx, listNotes)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.List").
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.List").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// Get fetches a single note by id. A malformed id never reaches the
// database and is reported as [ErrNoteNotFound].
func (n *noteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValid(id) {
		return models.Note{}, ErrNoteNotFound
	}

	row := n.DB.QueryRowContext(ctx, getNoteByID, id)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || classifyNotFound(err) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.Get").
			Str("note_id", id).
			Msg("failed to query note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// Update applies the non-nil fields of upd and returns the updated
// record. Fields absent from upd keep their stored values.
func (n *noteRepository) Update(ctx context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValid(id) {
		return models.Note{}, ErrNoteNotFound
	}

	query, args, err := buildUpdateNoteQuery(id, upd)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", id).
			Msg("failed to build update query")
		return models.Note{}, err
	}

	row := n.DB.QueryRowContext(ctx, query, args...)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || classifyNotFound(err) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", id).
			Msg("failed to execute update statement")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// Delete removes a note permanently.
func (n *noteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValid(id) {
		return ErrNoteNotFound
	}

	result, err := n.DB.ExecContext(ctx, deleteNoteByID, id)
	if err != nil {
		if classifyNotFound(err) {
			return ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", id).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	var rawTags []byte

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Summary,
		&note.Elaboration,
		&rawTags,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Tags, err = unmarshalTags(rawTags)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}
