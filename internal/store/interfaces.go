package store

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

import (
	"context"

	"github.com/mkarpenko/gonotes/models"
)

// NoteRepository is the persistence contract for notes. All operations
// are single-record; there are no cross-record transactions.
type NoteRepository interface {
	// Create persists a new note and returns it with id and timestamps
	// assigned.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// List returns every note, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// Get returns the note with the given id, or ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)

	// Update applies the non-nil fields of upd to the stored note and
	// returns the updated record. Absent fields are preserved.
	Update(ctx context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error)

	// Delete removes the note permanently. There is no soft delete.
	Delete(ctx context.Context, id string) error
}
