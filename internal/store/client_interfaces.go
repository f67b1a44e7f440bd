package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/note_cache_mock.go -package=mock

import (
	"context"

	"github.com/mkarpenko/gonotes/models"
)

// NoteCache is the client-side mirror of the server's note list. The
// terminal client refreshes it after every successful load and falls
// back to it when the server is unreachable.
type NoteCache interface {
	// ReplaceAll swaps the cached list for notes.
	ReplaceAll(ctx context.Context, notes []models.Note) error

	// All returns the cached notes, newest first.
	All(ctx context.Context) ([]models.Note, error)

	// Put inserts or overwrites a single cached note.
	Put(ctx context.Context, note models.Note) error

	// Remove drops a note from the cache. Removing an absent id is not
	// an error.
	Remove(ctx context.Context, id string) error

	// Close releases the cache handle.
	Close() error
}
