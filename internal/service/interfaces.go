package service

import (
	"context"

	"github.com/mkarpenko/gonotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_service_mock.go -package=mock

// NoteService holds the application logic for notes: CRUD operations
// plus the three generation actions that enrich a note with text
// produced by the external generation service.
type NoteService interface {
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	CreateTitleOnly(ctx context.Context, req models.TitleOnlyRequest) (models.Note, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)

	UpdateNote(ctx context.Context, id string, req models.UpdateNoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// Summarize generates a summary from the note's content and stores
	// it on the note. Nothing is written when generation fails.
	Summarize(ctx context.Context, id string) (models.Note, error)

	// GenerateTitle generates a title from the note's content and
	// stores it on the note. Nothing is written when generation fails.
	GenerateTitle(ctx context.Context, id string) (models.Note, error)

	// Elaborate generates an expanded version of the note's content
	// and stores it on the note. Nothing is written when generation
	// fails.
	Elaborate(ctx context.Context, id string) (models.Note, error)
}
