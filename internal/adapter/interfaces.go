// Package adapter provides outbound transport clients.
//
// Two abstractions live here: [GenerationClient], the server's client
// for the external text-generation service, and [NotesAPI], the
// terminal client's view of the gonotes REST API. Both ship HTTP
// implementations built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrGenerationUnavailable] for 502).
package adapter

import (
	"context"

	"github.com/mkarpenko/gonotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GenerationMode selects which kind of text the generation service is
// asked to produce from a note's content.
type GenerationMode string

const (
	ModeSummarize     GenerationMode = "summarize"
	ModeGenerateTitle GenerationMode = "title"
	ModeElaborate     GenerationMode = "elaborate"
)

// GenerationClient talks to the external text-generation service.
// Implementations are responsible for prompt construction, request
// serialisation, and surfacing any failure as an error so the caller
// never persists a partial result.
type GenerationClient interface {
	// Generate produces new text derived from sourceText according to
	// mode. The returned string is the raw generated text with
	// surrounding whitespace trimmed.
	Generate(ctx context.Context, mode GenerationMode, sourceText string) (string, error)
}

// NotesAPI defines transport-agnostic communication with the gonotes
// server. Implementations map transport-level errors to the sentinel
// values defined in this package.
type NotesAPI interface {
	// List fetches all notes, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// Create makes a new note from the given fields and returns the
	// stored record.
	Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// CreateTitleOnly makes a new note carrying only a title.
	CreateTitleOnly(ctx context.Context, req models.TitleOnlyRequest) (models.Note, error)

	// Get fetches a single note by id.
	Get(ctx context.Context, id string) (models.Note, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id string, req models.UpdateNoteRequest) (models.Note, error)

	// Delete removes a note permanently.
	Delete(ctx context.Context, id string) error

	// Summarize asks the server to generate and store a summary for
	// the note, returning the updated record.
	Summarize(ctx context.Context, id string) (models.Note, error)

	// GenerateTitle asks the server to generate and store a title for
	// the note, returning the updated record.
	GenerateTitle(ctx context.Context, id string) (models.Note, error)

	// Elaborate asks the server to generate and store an elaboration
	// for the note, returning the updated record.
	Elaborate(ctx context.Context, id string) (models.Note, error)
}
