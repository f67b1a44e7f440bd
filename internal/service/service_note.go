package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/store"
	"github.com/mkarpenko/gonotes/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	generator      adapter.GenerationClient

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, generator adapter.GenerationClient, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		generator:      generator,
		logger:         logger,
	}
}

// CreateNote stores a new note. Every field is optional; tags are
// normalised before persisting.
func (s *noteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	return s.noteRepository.Create(ctx, models.Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    normalizeTags(req.Tags),
	})
}

// CreateTitleOnly stores a new note carrying only a title.
func (s *noteService) CreateTitleOnly(ctx context.Context, req models.TitleOnlyRequest) (models.Note, error) {
	return s.noteRepository.Create(ctx, models.Note{
		Title: req.Title,
		Tags:  []string{},
	})
}

func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepository.List(ctx)
}

func (s *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	return s.noteRepository.Get(ctx, id)
}

// UpdateNote applies the fields present in req. A tags update is
// normalised the same way as on create.
func (s *noteService) UpdateNote(ctx context.Context, id string, req models.UpdateNoteRequest) (models.Note, error) {
	if req.Tags != nil {
		normalized := normalizeTags(*req.Tags)
		req.Tags = &normalized
	}

	return s.noteRepository.Update(ctx, id, req)
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	return s.noteRepository.Delete(ctx, id)
}

// Summarize implements [NoteService].
func (s *noteService) Summarize(ctx context.Context, id string) (models.Note, error) {
	return s.generateField(ctx, id, adapter.ModeSummarize, func(upd *models.UpdateNoteRequest, text string) {
		upd.Summary = &text
	})
}

// GenerateTitle implements [NoteService].
func (s *noteService) GenerateTitle(ctx context.Context, id string) (models.Note, error) {
	return s.generateField(ctx, id, adapter.ModeGenerateTitle, func(upd *models.UpdateNoteRequest, text string) {
		upd.Title = &text
	})
}

// Elaborate implements [NoteService].
func (s *noteService) Elaborate(ctx context.Context, id string) (models.Note, error) {
	return s.generateField(ctx, id, adapter.ModeElaborate, func(upd *models.UpdateNoteRequest, text string) {
		upd.Elaboration = &text
	})
}

// generateField loads the note, runs one generation call on its
// content and persists the produced text into the field selected by
// assign. A generation failure leaves the note untouched and is
// reported as [ErrGenerationFailed].
func (s *noteService) generateField(ctx context.Context, id string, mode adapter.GenerationMode, assign func(*models.UpdateNoteRequest, string)) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.Get(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	generated, err := s.generator.Generate(ctx, mode, note.Content)
	if err != nil {
		log.Err(err).
			Str("func", "noteService.generateField").
			Str("note_id", id).
			Str("mode", string(mode)).
			Msg("generation call failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var upd models.UpdateNoteRequest
	assign(&upd, generated)

	return s.noteRepository.Update(ctx, id, upd)
}

// normalizeTags trims whitespace and drops empty entries. A nil input
// yields an empty slice so stored tags are never null.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		normalized = append(normalized, tag)
	}

	return normalized
}
