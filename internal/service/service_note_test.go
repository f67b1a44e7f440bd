package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/store"
	"github.com/mkarpenko/gonotes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	listFn   func(ctx context.Context) ([]models.Note, error)
	getFn    func(ctx context.Context, id string) (models.Note, error)
	updateFn func(ctx context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockNoteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockNoteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) Update(ctx context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: adapter.GenerationClient
// ─────────────────────────────────────────────

type mockGenerationClient struct {
	generateFn func(ctx context.Context, mode adapter.GenerationMode, sourceText string) (string, error)
}

func (m *mockGenerationClient) Generate(ctx context.Context, mode adapter.GenerationMode, sourceText string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, mode, sourceText)
	}
	return "generated", nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestNoteService(repo *mockNoteRepository, generator *mockGenerationClient) *noteService {
	return &noteService{
		noteRepository: repo,
		generator:      generator,
		logger:         logger.Nop(),
	}
}

var errRepo = errors.New("repository error")

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestNoteService_CreateNote_NormalizesTags(t *testing.T) {
	repo := &mockNoteRepository{
		createFn: func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, []string{"food", "mexican"}, note.Tags)
			note.ID = "id-1"
			return note, nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	note, err := svc.CreateNote(context.Background(), models.CreateNoteRequest{
		Title: "Tacos",
		Tags:  []string{"  food ", "", "mexican", "   "},
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", note.ID)
}

func TestNoteService_CreateNote_AllFieldsOptional(t *testing.T) {
	repo := &mockNoteRepository{
		createFn: func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Empty(t, note.Title)
			assert.Empty(t, note.Content)
			assert.Equal(t, []string{}, note.Tags)
			return note, nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	_, err := svc.CreateNote(context.Background(), models.CreateNoteRequest{})

	require.NoError(t, err)
}

func TestNoteService_CreateTitleOnly(t *testing.T) {
	repo := &mockNoteRepository{
		createFn: func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, "Quick idea", note.Title)
			assert.Empty(t, note.Content)
			assert.Equal(t, []string{}, note.Tags)
			return note, nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	_, err := svc.CreateTitleOnly(context.Background(), models.TitleOnlyRequest{Title: "Quick idea"})

	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// ListNotes / GetNote / DeleteNote delegation
// ─────────────────────────────────────────────

func TestNoteService_ListNotes_Delegates(t *testing.T) {
	want := []models.Note{{ID: "id-1"}, {ID: "id-2"}}
	repo := &mockNoteRepository{
		listFn: func(_ context.Context) ([]models.Note, error) {
			return want, nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	got, err := svc.ListNotes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_GetNote_NotFoundPassthrough(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(_ context.Context, _ string) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	_, err := svc.GetNote(context.Background(), "missing-id")

	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_DeleteNote_Delegates(t *testing.T) {
	var deletedID string
	repo := &mockNoteRepository{
		deleteFn: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	require.NoError(t, svc.DeleteNote(context.Background(), "id-1"))
	assert.Equal(t, "id-1", deletedID)
}

// ─────────────────────────────────────────────
// UpdateNote
// ─────────────────────────────────────────────

func TestNoteService_UpdateNote_NormalizesTags(t *testing.T) {
	repo := &mockNoteRepository{
		updateFn: func(_ context.Context, _ string, upd models.UpdateNoteRequest) (models.Note, error) {
			require.NotNil(t, upd.Tags)
			assert.Equal(t, []string{"food"}, *upd.Tags)
			return models.Note{ID: "id-1"}, nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	tags := []string{" food ", ""}
	_, err := svc.UpdateNote(context.Background(), "id-1", models.UpdateNoteRequest{Tags: &tags})

	require.NoError(t, err)
}

func TestNoteService_UpdateNote_NilTagsLeftAlone(t *testing.T) {
	title := "Renamed"
	repo := &mockNoteRepository{
		updateFn: func(_ context.Context, _ string, upd models.UpdateNoteRequest) (models.Note, error) {
			assert.Nil(t, upd.Tags)
			require.NotNil(t, upd.Title)
			return models.Note{ID: "id-1", Title: *upd.Title}, nil
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	note, err := svc.UpdateNote(context.Background(), "id-1", models.UpdateNoteRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, title, note.Title)
}

// ─────────────────────────────────────────────
// Generation actions
// ─────────────────────────────────────────────

func TestNoteService_Summarize_Success(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Title: "Tacos", Content: "Tacos are a traditional Mexican dish."}, nil
		},
		updateFn: func(_ context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error) {
			require.NotNil(t, upd.Summary)
			assert.Equal(t, "A short taco summary.", *upd.Summary)
			assert.Nil(t, upd.Title)
			assert.Nil(t, upd.Content)
			assert.Nil(t, upd.Elaboration)
			return models.Note{ID: id, Summary: *upd.Summary}, nil
		},
	}
	generator := &mockGenerationClient{
		generateFn: func(_ context.Context, mode adapter.GenerationMode, sourceText string) (string, error) {
			assert.Equal(t, adapter.ModeSummarize, mode)
			assert.Equal(t, "Tacos are a traditional Mexican dish.", sourceText)
			return "A short taco summary.", nil
		},
	}
	svc := newTestNoteService(repo, generator)

	note, err := svc.Summarize(context.Background(), "id-1")

	require.NoError(t, err)
	assert.Equal(t, "A short taco summary.", note.Summary)
}

func TestNoteService_GenerateTitle_UpdatesTitleField(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Content: "body"}, nil
		},
		updateFn: func(_ context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error) {
			require.NotNil(t, upd.Title)
			assert.Equal(t, "Generated Title", *upd.Title)
			assert.Nil(t, upd.Summary)
			return models.Note{ID: id, Title: *upd.Title}, nil
		},
	}
	generator := &mockGenerationClient{
		generateFn: func(_ context.Context, mode adapter.GenerationMode, _ string) (string, error) {
			assert.Equal(t, adapter.ModeGenerateTitle, mode)
			return "Generated Title", nil
		},
	}
	svc := newTestNoteService(repo, generator)

	note, err := svc.GenerateTitle(context.Background(), "id-1")

	require.NoError(t, err)
	assert.Equal(t, "Generated Title", note.Title)
}

func TestNoteService_Elaborate_UpdatesElaborationField(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Content: "body"}, nil
		},
		updateFn: func(_ context.Context, id string, upd models.UpdateNoteRequest) (models.Note, error) {
			require.NotNil(t, upd.Elaboration)
			return models.Note{ID: id, Elaboration: *upd.Elaboration}, nil
		},
	}
	generator := &mockGenerationClient{
		generateFn: func(_ context.Context, mode adapter.GenerationMode, _ string) (string, error) {
			assert.Equal(t, adapter.ModeElaborate, mode)
			return "much longer text", nil
		},
	}
	svc := newTestNoteService(repo, generator)

	note, err := svc.Elaborate(context.Background(), "id-1")

	require.NoError(t, err)
	assert.Equal(t, "much longer text", note.Elaboration)
}

func TestNoteService_Summarize_NoteNotFound(t *testing.T) {
	generatorCalled := false

	repo := &mockNoteRepository{
		getFn: func(_ context.Context, _ string) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	generator := &mockGenerationClient{
		generateFn: func(_ context.Context, _ adapter.GenerationMode, _ string) (string, error) {
			generatorCalled = true
			return "", nil
		},
	}
	svc := newTestNoteService(repo, generator)

	_, err := svc.Summarize(context.Background(), "missing-id")

	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.False(t, generatorCalled, "generation must not run for a missing note")
}

func TestNoteService_Summarize_GenerationFailureWritesNothing(t *testing.T) {
	updateCalled := false

	repo := &mockNoteRepository{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Content: "body"}, nil
		},
		updateFn: func(_ context.Context, _ string, _ models.UpdateNoteRequest) (models.Note, error) {
			updateCalled = true
			return models.Note{}, nil
		},
	}
	generator := &mockGenerationClient{
		generateFn: func(_ context.Context, _ adapter.GenerationMode, _ string) (string, error) {
			return "", errors.New("model overloaded")
		},
	}
	svc := newTestNoteService(repo, generator)

	_, err := svc.Summarize(context.Background(), "id-1")

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.False(t, updateCalled, "a failed generation must not touch the note")
}

func TestNoteService_GenerateTitle_RepositoryErrorPassthrough(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Content: "body"}, nil
		},
		updateFn: func(_ context.Context, _ string, _ models.UpdateNoteRequest) (models.Note, error) {
			return models.Note{}, errRepo
		},
	}
	svc := newTestNoteService(repo, &mockGenerationClient{})

	_, err := svc.GenerateTitle(context.Background(), "id-1")

	assert.ErrorIs(t, err, errRepo)
}
