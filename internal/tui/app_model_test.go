package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarpenko/gonotes/internal/mock"
	"github.com/mkarpenko/gonotes/models"
)

var errServerDown = errors.New("connection refused")

func newTestAppModel(t *testing.T) (appModel, *mock.MockNotesAPI, *mock.MockNoteCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mock.NewMockNotesAPI(ctrl)
	cache := mock.NewMockNoteCache(ctrl)

	return newAppModel(context.Background(), api, cache), api, cache
}

// ─────────────────────────────────────────────
// loading
// ─────────────────────────────────────────────

func TestCmdLoadNotes_RefreshesCacheOnSuccess(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	notes := []models.Note{
		{ID: "note-2", Title: "Tacos", Tags: []string{"food"}},
		{ID: "note-1", Title: "Meeting notes", Tags: []string{"work"}},
	}
	api.EXPECT().List(gomock.Any()).Return(notes, nil)
	cache.EXPECT().ReplaceAll(gomock.Any(), notes).Return(nil)

	msg := m.cmdLoadNotes()()

	loaded, ok := msg.(notesLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.False(t, loaded.fromCache)
	assert.Equal(t, notes, loaded.notes)
}

func TestCmdLoadNotes_FallsBackToCacheWhenServerUnreachable(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	cached := []models.Note{{ID: "note-1", Title: "Grocery list"}}
	api.EXPECT().List(gomock.Any()).Return(nil, errServerDown)
	cache.EXPECT().All(gomock.Any()).Return(cached, nil)

	msg := m.cmdLoadNotes()()

	loaded, ok := msg.(notesLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.True(t, loaded.fromCache)
	assert.Equal(t, cached, loaded.notes)
}

func TestCmdLoadNotes_ReportsErrorWhenCacheAlsoFails(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	api.EXPECT().List(gomock.Any()).Return(nil, errServerDown)
	cache.EXPECT().All(gomock.Any()).Return(nil, errors.New("cache closed"))

	msg := m.cmdLoadNotes()()

	loaded, ok := msg.(notesLoadedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.err, errServerDown)
	assert.Empty(t, loaded.notes)
}

// ─────────────────────────────────────────────
// mutations
// ─────────────────────────────────────────────

func TestCmdCreateNote_CachesSavedNote(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	req := models.CreateNoteRequest{Title: "Tacos", Content: "Chicken or beef"}
	saved := models.Note{ID: "note-1", Title: "Tacos", Content: "Chicken or beef"}
	api.EXPECT().Create(gomock.Any(), req).Return(saved, nil)
	cache.EXPECT().Put(gomock.Any(), saved).Return(nil)

	msg := m.cmdCreateNote(req)()

	result, ok := msg.(noteSavedMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Equal(t, saved, result.note)
}

func TestCmdDeleteNote_EvictsFromCache(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	api.EXPECT().Delete(gomock.Any(), "note-1").Return(nil)
	cache.EXPECT().Remove(gomock.Any(), "note-1").Return(nil)

	msg := m.cmdDeleteNote("note-1")()

	deleted, ok := msg.(noteDeletedMsg)
	require.True(t, ok)
	require.NoError(t, deleted.err)
	assert.Equal(t, "note-1", deleted.id)
}

func TestCmdDeleteNote_KeepsCacheOnServerError(t *testing.T) {
	m, api, _ := newTestAppModel(t)

	api.EXPECT().Delete(gomock.Any(), "note-1").Return(errServerDown)

	msg := m.cmdDeleteNote("note-1")()

	deleted, ok := msg.(noteDeletedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, deleted.err, errServerDown)
}

// ─────────────────────────────────────────────
// generation
// ─────────────────────────────────────────────

func TestCmdGenerate_SummarizeUpdatesCache(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	updated := models.Note{ID: "note-1", Title: "Tacos", Summary: "A note about tacos."}
	api.EXPECT().Summarize(gomock.Any(), "note-1").Return(updated, nil)
	cache.EXPECT().Put(gomock.Any(), updated).Return(nil)

	msg := m.cmdGenerate("note-1", actionSummarize)()

	done, ok := msg.(generationDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, "note-1", done.id)
	assert.Equal(t, actionSummarize, done.action)
	assert.Equal(t, updated, done.note)
}

func TestCmdGenerate_DispatchesByAction(t *testing.T) {
	m, api, cache := newTestAppModel(t)

	api.EXPECT().GenerateTitle(gomock.Any(), "note-1").Return(models.Note{ID: "note-1"}, nil)
	api.EXPECT().Elaborate(gomock.Any(), "note-1").Return(models.Note{ID: "note-1"}, nil)
	cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for _, action := range []string{actionGenTitle, actionElaborate} {
		msg := m.cmdGenerate("note-1", action)()

		done, ok := msg.(generationDoneMsg)
		require.True(t, ok)
		require.NoError(t, done.err)
		assert.Equal(t, action, done.action)
	}
}

func TestCmdGenerate_FailureSkipsCache(t *testing.T) {
	m, api, _ := newTestAppModel(t)

	api.EXPECT().Summarize(gomock.Any(), "note-1").Return(models.Note{}, errServerDown)

	msg := m.cmdGenerate("note-1", actionSummarize)()

	done, ok := msg.(generationDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, errServerDown)
}
