package tui

import (
	"testing"

	"github.com/mkarpenko/gonotes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_TagListParsing(t *testing.T) {
	m := newEditorModel(nil)
	m.tags.SetValue(" food , , mexican,")

	assert.Equal(t, []string{"food", "mexican"}, m.tagList())
}

func TestEditor_ToCreateRequest(t *testing.T) {
	m := newEditorModel(nil)
	m.title.SetValue("  Tacos  ")
	m.content.SetValue("Tacos are...")
	m.tags.SetValue("food")

	req := m.toCreateRequest()

	assert.Equal(t, "Tacos", req.Title)
	assert.Equal(t, "Tacos are...", req.Content)
	assert.Equal(t, []string{"food"}, req.Tags)
}

func TestEditor_ToUpdateRequestSendsAllFields(t *testing.T) {
	note := models.Note{
		ID:      "id-1",
		Title:   "Tacos",
		Content: "Tacos are...",
		Tags:    []string{"food"},
	}
	m := newEditorModel(&note)
	m.title.SetValue("Renamed")

	req := m.toUpdateRequest()

	require.NotNil(t, req.Title)
	assert.Equal(t, "Renamed", *req.Title)
	require.NotNil(t, req.Content)
	assert.Equal(t, "Tacos are...", *req.Content)
	require.NotNil(t, req.Tags)
	assert.Equal(t, []string{"food"}, *req.Tags)
}

func TestEditor_PrefillsFromNote(t *testing.T) {
	note := models.Note{
		ID:    "id-1",
		Title: "Tacos",
		Tags:  []string{"food", "mexican"},
	}
	m := newEditorModel(&note)

	assert.True(t, m.editing)
	assert.Equal(t, "id-1", m.noteID)
	assert.Equal(t, "Tacos", m.title.Value())
	assert.Equal(t, "food, mexican", m.tags.Value())
}

func TestEditor_TitleOnlyRequest(t *testing.T) {
	m := newTitleOnlyEditor()
	m.title.SetValue("  Quick idea ")

	assert.True(t, m.titleOnly)
	assert.Equal(t, "Quick idea", m.toTitleOnlyRequest().Title)
}
