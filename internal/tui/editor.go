package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarpenko/gonotes/models"
)

const (
	editorFieldTitle = iota
	editorFieldTags
	editorFieldContent
	editorFieldCount
)

type editorModel struct {
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model

	focus      int
	editing    bool
	titleOnly  bool
	noteID     string
	submitting bool
}

// newTitleOnlyEditor returns an editor that captures just a title for
// the quick-create flow.
func newTitleOnlyEditor() editorModel {
	m := newEditorModel(nil)
	m.titleOnly = true
	return m
}

func newEditorModel(note *models.Note) editorModel {
	title := textinput.New()
	title.Width = 50
	title.Focus()

	tags := textinput.New()
	tags.Width = 50
	tags.Placeholder = "comma separated"

	content := textarea.New()
	content.SetWidth(60)
	content.SetHeight(8)

	m := editorModel{title: title, tags: tags, content: content}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.ID
	m.title.SetValue(note.Title)
	m.tags.SetValue(strings.Join(note.Tags, ", "))
	m.content.SetValue(note.Content)
	return m
}

func (m editorModel) tagList() []string {
	parts := strings.Split(m.tags.Value(), ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

func (m editorModel) toCreateRequest() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: m.content.Value(),
		Tags:    m.tagList(),
	}
}

func (m editorModel) toUpdateRequest() models.UpdateNoteRequest {
	title := strings.TrimSpace(m.title.Value())
	content := m.content.Value()
	tags := m.tagList()

	return models.UpdateNoteRequest{
		Title:   &title,
		Content: &content,
		Tags:    &tags,
	}
}

func (m *editorModel) focusField(field int) {
	m.focus = field

	m.title.Blur()
	m.tags.Blur()
	m.content.Blur()

	switch field {
	case editorFieldTitle:
		m.title.Focus()
	case editorFieldTags:
		m.tags.Focus()
	case editorFieldContent:
		m.content.Focus()
	}
}

func (m editorModel) toTitleOnlyRequest() models.TitleOnlyRequest {
	return models.TitleOnlyRequest{Title: strings.TrimSpace(m.title.Value())}
}

func (m editorModel) View() string {
	header := "New note"
	if m.titleOnly {
		header = "New note (title only)"
	}
	if m.editing {
		header = "Editing: " + untitled(models.Note{Title: strings.TrimSpace(m.title.Value())})
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Title:   " + m.title.View() + "\n"
	if !m.titleOnly {
		out += "Tags:    " + m.tags.View() + "\n"
		out += "Content:\n" + m.content.View() + "\n"
	}
	out += "\n"

	if m.submitting {
		out += "saving...\n\n"
	}

	out += helpStyle.Render("esc cancel  tab next field  ctrl+s save")
	return out
}
