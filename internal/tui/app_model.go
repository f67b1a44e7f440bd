package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/store"
	"github.com/mkarpenko/gonotes/models"
)

type screen int

const (
	screenList screen = iota
	screenEditor
)

const (
	actionSummarize = "summarizing"
	actionGenTitle  = "generating title"
	actionElaborate = "elaborating"
)

type appModel struct {
	ctx   context.Context
	api   adapter.NotesAPI
	cache store.NoteCache

	state         *uiState
	currentScreen screen

	list   listModel
	editor editorModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, api adapter.NotesAPI, cache store.NoteCache) appModel {
	state := newUIState()
	return appModel{
		ctx:           ctx,
		api:           api,
		cache:         cache,
		state:         state,
		currentScreen: screenList,
		list:          newListModel(state),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.state.offline = msg.fromCache
		m.state.setNotes(msg.notes)
		return m, nil
	case noteSavedMsg:
		m.editor.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.state.upsertNote(msg.note)
		m.currentScreen = screenList
		return m, nil
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.state.removeNote(msg.id)
		m.pendingDelete = ""
		return m, nil
	case generationDoneMsg:
		m.state.clearBusy(msg.id)
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("%s failed: %v", msg.action, msg.err))
			return m, nil
		}
		m.state.upsertNote(msg.note)
		return m, nil
	case copiedMsg:
		m.list.status = "copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading || len(m.state.busy) > 0 {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenEditor:
		return m.updateEditor(msg)
	default:
		return m.updateList(msg)
	}
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenEditor:
		body = m.editor.View()
	default:
		body = m.list.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue("")
			m.state.setQuery("")
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
		default:
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			m.state.setQuery(m.list.search.Value())
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.state.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		m.state.moveCursor(1)
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case key.Matches(keyMsg, keys.newNote):
		m.editor = newEditorModel(nil)
		m.currentScreen = screenEditor
	case key.Matches(keyMsg, keys.titleOnly):
		m.editor = newTitleOnlyEditor()
		m.currentScreen = screenEditor
	case key.Matches(keyMsg, keys.edit):
		note, ok := m.state.current()
		if !ok {
			return m, nil
		}
		m.editor = newEditorModel(&note)
		m.currentScreen = screenEditor
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.state.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = untitled(note)
		m.pendingDelete = note.ID
	case key.Matches(keyMsg, keys.summarize):
		return m.startGeneration(actionSummarize)
	case key.Matches(keyMsg, keys.genTitle):
		return m.startGeneration(actionGenTitle)
	case key.Matches(keyMsg, keys.elaborate):
		return m.startGeneration(actionElaborate)
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.state.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(cardBody(note))
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// startGeneration kicks off one generation action for the selected
// note. A note with an action already in flight is left alone.
func (m appModel) startGeneration(action string) (tea.Model, tea.Cmd) {
	note, ok := m.state.current()
	if !ok {
		return m, nil
	}
	if !m.state.markBusy(note.ID, action) {
		return m, nil
	}
	return m, tea.Batch(m.list.spinner.Tick, m.cmdGenerate(note.ID, action))
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			if !m.editor.titleOnly {
				m.editor.focusField((m.editor.focus + 1) % editorFieldCount)
			}
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			if !m.editor.titleOnly {
				m.editor.focusField((m.editor.focus + editorFieldCount - 1) % editorFieldCount)
			}
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.editor.submitting {
				return m, nil
			}
			m.editor.submitting = true
			return m, m.cmdSaveEditor()
		case key.Matches(keyMsg, keys.enter):
			// enter saves the title-only form, the full editor uses it
			// for newlines in the content field
			if m.editor.titleOnly {
				m.editor.submitting = true
				return m, m.cmdSaveEditor()
			}
		}
	}

	var cmd tea.Cmd
	switch m.editor.focus {
	case editorFieldTitle:
		m.editor.title, cmd = m.editor.title.Update(msg)
	case editorFieldTags:
		m.editor.tags, cmd = m.editor.tags.Update(msg)
	case editorFieldContent:
		m.editor.content, cmd = m.editor.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) cmdSaveEditor() tea.Cmd {
	switch {
	case m.editor.titleOnly:
		return m.cmdCreateTitleOnly(m.editor.toTitleOnlyRequest())
	case m.editor.editing:
		return m.cmdUpdateNote(m.editor.noteID, m.editor.toUpdateRequest())
	default:
		return m.cmdCreateNote(m.editor.toCreateRequest())
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	api := m.api
	cache := m.cache
	return func() tea.Msg {
		notes, err := api.List(ctx)
		if err == nil {
			if cache != nil {
				_ = cache.ReplaceAll(ctx, notes)
			}
			return notesLoadedMsg{notes: notes}
		}

		if cache != nil {
			cached, cacheErr := cache.All(ctx)
			if cacheErr == nil {
				return notesLoadedMsg{notes: cached, fromCache: true}
			}
		}
		return notesLoadedMsg{err: err}
	}
}

func (m appModel) cmdCreateNote(req models.CreateNoteRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	cache := m.cache
	return func() tea.Msg {
		note, err := api.Create(ctx, req)
		if err == nil && cache != nil {
			_ = cache.Put(ctx, note)
		}
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdCreateTitleOnly(req models.TitleOnlyRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	cache := m.cache
	return func() tea.Msg {
		note, err := api.CreateTitleOnly(ctx, req)
		if err == nil && cache != nil {
			_ = cache.Put(ctx, note)
		}
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdateNote(id string, req models.UpdateNoteRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	cache := m.cache
	return func() tea.Msg {
		note, err := api.Update(ctx, id, req)
		if err == nil && cache != nil {
			_ = cache.Put(ctx, note)
		}
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	cache := m.cache
	return func() tea.Msg {
		err := api.Delete(ctx, id)
		if err == nil && cache != nil {
			_ = cache.Remove(ctx, id)
		}
		return noteDeletedMsg{id: id, err: err}
	}
}

func (m appModel) cmdGenerate(id, action string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	cache := m.cache
	return func() tea.Msg {
		var (
			note models.Note
			err  error
		)
		switch action {
		case actionSummarize:
			note, err = api.Summarize(ctx, id)
		case actionGenTitle:
			note, err = api.GenerateTitle(ctx, id)
		case actionElaborate:
			note, err = api.Elaborate(ctx, id)
		}

		if err == nil && cache != nil {
			_ = cache.Put(ctx, note)
		}
		return generationDoneMsg{id: id, action: action, note: note, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return noteSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
