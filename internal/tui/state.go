package tui

import (
	"strings"

	"github.com/mkarpenko/gonotes/models"
)

// uiState is the single store for everything the list screen renders:
// the loaded notes, the search query, the cursor, and which notes have
// an action in flight. All mutation happens through its methods, so
// screens read state but never rearrange it themselves.
type uiState struct {
	notes   []models.Note
	query   string
	idx     int
	busy    map[string]string
	offline bool
}

func newUIState() *uiState {
	return &uiState{busy: map[string]string{}}
}

// setNotes replaces the note list and clamps the cursor.
func (s *uiState) setNotes(notes []models.Note) {
	s.notes = notes
	s.clampCursor()
}

// upsertNote replaces the stored note with the same id, or prepends
// the note when it is new.
func (s *uiState) upsertNote(note models.Note) {
	for i, existing := range s.notes {
		if existing.ID == note.ID {
			s.notes[i] = note
			return
		}
	}
	s.notes = append([]models.Note{note}, s.notes...)
}

// removeNote drops the note with the given id, if present.
func (s *uiState) removeNote(id string) {
	for i, note := range s.notes {
		if note.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	s.clampCursor()
}

func (s *uiState) setQuery(query string) {
	s.query = query
	s.clampCursor()
}

// visible returns the notes matching the current query, preserving
// the stored order. An empty query matches every note.
func (s *uiState) visible() []models.Note {
	if s.query == "" {
		return s.notes
	}

	matched := make([]models.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if noteMatchesQuery(note, s.query) {
			matched = append(matched, note)
		}
	}
	return matched
}

// current returns the note under the cursor, if any.
func (s *uiState) current() (models.Note, bool) {
	visible := s.visible()
	if len(visible) == 0 || s.idx < 0 || s.idx >= len(visible) {
		return models.Note{}, false
	}
	return visible[s.idx], true
}

func (s *uiState) moveCursor(delta int) {
	s.idx += delta
	s.clampCursor()
}

func (s *uiState) clampCursor() {
	max := len(s.visible()) - 1
	if s.idx > max {
		s.idx = max
	}
	if s.idx < 0 {
		s.idx = 0
	}
}

// markBusy records an in-flight action for the note. It reports false
// when the note already has an action running.
func (s *uiState) markBusy(id, action string) bool {
	if _, running := s.busy[id]; running {
		return false
	}
	s.busy[id] = action
	return true
}

func (s *uiState) clearBusy(id string) {
	delete(s.busy, id)
}

// busyAction returns the in-flight action for the note, if any.
func (s *uiState) busyAction(id string) (string, bool) {
	action, running := s.busy[id]
	return action, running
}

// noteMatchesQuery reports whether the note's title or any of its tags
// contains query, case-insensitively.
func noteMatchesQuery(note models.Note, query string) bool {
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(note.Title), query) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
