// Package tui implements the interactive terminal client for the
// notes server.
//
// It renders the note list with search, an editor overlay for creating
// and updating notes, and per-note generation actions. All remote
// calls run as bubbletea commands so the interface never blocks on the
// network.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/store"
)

type TUI struct {
	api   adapter.NotesAPI
	cache store.NoteCache

	logger *logger.Logger
}

func New(api adapter.NotesAPI, cache store.NoteCache, logger *logger.Logger) *TUI {
	return &TUI{api: api, cache: cache, logger: logger}
}

// Run starts the main loop and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.api, t.cache)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
