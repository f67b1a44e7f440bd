package client

import (
	"context"
	"fmt"

	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/config"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/store"
	"github.com/mkarpenko/gonotes/internal/tui"
)

type App struct {
	cache  store.NoteCache
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(log *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	api, err := adapter.NewHTTPNotesAPI(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create notes api client: %w", err)
	}

	cache, err := store.NewNoteCache(context.Background(), cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("create note cache: %w", err)
	}

	ui := tui.New(api, cache, log)

	return &App{cache: cache, tui: ui, logger: log}, nil
}

// Run starts the terminal UI and blocks until the user quits.
func (a *App) Run() error {
	defer func() {
		if err := a.cache.Close(); err != nil {
			a.logger.Err(err).Msg("error closing note cache")
		}
	}()

	return a.tui.Run(context.Background())
}
