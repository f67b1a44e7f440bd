package service

import (
	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/store"
)

type Services struct {
	NoteService NoteService
}

func NewServices(storages store.Storages, generator adapter.GenerationClient, logger *logger.Logger) *Services {
	return &Services{
		NoteService: NewNoteService(storages.NoteRepository, generator, logger),
	}
}
