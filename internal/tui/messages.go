package tui

import (
	"github.com/mkarpenko/gonotes/models"
)

type notesLoadedMsg struct {
	notes     []models.Note
	fromCache bool
	err       error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type generationDoneMsg struct {
	id     string
	action string
	note   models.Note
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
