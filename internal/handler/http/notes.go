package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/utils"
	"github.com/mkarpenko/gonotes/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) createTitleOnly(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TitleOnlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createTitleOnly").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateTitleOnly(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTitleOnly").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	note, err := h.services.NoteService.GetNote(r.Context(), noteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Str("note_id", noteID).Msg("error getting note")
		http.Error(w, "error getting note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.IsEmpty() {
		log.Error().Str("func", "*Handler.updateNote").Msg("no fields to update")
		http.Error(w, "no fields to update", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), noteID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("note_id", noteID).Msg("error updating note")
		http.Error(w, "error updating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("note_id", noteID).Msg("error deleting note")
		http.Error(w, "error deleting note", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, "*Handler.summarize", h.services.NoteService.Summarize)
}

func (h *Handler) generateTitle(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, "*Handler.generateTitle", h.services.NoteService.GenerateTitle)
}

func (h *Handler) elaborate(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, "*Handler.elaborate", h.services.NoteService.Elaborate)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, funcName string, action func(ctx context.Context, id string) (models.Note, error)) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	note, err := action(r.Context(), noteID)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("error running generation action")
		http.Error(w, "error running generation action", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}
