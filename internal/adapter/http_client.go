package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mkarpenko/gonotes/internal/config"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/utils"
	"github.com/mkarpenko/gonotes/models"
)

type httpNotesAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNotesAPI constructs an HTTP/REST implementation of
// [NotesAPI]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be
// parsed as a valid URL.
func NewHTTPNotesAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpNotesAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [NotesAPI] via GET /api/notes.
func (h *httpNotesAPI) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// Create implements [NotesAPI] via POST /api/notes.
func (h *httpNotesAPI) Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	return h.postNote(ctx, "/api/notes", req)
}

// CreateTitleOnly implements [NotesAPI] via POST /api/notes/title-only.
func (h *httpNotesAPI) CreateTitleOnly(ctx context.Context, req models.TitleOnlyRequest) (models.Note, error) {
	return h.postNote(ctx, "/api/notes/title-only", req)
}

// Get implements [NotesAPI] via GET /api/notes/{id}.
func (h *httpNotesAPI) Get(ctx context.Context, id string) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&note).
		SetPathParam("noteID", id).
		Get("/api/notes/{noteID}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Update implements [NotesAPI] via PUT /api/notes/{id}.
func (h *httpNotesAPI) Update(ctx context.Context, id string, req models.UpdateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&note).
		SetPathParam("noteID", id).
		Put("/api/notes/{noteID}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Delete implements [NotesAPI] via DELETE /api/notes/{id}.
func (h *httpNotesAPI) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("noteID", id).
		Delete("/api/notes/{noteID}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Summarize implements [NotesAPI] via POST /api/notes/{id}/summarize.
func (h *httpNotesAPI) Summarize(ctx context.Context, id string) (models.Note, error) {
	return h.postGeneration(ctx, id, "summarize")
}

// GenerateTitle implements [NotesAPI] via POST /api/notes/{id}/generate-title.
func (h *httpNotesAPI) GenerateTitle(ctx context.Context, id string) (models.Note, error) {
	return h.postGeneration(ctx, id, "generate-title")
}

// Elaborate implements [NotesAPI] via POST /api/notes/{id}/elaborate.
func (h *httpNotesAPI) Elaborate(ctx context.Context, id string) (models.Note, error) {
	return h.postGeneration(ctx, id, "elaborate")
}

func (h *httpNotesAPI) postNote(ctx context.Context, path string, body any) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&note).
		Post(path)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNotesAPI) postGeneration(ctx context.Context, id, action string) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&note).
		SetPathParam("noteID", id).
		SetPathParam("action", action).
		Post("/api/notes/{noteID}/{action}")
	if err != nil {
		return models.Note{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}
