package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarpenko/gonotes/internal/config"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerationClient(t *testing.T, serverURL string) GenerationClient {
	t.Helper()

	client, err := NewGenerationClient(config.Generation{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

func completionBody(text string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(text) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "Tacos are a traditional Mexican dish.", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("  A short taco summary.\n")))
	}))
	defer srv.Close()

	client := newTestGenerationClient(t, srv.URL)
	got, err := client.Generate(context.Background(), ModeSummarize, "Tacos are a traditional Mexican dish.")

	require.NoError(t, err)
	assert.Equal(t, "A short taco summary.", got, "surrounding whitespace is trimmed")
}

func TestGenerate_PerModePrompts(t *testing.T) {
	var seenPrompts []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seenPrompts = append(seenPrompts, req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("generated")))
	}))
	defer srv.Close()

	client := newTestGenerationClient(t, srv.URL)

	for _, mode := range []GenerationMode{ModeSummarize, ModeGenerateTitle, ModeElaborate} {
		_, err := client.Generate(context.Background(), mode, "note body")
		require.NoError(t, err)
	}

	require.Len(t, seenPrompts, 3)
	assert.NotEqual(t, seenPrompts[0], seenPrompts[1])
	assert.NotEqual(t, seenPrompts[1], seenPrompts[2])
}

func TestGenerate_UnknownMode(t *testing.T) {
	client := newTestGenerationClient(t, "http://localhost:1")

	_, err := client.Generate(context.Background(), GenerationMode("haiku"), "note body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generation mode")
}

func TestGenerate_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model overloaded"))
	}))
	defer srv.Close()

	client := newTestGenerationClient(t, srv.URL)
	_, err := client.Generate(context.Background(), ModeSummarize, "note body")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newTestGenerationClient(t, srv.URL)
	_, err := client.Generate(context.Background(), ModeElaborate, "note body")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyGenerationResponse)
}

func TestGenerate_BlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("   \n\t")))
	}))
	defer srv.Close()

	client := newTestGenerationClient(t, srv.URL)
	_, err := client.Generate(context.Background(), ModeGenerateTitle, "note body")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyGenerationResponse)
}

func TestNewGenerationClient_InvalidBaseURL(t *testing.T) {
	_, err := NewGenerationClient(config.Generation{BaseURL: ""}, logger.Nop())

	require.Error(t, err)
}
