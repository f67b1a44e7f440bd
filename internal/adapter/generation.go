package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkarpenko/gonotes/internal/config"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/utils"
)

// prompts keyed by generation mode. The user message is always the
// note content verbatim, so the instruction lives entirely in the
// system prompt.
var generationPrompts = map[GenerationMode]string{
	ModeSummarize: "Summarize the following note in one or two plain sentences. " +
		"Reply with the summary only, no preamble.",
	ModeGenerateTitle: "Write a short descriptive title for the following note. " +
		"Reply with the title only, no quotes and no trailing punctuation.",
	ModeElaborate: "Expand the following note into a more detailed version that keeps " +
		"its original meaning and tone. Reply with the expanded text only.",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type generationClient struct {
	client *utils.HTTPClient
	model  string

	logger *logger.Logger
}

// NewGenerationClient constructs a [GenerationClient] for an
// OpenAI-compatible chat completions endpoint. The base URL, model and
// timeout come from generationCfg; the API key, when set, is attached
// as a bearer token on every request.
//
// Returns an error if the base URL is empty or malformed.
func NewGenerationClient(generationCfg config.Generation, logger *logger.Logger) (GenerationClient, error) {
	baseURL, err := normalizeBaseURL(generationCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid generation base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(generationCfg.Timeout)

	if generationCfg.APIKey != "" {
		client.SetAuthToken(generationCfg.APIKey)
	}

	return &generationClient{client: client, model: generationCfg.Model, logger: logger}, nil
}

// Generate implements [GenerationClient]. It POSTs a two-message chat
// completion request to /v1/chat/completions and returns the first
// choice's content. Any transport failure, non-2xx status or empty
// choice list is returned as an error so the caller stores nothing.
func (g *generationClient) Generate(ctx context.Context, mode GenerationMode, sourceText string) (string, error) {
	prompt, ok := generationPrompts[mode]
	if !ok {
		return "", fmt.Errorf("unknown generation mode: %q", mode)
	}

	var completion chatCompletionResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model: g.model,
			Messages: []chatMessage{
				{Role: "system", Content: prompt},
				{Role: "user", Content: sourceText},
			},
		}).
		SetResult(&completion).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyGenerationResponse
	}

	generated := strings.TrimSpace(completion.Choices[0].Message.Content)
	if generated == "" {
		return "", ErrEmptyGenerationResponse
	}

	return generated, nil
}
