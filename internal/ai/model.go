package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"go-hh-publisher/internal/config"
)

// groqBaseURL is the default OpenAI-compatible endpoint for provider "openai".
const groqBaseURL = "https://api.groq.com/openai/v1"

// NewModel builds the LLM backend named by cfg.Provider.
func NewModel(ctx context.Context, cfg config.LLM) (llms.Model, error) {
	switch cfg.Provider {
	case "gemini":
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return llm, nil
	case "openai":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		llm, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithBaseURL(baseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI-compatible client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
