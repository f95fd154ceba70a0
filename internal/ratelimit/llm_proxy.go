package ratelimit

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// RateLimitedModel puts a Limiter in front of an LLM. Every component built on
// the same RateLimitedModel shares its quota. Calls are not retried.
type RateLimitedModel struct {
	original llms.Model
	limiter  *Limiter
}

func NewRateLimitedModel(original llms.Model, limiter *Limiter) *RateLimitedModel {
	return &RateLimitedModel{
		original: original,
		limiter:  limiter,
	}
}

func (m *RateLimitedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return m.original.GenerateContent(ctx, messages, options...)
}

func (m *RateLimitedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return llms.GenerateFromSinglePrompt(ctx, m.original, prompt, options...)
}
