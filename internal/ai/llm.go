package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"go-hh-publisher/internal/logger"
	"go-hh-publisher/internal/models"
)

// LLMClient implements Classifier and Summarizer on one model. Wrap the model
// in a ratelimit.RateLimitedModel to keep both under the same quota.
type LLMClient struct {
	model       llms.Model
	temperature float64
}

func NewLLMClient(model llms.Model) *LLMClient {
	return &LLMClient{
		model:       model,
		temperature: 0.1, // Low temperature for consistency
	}
}

func (c *LLMClient) generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(c.temperature))
}

// IsRelevant asks the model for a yes/no verdict. An answer that is neither
// is treated as not relevant.
func (c *LLMClient) IsRelevant(ctx context.Context, title, description string) (bool, error) {
	raw, err := c.generate(ctx, buildClassifierPrompt(title, description))
	if err != nil {
		return false, fmt.Errorf("classify %q: %w", title, err)
	}

	verdict, ok := parseVerdict(raw)
	if !ok {
		logger.Ctx(ctx).Warn().Str("title", title).Str("answer", raw).
			Msg("⚠️ Classifier answer not understood, treating as not relevant")
	}
	return verdict, nil
}

// Summarize asks the model for the JSON summary. A reply that is not JSON
// gives an empty Summary rather than an error.
func (c *LLMClient) Summarize(ctx context.Context, description string) (models.Summary, error) {
	raw, err := c.generate(ctx, buildSummaryPrompt(description))
	if err != nil {
		return models.Summary{}, fmt.Errorf("summarize: %w", err)
	}

	summary, err := ParseSummary(raw)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Int("raw_length", len(raw)).
			Msg("⚠️ Summary is not valid JSON, sending without it")
		return models.Summary{}, nil
	}
	return summary, nil
}

func parseVerdict(raw string) (bool, bool) {
	cleaned := cleanMarkdownJSON(raw)

	var obj struct {
		Relevant *bool `json:"relevant"`
	}
	if err := json.Unmarshal([]byte(extractObject(cleaned)), &obj); err == nil && obj.Relevant != nil {
		return *obj.Relevant, true
	}

	word := strings.ToLower(strings.Trim(strings.TrimSpace(cleaned), ".!\"'"))
	switch word {
	case "true", "yes", "да", "relevant":
		return true, true
	case "false", "no", "нет", "not relevant":
		return false, true
	}
	return false, false
}

// cleanMarkdownJSON removes backticks and "json" prefix if the AI model tries to be helpful
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// extractObject cuts the outermost {...} out of chatty output.
func extractObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return content
	}
	return content[start : end+1]
}
