package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"go-hh-publisher/internal/models"
)

// scriptedModel answers prompts with queued replies.
type scriptedModel struct {
	replies []string
	err     error
	prompts []string
}

func (m *scriptedModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	reply := ""
	if len(m.replies) > 0 {
		reply, m.replies = m.replies[0], m.replies[1:]
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: reply}}}, nil
}

func (m *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestLLMClient_IsRelevant(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{name: "json true", reply: `{"relevant": true}`, want: true},
		{name: "json false", reply: `{"relevant": false}`, want: false},
		{name: "markdown wrapped", reply: "```json\n{\"relevant\": true}\n```", want: true},
		{name: "bare yes", reply: "Yes.", want: true},
		{name: "russian no", reply: "Нет", want: false},
		{name: "gibberish", reply: "maybe?", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &scriptedModel{replies: []string{tt.reply}}
			got, err := NewLLMClient(model).IsRelevant(context.Background(), "Data Scientist", "Python, ML")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLLMClient_IsRelevant_PromptCarriesPosting(t *testing.T) {
	model := &scriptedModel{replies: []string{`{"relevant": true}`}}
	_, err := NewLLMClient(model).IsRelevant(context.Background(), "ML Engineer", "Kubernetes and PyTorch")
	require.NoError(t, err)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "ML Engineer")
	assert.Contains(t, model.prompts[0], "Kubernetes and PyTorch")
}

func TestLLMClient_IsRelevant_PropagatesErrors(t *testing.T) {
	model := &scriptedModel{err: errors.New("429 Too Many Requests")}
	_, err := NewLLMClient(model).IsRelevant(context.Background(), "Data Scientist", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestLLMClient_Summarize(t *testing.T) {
	model := &scriptedModel{replies: []string{`{"responsibilities": ["a", "b"], "requirements": "['x']", "about_company": ""}`}}
	s, err := NewLLMClient(model).Summarize(context.Background(), strings.Repeat("описание ", 10))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.Responsibilities.Items)
	assert.Equal(t, []string{"x"}, s.Requirements.Items)
	assert.Equal(t, models.FieldEmpty, s.AboutCompany.Kind)
}

func TestLLMClient_Summarize_InvalidJSONIsEmpty(t *testing.T) {
	model := &scriptedModel{replies: []string{"no json here"}}
	s, err := NewLLMClient(model).Summarize(context.Background(), "desc")
	require.NoError(t, err)
	assert.Equal(t, models.Summary{}, s)
}

func TestLLMClient_Summarize_PropagatesErrors(t *testing.T) {
	model := &scriptedModel{err: errors.New("boom")}
	_, err := NewLLMClient(model).Summarize(context.Background(), "desc")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "абв", truncate("абвгд", 3))
	assert.Equal(t, "ab", truncate("ab", 3))
}

func TestNoSummary(t *testing.T) {
	s, err := NoSummary{}.Summarize(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, models.FieldEmpty, s.Responsibilities.Kind)
}

func TestAcceptAll(t *testing.T) {
	ok, err := AcceptAll{}.IsRelevant(context.Background(), "Повар", "")
	require.NoError(t, err)
	assert.True(t, ok)
}
