package ai

import (
	"context"
	"fmt"

	"go-hh-publisher/internal/models"
)

// Classifier decides whether a posting belongs in the channel.
type Classifier interface {
	IsRelevant(ctx context.Context, title, description string) (bool, error)
}

// Summarizer turns a free-text description into the three display sections.
type Summarizer interface {
	Summarize(ctx context.Context, description string) (models.Summary, error)
}

// AcceptAll treats every posting as relevant.
type AcceptAll struct{}

func (AcceptAll) IsRelevant(context.Context, string, string) (bool, error) {
	return true, nil
}

// NoSummary is the Summarizer used when the LLM is disabled.
type NoSummary struct{}

func (NoSummary) Summarize(context.Context, string) (models.Summary, error) {
	return models.Summary{}, nil
}

// descriptionLimit keeps prompts well inside the model context window.
const descriptionLimit = 12000

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func buildClassifierPrompt(title, description string) string {
	return fmt.Sprintf(`You screen job postings for a Telegram channel about data and machine learning jobs in Kazakhstan.
A posting is RELEVANT when the role is mainly about data science, machine learning, AI, data engineering, data/BI/product analytics or statistics.
It is NOT relevant when data work is only a side duty (e.g. sales managers, 1C developers, accountants, generic IT support), or when it is an unpaid internship.

Title: %s

Description:
%s

Answer with ONLY a raw JSON object, no markdown: {"relevant": true} or {"relevant": false}`,
		title, truncate(description, descriptionLimit))
}

func buildSummaryPrompt(description string) string {
	return fmt.Sprintf(`Summarize the job description below for a Telegram post. Write in Russian.
Return ONLY a raw JSON object with exactly these keys:
  "responsibilities": array of short strings (max 5),
  "requirements": array of short strings (max 5),
  "about_company": array of short strings (max 3).
Use an empty array when the description says nothing about a section. Do not invent facts.
Do NOT wrap the JSON in markdown blocks.

Description:
%s`, truncate(description, descriptionLimit))
}
