package filter

import (
	"context"
	"testing"
)

func TestMatchesKeywords(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		expected    bool
	}{
		{
			name:     "English title",
			title:    "Senior Data Scientist",
			expected: true,
		},
		{
			name:     "Russian title",
			title:    "Ведущий аналитик данных",
			expected: true,
		},
		{
			name:     "Internship rejected",
			title:    "Стажёр Data Analyst",
			expected: false,
		},
		{
			name:        "Generic title with data description",
			title:       "Analyst",
			description: "Ищем человека в команду Data Science, SQL и Python",
			expected:    true,
		},
		{
			name:        "Generic title without data description",
			title:       "Analyst",
			description: "Анализ продаж в рознице",
			expected:    false,
		},
		{
			name:     "Unrelated",
			title:    "Менеджер по продажам",
			expected: false,
		},
		{
			name:     "1C developer",
			title:    "Программист 1С",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesKeywords(tt.title, tt.description)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeywordClassifier(t *testing.T) {
	ok, err := KeywordClassifier{}.IsRelevant(context.Background(), "ML Engineer", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("ML Engineer should be relevant")
	}
}
