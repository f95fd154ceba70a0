package models

import (
	"time"
)

// PublishedVacancy is the archive row written after a posting reaches the channel.
type PublishedVacancy struct {
	Link        string    `json:"link"`
	VacancyID   *string   `json:"vacancy_id,omitempty"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	SummaryJSON []byte    `json:"summary_json,omitempty"` // Raw JSONB
	Message     string    `json:"message"`
	PublishedOn time.Time `json:"published_on"`
}
