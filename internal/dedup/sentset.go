package dedup

import (
	"go-hh-publisher/internal/models"
)

// SentSet is everything already delivered to the channel. It is loaded once
// per run and passed through the pipeline explicitly.
type SentSet struct {
	Links map[string]struct{}
	IDs   map[string]struct{}
}

func NewSentSet() SentSet {
	return SentSet{
		Links: make(map[string]struct{}),
		IDs:   make(map[string]struct{}),
	}
}

func (s SentSet) HasLink(link string) bool {
	_, ok := s.Links[link]
	return ok
}

// HasID reports false for the empty id.
func (s SentSet) HasID(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s.IDs[id]
	return ok
}

// Seen is the union check used by Filter.
func (s SentSet) Seen(p models.Posting) bool {
	return s.HasLink(p.Link) || s.HasID(p.VacancyID)
}

// Add records a posting. An empty id is not stored.
func (s SentSet) Add(link, id string) {
	if link != "" {
		s.Links[link] = struct{}{}
	}
	if id != "" {
		s.IDs[id] = struct{}{}
	}
}

// Clone returns an independent copy, so a run can grow its in-memory set
// without touching the loaded one.
func (s SentSet) Clone() SentSet {
	out := NewSentSet()
	for k := range s.Links {
		out.Links[k] = struct{}{}
	}
	for k := range s.IDs {
		out.IDs[k] = struct{}{}
	}
	return out
}

// Filter keeps the postings whose link and id were never sent, in order.
func Filter(postings []models.Posting, sent SentSet) []models.Posting {
	fresh := make([]models.Posting, 0, len(postings))
	for _, p := range postings {
		if sent.Seen(p) {
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}
