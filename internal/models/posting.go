package models

import (
	"time"
)

// Posting is one row of the cleaned daily CSV. Link is the identity,
// VacancyID is derived from it and may be empty.
type Posting struct {
	Link           string
	VacancyID      string
	Title          string
	Company        string
	Location       string
	Salary         string
	SalaryRange    string
	Experience     string
	EmploymentType string
	Schedule       string
	WorkingHours   string
	WorkFormat     string
	PublishedDate  string
	Description    string
	// zero when published_date_dt could not be parsed
	PublishedAt time.Time
}

// DisplaySalary prefers the range over the raw salary string.
func (p Posting) DisplaySalary() string {
	if p.SalaryRange != "" {
		return p.SalaryRange
	}
	return p.Salary
}
