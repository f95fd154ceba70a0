// Package source reads the cleaner's daily CSV and selects the rows that
// belong to one publication day.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"go-hh-publisher/internal/dedup"
	"go-hh-publisher/internal/filter"
	"go-hh-publisher/internal/models"
)

var ErrNoLinkColumn = errors.New("csv has no link column")

type setter func(p *models.Posting, v string)

// vacancy_id strips ".0": pandas writes integer columns with NaN holes as floats.
var columns = map[string]setter{
	"link":            func(p *models.Posting, v string) { p.Link = v },
	"vacancy_id":      func(p *models.Posting, v string) { p.VacancyID = strings.TrimSuffix(v, ".0") },
	"title":           func(p *models.Posting, v string) { p.Title = v },
	"company":         func(p *models.Posting, v string) { p.Company = v },
	"location":        func(p *models.Posting, v string) { p.Location = v },
	"salary":          func(p *models.Posting, v string) { p.Salary = v },
	"salary_range":    func(p *models.Posting, v string) { p.SalaryRange = v },
	"experience":      func(p *models.Posting, v string) { p.Experience = v },
	"employment_type": func(p *models.Posting, v string) { p.EmploymentType = v },
	"schedule":        func(p *models.Posting, v string) { p.Schedule = v },
	"working_hours":   func(p *models.Posting, v string) { p.WorkingHours = v },
	"work_format":     func(p *models.Posting, v string) { p.WorkFormat = v },
	"published_date":  func(p *models.Posting, v string) { p.PublishedDate = v },
	"description":     func(p *models.Posting, v string) { p.Description = v },
	"published_date_dt": func(p *models.Posting, v string) {
		if d, ok := filter.ParseDate(v); ok {
			p.PublishedAt = d
		}
	},
}

// LoadDay reads the whole CSV at path and returns the rows published on day.
// A missing file is reported with an error wrapping os.ErrNotExist.
func LoadDay(path string, day time.Time) ([]models.Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	all, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SelectDay(all, day), nil
}

// Read parses every row. Unknown columns are ignored, rows without a link
// are dropped.
func Read(r io.Reader) ([]models.Posting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("header: %w", err)
	}

	setters := make([]setter, len(header))
	hasLink := false
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		setters[i] = columns[name]
		if name == "link" {
			hasLink = true
		}
	}
	if !hasLink {
		return nil, ErrNoLinkColumn
	}

	var postings []models.Posting
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row: %w", err)
		}

		var p models.Posting
		for i, raw := range record {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			setters[i](&p, cleanCell(raw))
		}
		if p.Link == "" {
			continue
		}
		if p.VacancyID == "" {
			p.VacancyID, _ = dedup.ExtractVacancyID(p.Link)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// SelectDay keeps rows whose published_date_dt falls on day.
func SelectDay(postings []models.Posting, day time.Time) []models.Posting {
	out := make([]models.Posting, 0, len(postings))
	for _, p := range postings {
		if p.PublishedAt.IsZero() || !filter.SameDay(p.PublishedAt, day) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// cleanCell trims, NFC-normalises and maps pandas' missing markers to "".
func cleanCell(v string) string {
	v = strings.TrimSpace(norm.NFC.String(v))
	switch v {
	case "nan", "NaN", "None", "null":
		return ""
	}
	return v
}
