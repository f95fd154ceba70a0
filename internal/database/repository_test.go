package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hh-publisher/internal/models"
)

func TestNewPublishedVacancy(t *testing.T) {
	p := models.Posting{Link: "https://hh.kz/vacancy/1", VacancyID: "1", Title: "DS", Company: "C", Location: "L"}
	s := models.Summary{
		Responsibilities: models.ItemsField([]string{"a"}),
		Requirements:     models.TextField("b"),
	}
	on := time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC)

	rec, err := NewPublishedVacancy(p, s, "msg", on)
	require.NoError(t, err)

	require.NotNil(t, rec.VacancyID)
	assert.Equal(t, "1", *rec.VacancyID)
	assert.JSONEq(t, `{"responsibilities":["a"],"requirements":"b","about_company":null}`, string(rec.SummaryJSON))
	assert.Equal(t, on, rec.PublishedOn)
}

func TestNewPublishedVacancy_NoID(t *testing.T) {
	rec, err := NewPublishedVacancy(models.Posting{Link: "x"}, models.Summary{}, "msg", time.Now())
	require.NoError(t, err)
	assert.Nil(t, rec.VacancyID)
}

// integration test: needs a reachable Postgres
func TestRepository_SavePublished(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping Postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	repo, err := ConnectDB(ctx, dbURL)
	require.NoError(t, err)
	defer repo.Close()
	require.NoError(t, repo.EnsureSchema(ctx))

	day := time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC)
	link := fmt.Sprintf("https://hh.kz/vacancy/test-%d", time.Now().UnixNano())
	defer repo.db.Exec(context.Background(), "DELETE FROM published_vacancies WHERE link = $1", link)

	before, err := repo.CountPublished(ctx, day)
	require.NoError(t, err)

	p := models.Posting{Link: link, Title: "DS", Company: "C", Location: "L", PublishedAt: day}
	require.NoError(t, repo.SavePublished(ctx, p, models.Summary{}, "first"))
	require.NoError(t, repo.SavePublished(ctx, p, models.Summary{}, "second"))

	after, err := repo.CountPublished(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, before+1, after, "upsert keeps one row per link")
}
