package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-hh-publisher/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS published_vacancies (
	id           BIGSERIAL PRIMARY KEY,
	link         TEXT NOT NULL UNIQUE,
	vacancy_id   TEXT,
	title        TEXT NOT NULL,
	company      TEXT NOT NULL,
	location     TEXT NOT NULL,
	summary_json JSONB,
	message      TEXT NOT NULL,
	published_on DATE NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Repository archives what was published. It is not consulted for dedup;
// the sent-set store stays the source of truth.
type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	// PgBouncer in transaction mode does not support prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// NewPublishedVacancy builds the archive row for a sent posting.
func NewPublishedVacancy(p models.Posting, s models.Summary, message string, on time.Time) (*models.PublishedVacancy, error) {
	summaryJSON, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	rec := &models.PublishedVacancy{
		Link:        p.Link,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		SummaryJSON: summaryJSON,
		Message:     message,
		PublishedOn: on,
	}
	if p.VacancyID != "" {
		id := p.VacancyID
		rec.VacancyID = &id
	}
	return rec, nil
}

// SavePublished inserts a published vacancy, refreshing it if the link is already archived.
func (r *Repository) SavePublished(ctx context.Context, p models.Posting, s models.Summary, message string) error {
	on := p.PublishedAt
	if on.IsZero() {
		on = time.Now()
	}
	rec, err := NewPublishedVacancy(p, s, message, on)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO published_vacancies (link, vacancy_id, title, company, location, summary_json, message, published_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (link)
		DO UPDATE SET message = EXCLUDED.message, summary_json = EXCLUDED.summary_json, published_on = EXCLUDED.published_on`

	_, err = r.db.Exec(ctx, query,
		rec.Link, rec.VacancyID, rec.Title, rec.Company, rec.Location, string(rec.SummaryJSON), rec.Message, rec.PublishedOn.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to save published vacancy: %w", err)
	}
	return nil
}

// CountPublished returns how many vacancies were archived on day.
func (r *Repository) CountPublished(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM published_vacancies WHERE published_on = $1", day.Format("2006-01-02")).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count published vacancies: %w", err)
	}
	return n, nil
}
