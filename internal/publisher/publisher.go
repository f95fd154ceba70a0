package publisher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go-hh-publisher/internal/ai"
	"go-hh-publisher/internal/config"
	"go-hh-publisher/internal/dedup"
	"go-hh-publisher/internal/logger"
	"go-hh-publisher/internal/models"
	"go-hh-publisher/internal/ratelimit"
	"go-hh-publisher/internal/source"

	"github.com/google/uuid"
)

// Sender delivers one formatted message to the channel.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// Archive keeps a record of every posting that was sent.
type Archive interface {
	SavePublished(ctx context.Context, p models.Posting, s models.Summary, message string) error
}

// Formatter renders a posting and its summary as a message.
type Formatter func(models.Posting, models.Summary) string

// Result counts what happened to the day's postings.
type Result struct {
	RunID    string
	Loaded   int
	Fresh    int
	Relevant int
	Sent     int
	Skipped  int
	DryRun   bool
}

type Publisher struct {
	store      dedup.Store
	classifier ai.Classifier
	summarizer ai.Summarizer
	sender     Sender

	format  Formatter
	jitter  *ratelimit.Jitter
	sleep   func(ctx context.Context, d time.Duration) error
	persist config.PersistMode
	archive Archive
	dryRun  bool
}

func New(store dedup.Store, classifier ai.Classifier, summarizer ai.Summarizer, sender Sender, opts ...Option) *Publisher {
	p := &Publisher{
		store:      store,
		classifier: classifier,
		summarizer: summarizer,
		sender:     sender,
	}
	defaults(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run publishes the postings of day found in inputPath. A missing or
// unreadable input ends the run early without an error.
func (p *Publisher) Run(ctx context.Context, inputPath string, day time.Time) (Result, error) {
	res := Result{RunID: uuid.NewString(), DryRun: p.dryRun}
	ctx = logger.WithRun(ctx, res.RunID)
	log := logger.Ctx(ctx)

	log.Info().
		Str("input", inputPath).
		Str("day", day.Format(time.DateOnly)).
		Bool("dry_run", p.dryRun).
		Msg("🚀 Starting publisher run")

	postings, err := p.load(inputPath, day)
	if err != nil {
		log.Warn().Err(err).Msg("📭 Nothing to publish")
		return res, nil
	}
	res.Loaded = len(postings)
	if res.Loaded == 0 {
		log.Info().Msg("📭 No vacancies for the day")
		return res, nil
	}

	sent, err := p.store.Load(ctx)
	if err != nil {
		return res, stageErr(ErrLoadState, "", err)
	}

	fresh := dedup.Filter(postings, sent)
	res.Fresh = len(fresh)
	log.Info().Int("loaded", res.Loaded).Int("fresh", res.Fresh).Msg("🔁 Dropped already sent vacancies")
	if res.Fresh == 0 {
		log.Info().Msg("✅ All vacancies were already sent")
		return res, nil
	}

	relevant, err := p.filterRelevant(ctx, fresh)
	if err != nil {
		return res, err
	}
	res.Relevant = len(relevant)
	if res.Relevant == 0 {
		log.Info().Msg("❌ No relevant vacancies after filtering")
		return res, nil
	}

	err = p.deliver(ctx, relevant, sent, &res)
	log.Info().
		Int("sent", res.Sent).
		Int("skipped", res.Skipped).
		Msgf("📬 Sent %d vacancies", res.Sent)
	return res, err
}

func (p *Publisher) load(inputPath string, day time.Time) ([]models.Posting, error) {
	postings, err := source.LoadDay(inputPath, day)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, inputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	return postings, nil
}

// filterRelevant asks the classifier about each posting, one at a time.
func (p *Publisher) filterRelevant(ctx context.Context, postings []models.Posting) ([]models.Posting, error) {
	log := logger.Ctx(ctx)
	relevant := make([]models.Posting, 0, len(postings))
	for _, post := range postings {
		ok, err := p.classifier.IsRelevant(ctx, post.Title, post.Description)
		if err != nil {
			return nil, stageErr(ErrClassify, post.Link, err)
		}
		mark := "❌"
		if ok {
			mark = "✅"
			relevant = append(relevant, post)
		}
		log.Info().Str("link", post.Link).Msgf("[LLM Filter] %s → %s", post.Title, mark)
	}
	return relevant, nil
}

// deliver sends postings in order. sent is the state loaded at the start of
// the run and is not modified.
func (p *Publisher) deliver(ctx context.Context, postings []models.Posting, sent dedup.SentSet, res *Result) error {
	log := logger.Ctx(ctx)
	seen := sent.Clone()
	delivered := 0

	for i, post := range postings {
		if seen.HasID(post.VacancyID) {
			res.Skipped++
			log.Info().Str("vacancy_id", post.VacancyID).Msg("⏭️ Vacancy already sent in this run, skipping")
			continue
		}

		summary, err := p.summarizer.Summarize(ctx, post.Description)
		if err != nil {
			return stageErr(ErrSummarize, post.Link, err)
		}
		text := p.format(post, summary)

		if delivered > 0 && !p.dryRun {
			d := p.jitter.Next()
			log.Debug().Dur("delay", d).Msg("⏳ Waiting before next message")
			if err := p.sleep(ctx, d); err != nil {
				return err
			}
		}

		if p.dryRun {
			log.Info().Str("link", post.Link).Msgf("📝 [dry-run] message:\n%s", text)
		} else if err := p.sender.Send(ctx, text); err != nil {
			return stageErr(ErrSend, post.Link, err)
		}

		delivered++
		res.Sent++
		seen.Add(post.Link, post.VacancyID)
		log.Info().Str("link", post.Link).Msgf("✅ [%d/%d] Sent: %s", i+1, len(postings), post.Title)

		if p.dryRun {
			continue
		}
		if p.persist == config.PersistPerMessage {
			if err := p.store.Append(ctx, []string{post.Link}, []string{post.VacancyID}); err != nil {
				return stageErr(ErrPersist, post.Link, err)
			}
		}
		if p.archive != nil {
			if err := p.archive.SavePublished(ctx, post, summary, text); err != nil {
				log.Warn().Err(err).Str("link", post.Link).Msg("⚠️ Failed to archive published vacancy")
			}
		}
	}

	if p.dryRun || p.persist != config.PersistBatch {
		return nil
	}
	links := make([]string, 0, len(postings))
	ids := make([]string, 0, len(postings))
	for _, post := range postings {
		links = append(links, post.Link)
		ids = append(ids, post.VacancyID)
	}
	if err := p.store.Append(ctx, links, ids); err != nil {
		return stageErr(ErrPersist, "", err)
	}
	return nil
}
