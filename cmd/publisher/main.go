package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hh-publisher/internal/ai"
	"go-hh-publisher/internal/config"
	"go-hh-publisher/internal/database"
	"go-hh-publisher/internal/dedup"
	"go-hh-publisher/internal/filter"
	"go-hh-publisher/internal/logger"
	"go-hh-publisher/internal/publisher"
	"go-hh-publisher/internal/ratelimit"
	"go-hh-publisher/internal/telegram"

	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		dateFlag   string
		dryRun     bool
		noLLM      bool
		logLevel   string
	)
	pflag.StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	pflag.StringVarP(&dateFlag, "date", "d", "", "Publication day to process, YYYY-MM-DD (default today)")
	pflag.BoolVar(&dryRun, "dry-run", false, "Log messages instead of sending them, persist nothing")
	pflag.BoolVar(&noLLM, "no-llm", false, "Skip the LLM and send short messages")
	pflag.StringVar(&logLevel, "log-level", "", "Override log.level")
	pflag.Parse()

	logger.Init(logger.Config{Level: "info", Format: "pretty"})

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noLLM {
		cfg.LLM.Enabled = false
	}
	logger.Init(cfg.Log)

	if err := cfg.Validate(dryRun); err != nil {
		logger.Fatal().Err(err).Msg("❌ Invalid config")
	}

	day := time.Now()
	if dateFlag != "" {
		day, err = time.ParseInLocation(time.DateOnly, dateFlag, time.Local)
		if err != nil {
			logger.Fatal().Err(err).Str("date", dateFlag).Msg("❌ Invalid --date")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := newStore(ctx, cfg)
	defer closeStore()

	classifier, summarizer, format := newPipeline(ctx, cfg)

	var sender publisher.Sender
	if !dryRun {
		bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.Channel)
		if err != nil {
			logger.Fatal().Err(err).Msg("❌ Failed to init Telegram Bot")
		}
		logger.Info().Str("channel", cfg.Telegram.Channel).Msg("🤖 Telegram Bot initialized")
		sender = bot
	}

	opts := []publisher.Option{
		publisher.WithFormatter(format),
		publisher.WithJitter(ratelimit.NewJitter(cfg.Delivery.MinDelay.Std(), cfg.Delivery.MaxDelay.Std())),
		publisher.WithPersistMode(cfg.Delivery.Persist),
		publisher.WithDryRun(dryRun),
	}
	if repo := newArchive(ctx, cfg, day); repo != nil {
		defer repo.Close()
		opts = append(opts, publisher.WithArchive(repo))
	}

	p := publisher.New(store, classifier, summarizer, sender, opts...)
	res, err := p.Run(ctx, cfg.ProcessedCSV(day), day)
	if err != nil {
		logger.Fatal().Err(err).Str("run_id", res.RunID).Int("sent", res.Sent).Msg("❌ Publisher run failed")
	}
	logger.Info().
		Str("run_id", res.RunID).
		Int("loaded", res.Loaded).
		Int("fresh", res.Fresh).
		Int("relevant", res.Relevant).
		Int("sent", res.Sent).
		Int("skipped", res.Skipped).
		Msg("🏁 Done")
}

func newStore(ctx context.Context, cfg *config.Config) (dedup.Store, func()) {
	if cfg.State.Backend != "redis" {
		return dedup.NewFileStore(cfg.Data.SentLinksPath, cfg.Data.SentIDsPath), func() {}
	}
	rdb, err := dedup.NewRedisClient(ctx, cfg.State.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to connect to Redis")
	}
	logger.Info().Str("prefix", cfg.State.RedisPrefix).Msg("🗄️ Using Redis sent-state")
	return dedup.NewRedisStore(rdb, cfg.State.RedisPrefix), func() { _ = rdb.Close() }
}

func newPipeline(ctx context.Context, cfg *config.Config) (ai.Classifier, ai.Summarizer, publisher.Formatter) {
	if !cfg.LLM.Enabled {
		logger.Info().Bool("keyword_filter", cfg.LLM.KeywordFilter).Msg("⚙️ LLM disabled, sending short messages")
		if cfg.LLM.KeywordFilter {
			return filter.KeywordClassifier{}, ai.NoSummary{}, telegram.FormatShort
		}
		return ai.AcceptAll{}, ai.NoSummary{}, telegram.FormatShort
	}

	model, err := ai.NewModel(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.LLM.Provider).Msg("❌ Failed to init LLM")
	}
	// classifier and summarizer share one quota
	limited := ratelimit.NewRateLimitedModel(model, ratelimit.New(cfg.LLM.Interval.Std()))
	client := ai.NewLLMClient(limited)
	logger.Info().
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Dur("interval", cfg.LLM.Interval.Std()).
		Msg("🧠 LLM client initialized")
	return client, client, telegram.FormatPosting
}

// newArchive connects the optional Postgres archive. Failures disable it.
func newArchive(ctx context.Context, cfg *config.Config, day time.Time) *database.Repository {
	if cfg.Archive.DatabaseURL == "" {
		return nil
	}
	repo, err := database.ConnectDB(ctx, cfg.Archive.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Archive unavailable, continuing without it")
		return nil
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Warn().Err(err).Msg("⚠️ Archive schema check failed, continuing without it")
		repo.Close()
		return nil
	}
	if n, err := repo.CountPublished(ctx, day); err == nil {
		logger.Info().Int("published_today", n).Msg("🗃️ Archive connected")
	}
	return repo
}
