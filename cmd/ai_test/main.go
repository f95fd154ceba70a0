package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go-hh-publisher/internal/ai"
	"go-hh-publisher/internal/config"
	"go-hh-publisher/internal/models"
	"go-hh-publisher/internal/ratelimit"
	"go-hh-publisher/internal/telegram"

	"github.com/spf13/pflag"
)

const sampleDescription = `Kaspi.kz ищет Data Analyst в команду маркетплейса.
Обязанности:
- строить отчёты и дашборды в Tableau
- проводить A/B тесты
Требования:
- SQL, Python (pandas)
- опыт от 1 года
О компании: крупнейшая финтех-экосистема Казахстана.`

func main() {
	var (
		configPath string
		title      string
	)
	pflag.StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	pflag.StringVarP(&title, "title", "t", "Data Analyst", "Posting title to classify")
	pflag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LLM.APIKey == "" {
		log.Println("LLM_API_KEY (or GEMINI_API_KEY) is not set. Please set it to test the AI.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	model, err := ai.NewModel(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("NewModel failed: %v", err)
	}
	client := ai.NewLLMClient(ratelimit.NewRateLimitedModel(model, ratelimit.New(cfg.LLM.Interval.Std())))

	fmt.Printf("Asking %s (%s) whether %q is relevant...\n", cfg.LLM.Provider, cfg.LLM.Model, title)
	relevant, err := client.IsRelevant(ctx, title, sampleDescription)
	if err != nil {
		log.Fatalf("IsRelevant failed: %v", err)
	}
	fmt.Println("Relevant:", relevant)

	fmt.Println("\nSummarizing the description...")
	summary, err := client.Summarize(ctx, sampleDescription)
	if err != nil {
		log.Fatalf("Summarize failed: %v", err)
	}
	raw, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(raw))

	fmt.Println("\nMessage preview:")
	fmt.Println(telegram.FormatPosting(models.Posting{
		Link:    "https://hh.kz/vacancy/100000",
		Title:   title,
		Company: "Kaspi.kz",
	}, summary))
}
