// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values
// Validate config

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go-hh-publisher/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

var ErrMissing = errors.New("missing required setting")

type PersistMode string

const (
	PersistPerMessage PersistMode = "per_message"
	PersistBatch      PersistMode = "batch"
)

// Duration lets YAML carry "4.5s" style values.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Telegram struct {
	Token string `yaml:"token"`
	// "@channel" or a numeric chat id
	Channel string `yaml:"channel"`
}

type Data struct {
	ProcessedDir  string `yaml:"processed_dir"`
	SentLinksPath string `yaml:"sent_links_path"`
	SentIDsPath   string `yaml:"sent_ids_path"`
}

type LLM struct {
	Enabled  bool     `yaml:"enabled"`
	Provider string   `yaml:"provider"` // gemini or openai
	APIKey   string   `yaml:"api_key"`
	Model    string   `yaml:"model"`
	BaseURL  string   `yaml:"base_url"`
	Interval Duration `yaml:"interval"`
	// with the LLM disabled, keep only titles matching the data keywords
	KeywordFilter bool `yaml:"keyword_filter"`
}

type Delivery struct {
	MinDelay Duration    `yaml:"min_delay"`
	MaxDelay Duration    `yaml:"max_delay"`
	Persist  PersistMode `yaml:"persist"`
}

type State struct {
	Backend     string `yaml:"backend"` // file or redis
	RedisURL    string `yaml:"redis_url"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type Archive struct {
	DatabaseURL string `yaml:"database_url"`
}

type Config struct {
	Telegram Telegram      `yaml:"telegram"`
	Data     Data          `yaml:"data"`
	LLM      LLM           `yaml:"llm"`
	Delivery Delivery      `yaml:"delivery"`
	State    State         `yaml:"state"`
	Archive  Archive       `yaml:"archive"`
	Log      logger.Config `yaml:"log"`
}

// Load reads .env and the YAML file at path, applies env overrides and
// defaults. A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LLM: LLM{Enabled: true},
	}
	// seeded before parsing so an explicit 0s in YAML is kept
	cfg.Delivery.MinDelay = Duration(3 * time.Second)
	cfg.Delivery.MaxDelay = Duration(10 * time.Second)

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		logger.Warn().Str("path", path).Msg("⚠️ Config file not found, using env and defaults")
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if channel := os.Getenv("CHANNEL_USERNAME"); channel != "" {
		cfg.Telegram.Channel = channel
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if enabled := os.Getenv("LLM_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			cfg.LLM.Enabled = v
		}
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		cfg.State.RedisURL = url
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Archive.DatabaseURL = url
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Data.ProcessedDir == "" {
		cfg.Data.ProcessedDir = "data/processed"
	}
	if cfg.Data.SentLinksPath == "" {
		cfg.Data.SentLinksPath = "data/sent_links.txt"
	}
	if cfg.Data.SentIDsPath == "" {
		cfg.Data.SentIDsPath = "data/sent_ids.txt"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case "openai":
			cfg.LLM.Model = "llama-3.3-70b-versatile"
		default:
			cfg.LLM.Model = "gemini-2.0-flash"
		}
	}
	// 15 requests per minute
	if cfg.LLM.Interval == 0 {
		cfg.LLM.Interval = Duration(4500 * time.Millisecond)
	}
	if cfg.Delivery.Persist == "" {
		cfg.Delivery.Persist = PersistPerMessage
	}
	if cfg.State.Backend == "" {
		cfg.State.Backend = "file"
	}
	if cfg.State.RedisPrefix == "" {
		cfg.State.RedisPrefix = "hh-publisher"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "pretty"
	}
}

// Validate checks the settings a real (non dry-run) publish needs.
func (c *Config) Validate(dryRun bool) error {
	if !dryRun {
		if c.Telegram.Token == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN: %w", ErrMissing)
		}
		if c.Telegram.Channel == "" {
			return fmt.Errorf("CHANNEL_USERNAME: %w", ErrMissing)
		}
	}
	if c.LLM.Enabled {
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY or GEMINI_API_KEY: %w", ErrMissing)
		}
		if c.LLM.Provider != "gemini" && c.LLM.Provider != "openai" {
			return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
		}
	}
	if c.Delivery.MinDelay > c.Delivery.MaxDelay {
		return fmt.Errorf("delivery.min_delay %s exceeds max_delay %s",
			c.Delivery.MinDelay.Std(), c.Delivery.MaxDelay.Std())
	}
	switch c.Delivery.Persist {
	case PersistPerMessage, PersistBatch:
	default:
		return fmt.Errorf("unknown delivery.persist %q", c.Delivery.Persist)
	}
	switch c.State.Backend {
	case "file":
	case "redis":
		if c.State.RedisURL == "" {
			return fmt.Errorf("REDIS_URL: %w", ErrMissing)
		}
	default:
		return fmt.Errorf("unknown state.backend %q", c.State.Backend)
	}
	return nil
}

// ProcessedCSV is the daily cleaner output for day.
func (c *Config) ProcessedCSV(day time.Time) string {
	return fmt.Sprintf("%s/vacancies_clean_%s.csv", c.Data.ProcessedDir, day.Format("2006-01-02"))
}
