package main

import (
	"fmt"

	"go-hh-publisher/internal/config"
)

func mask(s string) string {
	if len(s) <= 10 {
		return "***"
	}
	return s[:10] + "..."
}

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Telegram Token: %s\n", mask(cfg.Telegram.Token))
	fmt.Printf("   Channel: %s\n", cfg.Telegram.Channel)
	fmt.Printf("   Processed dir: %s\n", cfg.Data.ProcessedDir)
	fmt.Printf("   LLM: enabled=%t provider=%s model=%s interval=%s\n",
		cfg.LLM.Enabled, cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Interval.Std())
	fmt.Printf("   Delivery: %s..%s, persist=%s\n",
		cfg.Delivery.MinDelay.Std(), cfg.Delivery.MaxDelay.Std(), cfg.Delivery.Persist)
	fmt.Printf("   State backend: %s\n", cfg.State.Backend)
	if err := cfg.Validate(false); err != nil {
		fmt.Printf("⚠️ Not ready to publish: %v\n", err)
	}
}
