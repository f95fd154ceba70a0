package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot posts formatted vacancies to one channel or chat.
type Bot struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	channel string
}

// NewBot connects to the Bot API. target is "@channel" or a numeric chat id.
func NewBot(token, target string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return newBot(api, target)
}

// NewBotWithEndpoint is NewBot against a custom API endpoint, e.g. a local
// Bot API server. endpoint has the form "https://host/bot%s/%s".
func NewBotWithEndpoint(token, target, endpoint string, client tgbotapi.HTTPClient) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return newBot(api, target)
}

func newBot(api *tgbotapi.BotAPI, target string) (*Bot, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, fmt.Errorf("telegram target is empty")
	}

	b := &Bot{api: api}
	if id, err := strconv.ParseInt(target, 10, 64); err == nil {
		b.chatID = id
	} else {
		if !strings.HasPrefix(target, "@") {
			target = "@" + target
		}
		b.channel = target
	}
	return b, nil
}

// Send delivers text with legacy Markdown parsing.
func (b *Bot) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg tgbotapi.MessageConfig
	if b.chatID != 0 {
		msg = tgbotapi.NewMessage(b.chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(b.channel, text)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
