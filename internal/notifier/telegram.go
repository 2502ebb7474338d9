package notifier

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"StockAnalyzer/internal/logger"
)

// Bot is the part of *tgbotapi.BotAPI the notifier uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// TelegramNotifier sends HTML messages to a chat via the Telegram Bot API.
type TelegramNotifier struct {
	Bot        Bot
	ChatID     int64
	MaxRetries uint64
	// InitialInterval is the first retry delay; zero keeps the backoff default.
	InitialInterval time.Duration

	logger zerolog.Logger
}

// NewTelegramNotifier connects to the Bot API with optional proxy support.
func NewTelegramNotifier(botToken string, chatID int64, proxyURL string) (*TelegramNotifier, error) {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client := &http.Client{Timeout: 75 * time.Second, Transport: transport}
	bot, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return NewWithBot(bot, chatID), nil
}

// NewWithBot wraps an existing bot.
func NewWithBot(bot Bot, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		Bot:        bot,
		ChatID:     chatID,
		MaxRetries: 3,
		logger:     logger.Component("notifier"),
	}
}

// Send sends a message to the configured chat.
func (t *TelegramNotifier) Send(text string) error {
	return t.SendTo(t.ChatID, text)
}

// SendTo sends an HTML message to chatID.
func (t *TelegramNotifier) SendTo(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.Bot.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendWithRetry sends with exponential backoff, up to MaxRetries retries.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string) error {
	b := backoff.NewExponentialBackOff()
	if t.InitialInterval > 0 {
		b.InitialInterval = t.InitialInterval
	}
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := t.Send(text)
		if err != nil {
			t.logger.Warn().Err(err).Int("attempt", attempt).Msg("telegram send failed")
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, t.MaxRetries), ctx))
	if err != nil {
		return fmt.Errorf("send after %d attempts: %w", attempt, err)
	}
	return nil
}
