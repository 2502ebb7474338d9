package notifier

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CommandHandler answers a bot command such as "analyze" with its
// arguments. An empty reply sends nothing.
type CommandHandler func(ctx context.Context, command, args string) string

// StartPolling long-polls for bot commands and replies in the chat they came
// from. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.Bot.GetUpdatesChan(u)
	t.logger.Info().Msg("telegram polling started")

	for {
		select {
		case <-ctx.Done():
			t.Bot.StopReceivingUpdates()
			t.logger.Info().Msg("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			msg := update.Message
			if msg == nil || msg.Chat == nil || !msg.IsCommand() {
				continue
			}
			command := strings.ToLower(msg.Command())
			args := strings.TrimSpace(msg.CommandArguments())
			t.logger.Info().Str("command", command).Str("args", args).Int64("chat", msg.Chat.ID).Msg("received command")

			reply := handler(ctx, command, args)
			if reply == "" {
				continue
			}
			if err := t.SendTo(msg.Chat.ID, reply); err != nil {
				t.logger.Error().Err(err).Msg("send reply")
			}
		}
	}
}
