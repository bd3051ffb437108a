package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramSender(token string, logger logger.Logger) (*TelegramSender, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramSender{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot, logger: logger}, nil
}

// Send messages the renter's Telegram chat, if the renter linked one.
func (n *TelegramSender) Send(_ context.Context, event domain.BookingEvent) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("kind", string(event.Kind)))
		return nil
	}

	chatID, ok := event.Renter.TelegramChat()
	if !ok {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("kind", string(event.Kind)))
		return nil
	}

	subject, body := render(event)
	msg := tgbotapi.NewMessage(chatID, "*"+subject+"*\n\n"+body)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram chat %d: %w", chatID, err)
	}
	return nil
}
