package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking activity to the operator chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, a *domain.Arena) {
	text := fmt.Sprintf(
		"*New booking*\n\nArena: %s (%s)\nBooked by: %s %s\nDate: %s %s",
		a.Name, a.Location, b.FirstName, b.LastName, b.Date, b.Time,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyArenaReleased(ctx context.Context, a *domain.Arena) {
	text := fmt.Sprintf(
		"*Arena released*\n\nArena: %s (%s)\nIts booking record no longer exists.",
		a.Name, a.Location,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
