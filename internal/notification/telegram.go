package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Room held!*\n\nRoom %s (%s)\n%s\nTotal: %s\nComplete the payment soon or the hold will expire.",
		b.RoomNumber, b.RoomTypeSlug, formatStay(b), formatCents(b.TotalCents),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\nRoom %s (%s)\n%s",
		b.RoomNumber, b.RoomTypeSlug, formatStay(b),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking, c domain.Cancellation) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nRoom %s (%s)\n%s\nRefund: %s",
		b.RoomNumber, b.RoomTypeSlug, formatStay(b), formatCents(c.RefundCents),
	)
	if c.PenaltyApplied {
		text += "\nA one-night penalty was withheld (cancelled within 48h of check-in)."
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking expired (payment time ran out)*\n\nRoom %s (%s)\n%s",
		b.RoomNumber, b.RoomTypeSlug, formatStay(b),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func formatStay(b *domain.Booking) string {
	return fmt.Sprintf("%s - %s",
		b.Stay.CheckIn.Format("02.01.2006"),
		b.Stay.CheckOut.Format("02.01.2006"),
	)
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
