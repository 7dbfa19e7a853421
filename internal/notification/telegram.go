package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	loc    *time.Location
	logger logger.Logger
}

// NewTelegramNotifier returns a notifier that only logs when token is empty.
// Times in messages are rendered in the club's time zone.
func NewTelegramNotifier(token string, loc *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	if loc == nil {
		loc = time.UTC
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, loc: loc, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, loc: loc, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyHeld(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Корт забронирован!*\n\n"+"%s\n"+"Сумма: %s\n"+"Подтвердите бронь до %s, иначе она будет снята.",
		n.slot(r), formatAmount(r.TotalCents), n.holdDeadline(r),
	)
	n.send(ctx, r.Owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyConfirmed(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"%s\n"+"Сумма: %s",
		n.slot(r), formatAmount(r.TotalCents),
	)
	n.send(ctx, r.Owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf("*Бронирование отменено*\n\n%s", n.slot(r))
	n.send(ctx, r.Owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyExpired(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf("*Бронь снята (истекло время подтверждения)*\n\n%s", n.slot(r))
	n.send(ctx, r.Owner.TelegramChatID, text)
}

func (n *TelegramNotifier) slot(r *domain.Reservation) string {
	courts := "Корт"
	if len(r.CourtIDs) > 1 {
		courts = fmt.Sprintf("Корты (%d)", len(r.CourtIDs))
	}
	return fmt.Sprintf("%s: %s - %s",
		courts,
		r.StartAt.In(n.loc).Format(dateLayout),
		r.EndAt.In(n.loc).Format("15:04"),
	)
}

func (n *TelegramNotifier) holdDeadline(r *domain.Reservation) string {
	if r.HoldExpiresAt == nil {
		return "-"
	}
	return r.HoldExpiresAt.In(n.loc).Format(dateLayout)
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
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
