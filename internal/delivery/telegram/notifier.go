package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/usecase"
)

// priceNotifier sends price-change alerts on behalf of the watcher.
type priceNotifier struct {
	handler *BotHandler
}

// NotifyPriceChange sends the alert for one watch. Returns
// usecase.ErrRecipientGone when the user blocked the bot so the watcher can
// drop the watch.
func (n *priceNotifier) NotifyPriceChange(ctx context.Context, w entity.PriceWatch, watchKey string, newPrice int, bookingLink string) error {
	diff := newPrice - w.CurrentPrice
	emoji := "📉"
	verdict := "Цена снизилась!"
	if diff > 0 {
		emoji = "📈"
		verdict = "Цена выросла"
	}
	absDiff := diff
	if absDiff < 0 {
		absDiff = -absDiff
	}

	route := fmt.Sprintf("%s → %s", cities.DisplayName(w.Origin), cities.DisplayName(w.Dest))
	dates := w.DepartDate
	if w.ReturnDate != "" {
		dates += " - " + w.ReturnDate
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>%s</b>\n\n", emoji, verdict))
	b.WriteString(fmt.Sprintf("✈️ Маршрут: <b>%s</b>\n", route))
	b.WriteString(fmt.Sprintf("📅 Даты: <b>%s</b>\n\n", dates))
	b.WriteString(fmt.Sprintf("Было: <b>%d ₽</b>\n", w.CurrentPrice))
	b.WriteString(fmt.Sprintf("Стало: <b>%d ₽</b>\n", newPrice))
	b.WriteString(fmt.Sprintf("Разница: <b>%d ₽</b>\n", absDiff))
	if diff < 0 {
		b.WriteString("\n🔥 Спешите забронировать, пока цена не изменилась!")
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(
				fmt.Sprintf("✈️ Забронировать за %d ₽", newPrice), bookingLink),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Больше не следить", "unwatch_"+watchKey),
		),
	)

	msg := tgbotapi.NewMessage(w.UserID, b.String())
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = keyboard

	if _, err := n.handler.bot.Send(msg); err != nil {
		if isRecipientGone(err) {
			return usecase.ErrRecipientGone
		}
		return err
	}
	return nil
}

// isRecipientGone matches the Telegram API errors that mean the chat is
// permanently unreachable.
func isRecipientGone(err error) bool {
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "blocked") ||
		strings.Contains(text, "user is deactivated") ||
		strings.Contains(text, "chat not found") ||
		strings.Contains(text, "user not found") ||
		strings.Contains(text, "forbidden")
}
