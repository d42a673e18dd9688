package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/storage"
)

const welcomeText = "👋 Привет! Я — ваш личный помощник по поиску авиабилетов!\n\n" +
	"Выберите удобный способ:\n" +
	"• ✈️ <b>Быстрый поиск</b> — напишите запрос в формате:\n" +
	"  <code>Город - Город ДД.ММ</code>\n\n" +
	"• 🧙 <b>Пошаговый поиск</b> — команда /wizard\n\n" +
	"• ℹ️ <b>Справка по формату</b> — как правильно писать запросы"

const helpText = "ℹ️ <b>Как писать запросы</b>\n\n" +
	"📌 Базовый формат:\n" +
	"<code>Город - Город ДД.ММ</code>\n\n" +
	"✅ Примеры:\n" +
	"• <code>Москва - Сочи 10.03</code>\n" +
	"• <code>Москва - Сочи 10.03 - 15.03</code> (туда-обратно)\n" +
	"• <code>Москва - Бангкок 20.03 2 взр.</code>\n" +
	"• <code>Везде - Стамбул 10.03</code> (поиск из всех городов)\n\n" +
	"💡 Советы:\n" +
	"• Города: на русском или английском (Москва / Moscow)\n" +
	"• Дата: всегда <b>ДД.ММ</b> (15.03 = 15 марта)\n" +
	"• Разделители: дефис, стрелка или пробел работают одинаково"

const examplesText = "✈️ <b>Готовые примеры для копирования:</b>\n\n" +
	"<code>Москва - Сочи 10.03</code>\n" +
	"<code>Пекин - Мальдивы 15.03 - 25.03</code>\n" +
	"<code>Везде - Дубай 20.03</code>\n" +
	"<code>Санкт Петербург - Пхукет 05.04 2 взр.</code>\n\n" +
	"Просто скопируйте любой пример и отправьте боту!"

func startKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Показать справку", "show_help"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✈️ Примеры запросов", "show_examples"),
		),
	)
	return &kb
}

func backKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩️ Назад", "main_menu"),
		),
	)
	return &kb
}

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		h.clearWizard(userID)
		if h.store.IsFirstTimeUser(ctx, userID) {
			h.sendHTML(chatID, welcomeText+"\n\n"+examplesText, startKeyboard())
			return
		}
		h.sendHTML(chatID, welcomeText, startKeyboard())
	case "help":
		h.sendHTML(chatID, helpText, backKeyboard())
	case "wizard":
		h.startWizard(ctx, userID, chatID)
	case "watches":
		h.handleWatchesCommand(ctx, userID, chatID)
	case "cancel":
		if _, ok := h.getWizard(userID); ok {
			h.clearWizard(userID)
			h.sendMessage(chatID, "❌ Поиск отменён. Напишите новый запрос или /start.")
			return
		}
		h.sendMessage(chatID, "Нечего отменять. Напишите запрос или /start.")
	default:
		h.sendMessage(chatID, "Не знаю такую команду. Попробуйте /start или /help.")
	}
}

// handleWatchesCommand lists the user's active price watches with
// unsubscribe buttons.
func (h *BotHandler) handleWatchesCommand(ctx context.Context, userID, chatID int64) {
	if !h.watchUC.Enabled() {
		h.sendMessage(chatID, "⚠️ Отслеживание цен сейчас недоступно.")
		return
	}
	watches, err := h.watchUC.List(ctx, userID)
	if err != nil {
		h.sendMessage(chatID, "⚠️ Не получилось загрузить отслеживания. Попробуйте позже.")
		return
	}
	if len(watches) == 0 {
		h.sendMessage(chatID, "У вас нет активных отслеживаний.\nНайдите билеты и нажмите «👀 Следить за ценой».")
		return
	}

	var b strings.Builder
	b.WriteString("👀 <b>Ваши отслеживания:</b>\n\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, w := range watches {
		route := fmt.Sprintf("%s → %s", cities.DisplayName(w.Origin), cities.DisplayName(w.Dest))
		b.WriteString(fmt.Sprintf("• %s, %s — %d ₽\n", route, w.DepartDate, w.CurrentPrice))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ "+route, "unwatch_"+storage.WatchKey(w)),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	h.sendHTML(chatID, b.String(), &kb)
}
