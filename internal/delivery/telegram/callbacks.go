package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-avia-bot/internal/usecase"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

func (h *BotHandler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "", false)
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case data == "show_help":
		h.editHTML(chatID, cb.Message.MessageID, helpText, backKeyboard())
		h.answerCallback(cb.ID, "", false)
	case data == "show_examples":
		h.editHTML(chatID, cb.Message.MessageID, examplesText, backKeyboard())
		h.answerCallback(cb.ID, "", false)
	case data == "main_menu":
		h.clearWizard(userID)
		h.editHTML(chatID, cb.Message.MessageID, welcomeText, startKeyboard())
		h.answerCallback(cb.ID, "", false)
	case strings.HasPrefix(data, "show_top_"):
		h.handleShowTop(ctx, cb, strings.TrimPrefix(data, "show_top_"))
	case strings.HasPrefix(data, "show_all_"):
		h.handleShowAll(ctx, cb, strings.TrimPrefix(data, "show_all_"))
	case strings.HasPrefix(data, "watch_all_"):
		h.handleWatchAll(ctx, cb, strings.TrimPrefix(data, "watch_all_"))
	case strings.HasPrefix(data, "unwatch_"):
		h.handleUnwatch(ctx, cb, strings.TrimPrefix(data, "unwatch_"))
	default:
		if h.handleWizardCallback(ctx, cb) {
			return
		}
		h.answerCallback(cb.ID, "", false)
	}
}

// loadSnapshot fetches a cached search for a callback, answering with the
// standard "stale" alert when it expired.
func (h *BotHandler) loadSnapshot(ctx context.Context, cb *tgbotapi.CallbackQuery, cacheID string) *entity.SearchSnapshot {
	snap, err := h.searchUC.CachedSearch(ctx, cacheID)
	if err != nil {
		logger.ErrorLogger.Printf("loading search cache %s: %v", cacheID, err)
	}
	if snap == nil || len(snap.Flights) == 0 {
		h.answerCallback(cb.ID, "Данные устарели", true)
		return nil
	}
	return snap
}

func snapshotParams(snap *entity.SearchSnapshot) usecase.SearchParams {
	return usecase.SearchParams{
		DepartDate:     snap.OriginalDepart,
		ReturnDate:     snap.OriginalReturn,
		PassengersCode: snap.PassengersCode,
	}
}

func (h *BotHandler) handleShowTop(ctx context.Context, cb *tgbotapi.CallbackQuery, cacheID string) {
	snap := h.loadSnapshot(ctx, cb, cacheID)
	if snap == nil {
		return
	}
	top := usecase.CheapestOffer(snap.Flights)
	link := h.links.BookingLink(*top, snap.DestIATA, snapshotParams(snap))

	text := formatTopOffer(*top, snap)
	if snap.Everywhere {
		text = formatEverywhereOffer(*top, snap)
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(fmt.Sprintf("✈️ Забронировать (%s)", formatPrice(*top)), link),
		),
	}
	if snap.Everywhere {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🌍 Все направления",
				h.links.MapLink(top.Origin, snap.OriginalDepart, snap.PassengersCode)),
		))
	}
	if _, ok := cities.TransferAirports[snap.DestIATA]; ok && h.transfers != nil {
		if transfers, err := h.transfers.SearchTransfers(ctx, snap.DestIATA,
			parser.NormalizeDate(snap.OriginalDepart, time.Now()), 1); err == nil {
			text += formatTransferOptions(transfers, snap.DestIATA)
		}
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("👀 Следить за ценой", "watch_all_"+cacheID),
	))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	h.sendHTML(cb.Message.Chat.ID, text, &kb)
	h.answerCallback(cb.ID, "", false)
}

func (h *BotHandler) handleShowAll(ctx context.Context, cb *tgbotapi.CallbackQuery, cacheID string) {
	snap := h.loadSnapshot(ctx, cb, cacheID)
	if snap == nil {
		return
	}
	ranked := usecase.RankOffers(snap.Flights, -1)
	link := h.links.SearchPageLink(ranked[0].Origin, snap.DestIATA, snapshotParams(snap))

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👀 Следить за ценой", "watch_all_"+cacheID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("✈️ Все предложения", link),
		),
	)
	h.sendHTML(cb.Message.Chat.ID, formatOfferList(ranked, snap, link), &kb)
	h.answerCallback(cb.ID, "", false)
}

func (h *BotHandler) handleWatchAll(ctx context.Context, cb *tgbotapi.CallbackQuery, cacheID string) {
	if !h.watchUC.Enabled() {
		h.answerCallback(cb.ID, "Отслеживание сейчас недоступно", true)
		return
	}
	snap := h.loadSnapshot(ctx, cb, cacheID)
	if snap == nil {
		return
	}
	key, err := h.watchUC.CreateFromSnapshot(ctx, cb.From.ID, snap, 0)
	if err != nil || key == "" {
		logger.ErrorLogger.Printf("saving watch for %d: %v", cb.From.ID, err)
		h.answerCallback(cb.ID, "Не получилось сохранить отслеживание", true)
		return
	}
	best := usecase.CheapestOffer(snap.Flights)
	h.sendHTML(cb.Message.Chat.ID, fmt.Sprintf(
		"👀 Слежу за ценой <b>%s → %s</b> (%s), сейчас %s.\n"+
			"Сообщу, когда цена заметно изменится. Отписаться: /watches",
		cities.DisplayName(best.Origin), cities.DisplayName(snap.DestIATA),
		snap.DisplayDepart, formatPrice(*best)), nil)
	h.answerCallback(cb.ID, "Отслеживание включено", false)
}

func (h *BotHandler) handleUnwatch(ctx context.Context, cb *tgbotapi.CallbackQuery, key string) {
	if err := h.watchUC.Remove(ctx, cb.From.ID, key); err != nil {
		logger.ErrorLogger.Printf("removing watch %s: %v", key, err)
		h.answerCallback(cb.ID, "Не получилось отписаться", true)
		return
	}
	h.answerCallback(cb.ID, "Отслеживание выключено", false)
	h.sendMessage(cb.Message.Chat.ID, "❌ Больше не слежу за этим маршрутом.")
}
