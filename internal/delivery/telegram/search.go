package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-avia-bot/internal/usecase"
)

// handleFlightRequest runs one free-text search: parse, query, respond.
// Called from worker pool goroutines.
func (h *BotHandler) handleFlightRequest(ctx context.Context, req *searchRequest) {
	query, err := h.parser.Parse(req.text)
	if err != nil {
		h.replyParseError(req.chatID, err)
		return
	}

	h.sendMessage(req.chatID, "Ищу билеты (включая с пересадками)...")
	h.sendTyping(req.chatID)

	result, err := h.searchUC.Search(ctx, query)
	if err != nil {
		h.sendMessage(req.chatID, "⚠️ Сервис поиска сейчас недоступен. Попробуйте чуть позже.")
		return
	}

	if !result.Found() {
		h.replyNothingFound(req.chatID, query)
		return
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("✈️ Самый дешёвый (%d ₽)", result.MinPrice), "show_top_"+result.CacheID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Все варианты", "show_all_"+result.CacheID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👀 Следить за ценой", "watch_all_"+result.CacheID),
		),
	)
	h.sendHTML(req.chatID, "✅ Билеты найдены! Выберите действие:", &kb)
}

func (h *BotHandler) replyParseError(chatID int64, err error) {
	var cityErr *parser.UnknownCityError
	switch {
	case errors.As(err, &cityErr):
		role := "город прилёта"
		if cityErr.Role == "origin" {
			role = "город вылета"
		}
		h.sendMessage(chatID, fmt.Sprintf("❌ Не знаю %s: %s\nПопробуйте написать по-другому.", role, cityErr.Name))
	case errors.Is(err, parser.ErrBadFormat):
		h.sendHTML(chatID, "❌ Неверный формат запроса.\n\n"+
			"Нажмите /start → «ℹ️ Показать справку» чтобы узнать правильный формат.", nil)
	default:
		h.sendMessage(chatID, "⚠️ Не получилось обработать запрос. Попробуйте ещё раз.")
	}
}

// replyNothingFound points the user at the site with a prebuilt search
// link for their exact route.
func (h *BotHandler) replyNothingFound(chatID int64, query *entity.FlightQuery) {
	origin := query.Origin.Codes(cities.GlobalHubs)[0]
	link := h.links.SearchPageLink(origin, query.Destination, usecase.SearchParams{
		DepartDate:     query.DepartDate,
		ReturnDate:     query.ReturnDate,
		PassengersCode: query.Passengers.Code(),
	})
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔍 Посмотреть на Aviasales", link),
		),
	)
	h.sendHTML(chatID, "Билеты не найдены 😢\nПопробуйте другие даты или поискать напрямую:", &kb)
}
