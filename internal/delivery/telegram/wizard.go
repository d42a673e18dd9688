package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
)

// wizardStage is the step a guided search is waiting on.
type wizardStage int

const (
	stageRoute wizardStage = iota
	stageDepartDate
	stageNeedReturn
	stageReturnDate
	stageAdults
	stageChildren
	stageInfants
	stageConfirm
)

// wizardSession is one user's in-progress guided search. Sessions are
// in-memory only; a restart drops them.
type wizardSession struct {
	stage      wizardStage
	origin     entity.Origin
	originName string
	destIATA   string
	destName   string
	departDate string
	returnDate string
	adults     int
	children   int
	infants    int
}

func (h *BotHandler) getWizard(userID int64) (*wizardSession, bool) {
	h.wizardMu.RLock()
	defer h.wizardMu.RUnlock()
	s, ok := h.wizards[userID]
	return s, ok
}

func (h *BotHandler) setWizard(userID int64, s *wizardSession) {
	h.wizardMu.Lock()
	h.wizards[userID] = s
	h.wizardMu.Unlock()
}

func (h *BotHandler) clearWizard(userID int64) {
	h.wizardMu.Lock()
	delete(h.wizards, userID)
	h.wizardMu.Unlock()
}

// startWizard begins the guided search dialog.
func (h *BotHandler) startWizard(ctx context.Context, userID, chatID int64) {
	h.setWizard(userID, &wizardSession{stage: stageRoute, adults: 1})
	h.sendHTML(chatID, "🧙 <b>Пошаговый поиск</b>\n\n"+
		"Напишите маршрут: <code>Город - Город</code>\n"+
		"Например: <code>Москва - Сочи</code>\n\n"+
		"Отмена: /cancel", nil)
}

// handleWizardInput consumes a text message for the active session stage.
func (h *BotHandler) handleWizardInput(ctx context.Context, message *tgbotapi.Message, s *wizardSession) {
	userID := message.From.ID
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch s.stage {
	case stageRoute:
		h.wizardRoute(userID, chatID, text, s)
	case stageDepartDate:
		h.wizardDepartDate(userID, chatID, text, s)
	case stageReturnDate:
		h.wizardReturnDate(userID, chatID, text, s)
	default:
		// Button stages ignore stray text.
		h.sendMessage(chatID, "Выберите вариант кнопкой ниже или /cancel.")
	}
}

// wizardRoute parses "Город - Город" (or "везде - Город").
func (h *BotHandler) wizardRoute(userID, chatID int64, text string, s *wizardSession) {
	lower := strings.ToLower(text)
	var parts []string
	if strings.ContainsAny(lower, "-→—>") {
		parts = strings.FieldsFunc(lower, func(r rune) bool {
			return r == '-' || r == '→' || r == '—' || r == '>'
		})
	} else {
		parts = strings.Fields(lower)
	}
	if len(parts) < 2 {
		h.sendMessage(chatID, "❌ Не понял маршрут. Напишите: Город - Город")
		return
	}
	originName := strings.TrimSpace(parts[0])
	destName := strings.TrimSpace(parts[1])

	destIATA, ok := cities.Resolve(destName)
	if !ok {
		h.sendMessage(chatID, fmt.Sprintf("❌ Не знаю город прилёта: %s\nПопробуйте написать по-другому.", destName))
		return
	}
	if originName == "везде" || originName == "everywhere" {
		s.origin = entity.AllHubs()
	} else {
		code, ok := cities.Resolve(originName)
		if !ok {
			h.sendMessage(chatID, fmt.Sprintf("❌ Не знаю город вылета: %s\nПопробуйте написать по-другому.", originName))
			return
		}
		s.origin = entity.SingleOrigin(code)
	}
	s.originName = originName
	s.destIATA = destIATA
	s.destName = destName
	s.stage = stageDepartDate
	h.setWizard(userID, s)
	h.sendHTML(chatID, "📅 Дата вылета в формате <b>ДД.ММ</b> (например, 15.03):", nil)
}

func (h *BotHandler) wizardDepartDate(userID, chatID int64, text string, s *wizardSession) {
	if !parser.ValidateDate(text) {
		h.sendMessage(chatID, "❌ Неверный формат даты. Напишите ДД.ММ, например 15.03")
		return
	}
	s.departDate = text
	s.stage = stageNeedReturn
	h.setWizard(userID, s)

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩️ Туда-обратно", "need_return_yes"),
			tgbotapi.NewInlineKeyboardButtonData("➡️ Только туда", "need_return_no"),
		),
	)
	h.sendHTML(chatID, "Нужен обратный билет?", &kb)
}

func (h *BotHandler) wizardReturnDate(userID, chatID int64, text string, s *wizardSession) {
	if !parser.ValidateDate(text) {
		h.sendMessage(chatID, "❌ Неверный формат даты. Напишите ДД.ММ, например 25.03")
		return
	}
	s.returnDate = text
	s.stage = stageAdults
	h.setWizard(userID, s)
	h.askAdults(chatID)
}

func countKeyboard(prefix string, max int) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for i := 0; i <= max; i++ {
		if prefix == "adults" && i == 0 {
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(i), fmt.Sprintf("%s_%d", prefix, i)))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(row)
	return &kb
}

func (h *BotHandler) askAdults(chatID int64) {
	h.sendHTML(chatID, "👤 Сколько взрослых?", countKeyboard("adults", 6))
}

// handleWizardCallback consumes wizard button presses. Returns false when
// the callback belongs to someone else's flow.
func (h *BotHandler) handleWizardCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) bool {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	data := cb.Data

	s, ok := h.getWizard(userID)
	if !ok {
		if data == "cancel_search" {
			h.answerCallback(cb.ID, "", false)
			return true
		}
		return false
	}

	switch {
	case data == "cancel_search":
		h.clearWizard(userID)
		h.answerCallback(cb.ID, "", false)
		h.sendMessage(chatID, "❌ Поиск отменён. Напишите новый запрос или /start.")
	case data == "need_return_yes":
		s.stage = stageReturnDate
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.sendHTML(chatID, "📅 Дата возврата в формате <b>ДД.ММ</b>:", nil)
	case data == "need_return_no":
		s.returnDate = ""
		s.stage = stageAdults
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.askAdults(chatID)
	case strings.HasPrefix(data, "adults_"):
		s.adults, _ = strconv.Atoi(strings.TrimPrefix(data, "adults_"))
		s.stage = stageChildren
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.sendHTML(chatID, "🧒 Сколько детей (2-11 лет)?", countKeyboard("children", 6))
	case strings.HasPrefix(data, "children_"):
		s.children, _ = strconv.Atoi(strings.TrimPrefix(data, "children_"))
		s.stage = stageInfants
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.sendHTML(chatID, "👶 Сколько младенцев (до 2 лет)?", countKeyboard("infants", 3))
	case strings.HasPrefix(data, "infants_"):
		s.infants, _ = strconv.Atoi(strings.TrimPrefix(data, "infants_"))
		s.stage = stageConfirm
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.showWizardSummary(chatID, s)
	case data == "confirm_search":
		h.answerCallback(cb.ID, "", false)
		h.runWizardSearch(ctx, userID, chatID, s)
	case data == "edit_route":
		s.stage = stageRoute
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.sendMessage(chatID, "Напишите маршрут заново: Город - Город")
	case data == "edit_dates":
		s.stage = stageDepartDate
		h.setWizard(userID, s)
		h.answerCallback(cb.ID, "", false)
		h.sendMessage(chatID, "📅 Дата вылета в формате ДД.ММ:")
	default:
		return false
	}
	return true
}

func (h *BotHandler) showWizardSummary(chatID int64, s *wizardSession) {
	passengers := entity.NewPassengerComposition(s.adults, s.children, s.infants)
	origin := s.originName
	if s.origin.IsEverywhere() {
		origin = "везде"
	}

	var b strings.Builder
	b.WriteString("📝 <b>Проверьте запрос:</b>\n\n")
	b.WriteString(fmt.Sprintf("📍 Маршрут: <b>%s → %s</b>\n", origin, s.destName))
	b.WriteString(fmt.Sprintf("📅 Вылет: <b>%s</b>\n", s.departDate))
	if s.returnDate != "" {
		b.WriteString(fmt.Sprintf("📅 Возврат: <b>%s</b>\n", s.returnDate))
	}
	b.WriteString(fmt.Sprintf("👥 Пассажиры: <b>%s</b>\n", passengers.Description()))

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Искать", "confirm_search"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Маршрут", "edit_route"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Даты", "edit_dates"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", "cancel_search"),
		),
	)
	h.sendHTML(chatID, b.String(), &kb)
}

func (h *BotHandler) runWizardSearch(ctx context.Context, userID, chatID int64, s *wizardSession) {
	query := &entity.FlightQuery{
		Origin:      s.origin,
		OriginName:  s.originName,
		Destination: s.destIATA,
		DestName:    s.destName,
		DepartDate:  s.departDate,
		ReturnDate:  s.returnDate,
		Passengers:  entity.NewPassengerComposition(s.adults, s.children, s.infants),
	}
	h.clearWizard(userID)

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout*3)
	defer cancel()

	h.sendMessage(chatID, "Ищу билеты (включая с пересадками)...")
	h.sendTyping(chatID)

	result, err := h.searchUC.Search(ctx, query)
	if err != nil {
		h.sendMessage(chatID, "⚠️ Сервис поиска сейчас недоступен. Попробуйте чуть позже.")
		return
	}
	if !result.Found() {
		h.replyNothingFound(chatID, query)
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
	h.sendHTML(chatID, "✅ Билеты найдены! Выберите действие:", &kb)
}
