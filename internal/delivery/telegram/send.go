package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMessage sends a plain text message, logging failures instead of
// propagating them.
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d", chatID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message to %d: %v", chatID, err)
	}
}

// sendHTML sends an HTML-formatted message with an optional inline
// keyboard. Link previews are disabled: result cards carry several links.
func (h *BotHandler) sendHTML(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if h.bot == nil {
		log.Printf("sendHTML skipped (bot is nil) chat=%d", chatID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message to %d: %v", chatID, err)
	}
}

// editHTML rewrites an existing message in place, used by menu callbacks.
func (h *BotHandler) editHTML(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		edit.ReplyMarkup = keyboard
	}
	if _, err := h.bot.Send(edit); err != nil {
		log.Printf("Failed to edit message %d in %d: %v", messageID, chatID, err)
	}
}

// answerCallback closes the button spinner; alerts pop a dialog.
func (h *BotHandler) answerCallback(callbackID, text string, alert bool) {
	cb := tgbotapi.NewCallback(callbackID, text)
	cb.ShowAlert = alert
	if _, err := h.bot.Request(cb); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// sendTyping shows the "typing..." indicator while a search runs.
func (h *BotHandler) sendTyping(chatID int64) {
	if h.bot == nil {
		return
	}
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := h.bot.Request(action); err != nil {
		log.Printf("Failed to send typing action to %d: %v", chatID, err)
	}
}
