package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleMessage routes one incoming message: commands first, then an active
// wizard session, then the free-text request grammar via the worker pool.
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil || !message.Chat.IsPrivate() {
		return
	}
	userID := message.From.ID

	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
		return
	}

	if session, ok := h.getWizard(userID); ok {
		h.handleWizardInput(ctx, message, session)
		return
	}

	if strings.TrimSpace(message.Text) == "" {
		return
	}

	h.workerPool.submit(&searchRequest{
		ctx:    ctx,
		userID: userID,
		chatID: message.Chat.ID,
		text:   message.Text,
	})
}
