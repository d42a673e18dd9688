package telegram

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-avia-bot/internal/domain/repository"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-avia-bot/internal/usecase"
)

// BotHandler wires Telegram updates to the search, watch and transfer use
// cases. Wizard sessions live in memory; everything durable sits behind the
// store.
type BotHandler struct {
	bot *tgbotapi.BotAPI

	parser    *parser.Parser
	searchUC  *usecase.SearchUsecase
	watchUC   *usecase.WatchUsecase
	transfers repository.TransferRepository
	links     *usecase.LinkBuilder
	store     *storage.RedisStore

	wizardMu sync.RWMutex
	wizards  map[int64]*wizardSession

	workerPool *workerPool
}

// NewBotHandler builds the handler and verifies the bot token against the
// Telegram API.
func NewBotHandler(
	token string,
	searchUC *usecase.SearchUsecase,
	watchUC *usecase.WatchUsecase,
	transfers repository.TransferRepository,
	links *usecase.LinkBuilder,
	store *storage.RedisStore,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	handler := &BotHandler{
		bot:       bot,
		parser:    parser.New(),
		searchUC:  searchUC,
		watchUC:   watchUC,
		transfers: transfers,
		links:     links,
		store:     store,
		wizards:   make(map[int64]*wizardSession),
	}
	handler.workerPool = newWorkerPool(handler, defaultWorkerCount)

	return handler, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

// Notifier returns the price-change notifier backed by this bot.
func (h *BotHandler) Notifier() usecase.PriceNotifier {
	return &priceNotifier{handler: h}
}

// Start runs the long-polling loop until the context is cancelled.
func (h *BotHandler) Start(ctx context.Context) error {
	h.workerPool.start(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.workerPool.shutdown()
			return ctx.Err()
		case update := <-updates:
			if update.CallbackQuery != nil {
				go h.handleCallback(ctx, update.CallbackQuery)
				continue
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}
