package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/telegram-avia-bot/config"
	"github.com/yourusername/telegram-avia-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/travelpayouts"
	"github.com/yourusername/telegram-avia-bot/internal/usecase"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

func main() {
	initDefaultTimezone()

	logger.Init()
	logger.InfoLogger.Println("🚀 Starting flight search bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Redis-backed cache and watch store (degrades to disabled mode when
	// Redis is unreachable).
	store := storage.NewRedisStore(ctx, cfg.RedisURL)
	if store.Enabled() {
		logger.InfoLogger.Println("✅ Redis store ready")
	} else {
		logger.InfoLogger.Println("⚠️ Redis unavailable, caching and price watches disabled")
	}
	defer store.Close()

	// 2. Travelpayouts flight API gateway
	flightsRepo := travelpayouts.NewClient(cfg.APIToken, cfg.TransferToken, cfg.Currency)
	logger.InfoLogger.Println("✅ Flight API client ready")

	// 3. Use cases
	links := usecase.NewLinkBuilder(cfg.Marker, cfg.SubID)
	searchUC := usecase.NewSearchUsecase(flightsRepo, store)
	watchUC := usecase.NewWatchUsecase(store)
	logger.InfoLogger.Println("✅ Use cases ready")

	// 4. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.BotToken,
		searchUC,
		watchUC,
		flightsRepo,
		links,
		store,
	)
	if err != nil {
		log.Fatalf("❌ Failed to create bot handler: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot ready: @%s", botHandler.GetBotUsername())

	// 5. Background price watcher, only when watches can be persisted.
	if store.Enabled() {
		watcher := usecase.NewPriceWatcher(flightsRepo, store, botHandler.Notifier(), links)
		go watcher.Run(ctx)
	}

	go func() {
		if err := botHandler.Start(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorLogger.Printf("❌ Bot error: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot is running. Press Ctrl+C to stop.")

	<-sigChan
	logger.InfoLogger.Println("⏳ Shutdown signal received...")

	cancel()
	logger.InfoLogger.Println("✅ Bot stopped.")
}

func initDefaultTimezone() {
	const tzName = "Europe/Moscow"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 3*60*60)
}
