package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
)

// Config holds everything the bot reads from the environment. Only the
// Telegram token is mandatory; every other integration degrades gracefully
// when its setting is absent.
type Config struct {
	// BotToken is the Telegram bot API token.
	BotToken string

	// APIToken authorizes flight-price requests to Travelpayouts. Without
	// it searches return nothing.
	APIToken string

	// TransferToken authorizes GetTransfer requests. Optional.
	TransferToken string

	// Marker is the affiliate marker appended to aviasales links. When
	// empty, links carry no tracking parameters.
	Marker string

	// SubID labels the traffic source inside tracked links.
	SubID string

	// Currency is the price currency requested from the API.
	Currency string

	// RedisURL enables search caching and price watches when set.
	RedisURL string
}

// Load reads the configuration from the environment, with .env support for
// local runs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		APIToken:      strings.TrimSpace(os.Getenv("API_TOKEN")),
		TransferToken: strings.TrimSpace(os.Getenv("GETTRANSFER_TOKEN")),
		Marker:        strings.TrimSpace(os.Getenv("TRAFFIC_SOURCE")),
		SubID:         strings.TrimSpace(os.Getenv("TRAFFIC_SUB_ID")),
		Currency:      strings.TrimSpace(os.Getenv("CURRENCY")),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
	}
	if cfg.SubID == "" {
		cfg.SubID = constants.DefaultSubID
	}
	if cfg.Currency == "" {
		cfg.Currency = constants.DefaultCurrency
	}

	return cfg, nil
}
