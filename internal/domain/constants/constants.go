package constants

import "time"

// Search constants
const (
	// TopOffers - how many offers the "cheapest" views show
	TopOffers = 3

	// SearchResultLimit - result limit requested per upstream API call
	SearchResultLimit = 30

	// DefaultCurrency - currency code passed to the pricing API
	DefaultCurrency = "RUB"

	// HubLimit - how many hub cities the "везде" (everywhere) search fans out to
	HubLimit = 5

	// MissingPriceSentinel - effective price for offers without a usable
	// price field, so they sort last instead of being dropped
	MissingPriceSentinel = 999999

	// MaxPassengers - aviasales allows at most 9 seats per booking
	MaxPassengers = 9
)

// Travelpayouts API endpoints
const (
	// PricesForDatesURL - v3 endpoint (flat list + success flag)
	PricesForDatesURL = "https://api.travelpayouts.com/aviasales/v3/prices_for_dates"

	// CheapPricesURL - legacy v1 endpoint (map keyed by destination)
	CheapPricesURL = "https://api.travelpayouts.com/v1/prices/cheap"

	// TransfersURL - GetTransfer price endpoint
	TransfersURL = "https://api.travelpayouts.com/v2/prices/get-transfer"

	// RequestTimeout bounds every outbound API call
	RequestTimeout = 10 * time.Second
)

// Aviasales deep links
const (
	SearchBaseURL = "https://www.aviasales.ru/search/"
	SiteBaseURL   = "https://www.aviasales.ru"
	MapBaseURL    = "https://www.aviasales.ru/map"

	// DefaultSubID is appended to tracked links when TRAFFIC_SUB_ID is unset
	DefaultSubID = "telegram"
)

// Cache and price watching
const (
	// SearchCacheTTL - lifetime of a cached search snapshot
	SearchCacheTTL = time.Hour

	// PriceWatchTTL - a watch silently expires after 30 days
	PriceWatchTTL = 30 * 24 * time.Hour

	// WatchCheckInterval - how often the background watcher re-queries prices
	WatchCheckInterval = 6 * time.Hour

	// WatchNotifyCooldown - minimum gap between notifications for one watch
	WatchNotifyCooldown = 24 * time.Hour

	// WatchMinPriceDelta - ignore price movements below this (rubles) to
	// avoid notifying on jitter
	WatchMinPriceDelta = 50

	// WatchRouteCacheTTL - per-route price memo during a single check pass
	WatchRouteCacheTTL = 5 * time.Minute
)
