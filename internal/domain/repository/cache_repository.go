package repository

import (
	"context"

	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

// SearchCacheRepository stores completed search snapshots under generated
// IDs with a TTL. When the backing store is not configured every read is a
// miss and every write a no-op; callers must tolerate that.
type SearchCacheRepository interface {
	SaveSearch(ctx context.Context, id string, snap entity.SearchSnapshot) error
	GetSearch(ctx context.Context, id string) (*entity.SearchSnapshot, error)
	DeleteSearch(ctx context.Context, id string) error
}

// PriceWatchRepository stores price-tracking subscriptions. Keys are
// store-native and opaque to callers.
type PriceWatchRepository interface {
	// SaveWatch persists a watch and indexes it for the user. Returns the
	// store key, or "" when the store is disabled.
	SaveWatch(ctx context.Context, w entity.PriceWatch) (string, error)

	// UpdateWatch rewrites an existing watch under its key, refreshing TTL.
	UpdateWatch(ctx context.Context, key string, w entity.PriceWatch) error

	// GetWatch loads a single watch; (nil, nil) on miss.
	GetWatch(ctx context.Context, key string) (*entity.PriceWatch, error)

	// UserWatches lists all active watches for one user.
	UserWatches(ctx context.Context, userID int64) ([]entity.PriceWatch, error)

	// RemoveWatch deletes a watch and its user-index entry.
	RemoveWatch(ctx context.Context, userID int64, key string) error

	// AllWatchKeys lists every active watch key for the background checker.
	AllWatchKeys(ctx context.Context) ([]string, error)

	// Enabled reports whether a real store is connected.
	Enabled() bool
}
