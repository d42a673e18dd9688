package usecase

import (
	"context"
	"time"

	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/domain/repository"
)

// WatchUsecase manages price-tracking subscriptions for the delivery layer.
type WatchUsecase struct {
	watches repository.PriceWatchRepository
	now     func() time.Time
}

func NewWatchUsecase(watches repository.PriceWatchRepository) *WatchUsecase {
	return &WatchUsecase{watches: watches, now: time.Now}
}

// Enabled reports whether watches can be stored at all.
func (u *WatchUsecase) Enabled() bool {
	return u.watches.Enabled()
}

// CreateFromSnapshot subscribes a user to the cheapest route of a finished
// search. Returns the watch key, or "" when storage is disabled.
func (u *WatchUsecase) CreateFromSnapshot(ctx context.Context, userID int64, snap *entity.SearchSnapshot, threshold int) (string, error) {
	best := CheapestOffer(snap.Flights)
	if best == nil {
		return "", nil
	}
	w := entity.PriceWatch{
		UserID:       userID,
		Origin:       best.Origin,
		Dest:         snap.DestIATA,
		DepartDate:   snap.OriginalDepart,
		ReturnDate:   snap.OriginalReturn,
		CurrentPrice: best.EffectivePrice(),
		Passengers:   snap.PassengersCode,
		Threshold:    threshold,
		CreatedAt:    u.now().Unix(),
	}
	if w.Passengers == "" {
		w.Passengers = "1"
	}
	return u.watches.SaveWatch(ctx, w)
}

// List returns all active watches for a user.
func (u *WatchUsecase) List(ctx context.Context, userID int64) ([]entity.PriceWatch, error) {
	return u.watches.UserWatches(ctx, userID)
}

// Get loads one watch by key; (nil, nil) when it expired.
func (u *WatchUsecase) Get(ctx context.Context, key string) (*entity.PriceWatch, error) {
	return u.watches.GetWatch(ctx, key)
}

// Remove unsubscribes a user from one watch.
func (u *WatchUsecase) Remove(ctx context.Context, userID int64, key string) error {
	return u.watches.RemoveWatch(ctx, userID, key)
}
