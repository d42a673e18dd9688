package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/domain/repository"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

// ErrRecipientGone means the user blocked the bot or deleted their account.
// The watcher removes such watches instead of retrying forever.
var ErrRecipientGone = errors.New("recipient is unreachable")

// PriceNotifier delivers a price-change message for one watch. WatchKey is
// passed through so the message can carry an unsubscribe button.
type PriceNotifier interface {
	NotifyPriceChange(ctx context.Context, w entity.PriceWatch, watchKey string, newPrice int, bookingLink string) error
}

// memoEntry is a short-lived per-route price during one check pass, so ten
// watches on the same route cost one API call.
type memoEntry struct {
	price int
	at    time.Time
}

// PriceWatcher periodically re-checks every saved watch and notifies users
// about price movements.
type PriceWatcher struct {
	flights  repository.FlightRepository
	watches  repository.PriceWatchRepository
	notifier PriceNotifier
	links    *LinkBuilder

	interval  time.Duration
	now       func() time.Time
	routeMemo map[string]memoEntry
}

func NewPriceWatcher(
	flights repository.FlightRepository,
	watches repository.PriceWatchRepository,
	notifier PriceNotifier,
	links *LinkBuilder,
) *PriceWatcher {
	return &PriceWatcher{
		flights:   flights,
		watches:   watches,
		notifier:  notifier,
		links:     links,
		interval:  constants.WatchCheckInterval,
		now:       time.Now,
		routeMemo: make(map[string]memoEntry),
	}
}

// Run checks all watches immediately and then on every tick until the
// context is cancelled.
func (pw *PriceWatcher) Run(ctx context.Context) {
	logger.InfoLogger.Printf("✅ Price watcher started (checking every %s)", pw.interval)
	pw.CheckAll(ctx)

	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.InfoLogger.Println("⏹️ Price watcher stopped")
			return
		case <-ticker.C:
			pw.CheckAll(ctx)
		}
	}
}

// CheckAll walks every saved watch once. Individual failures are logged
// and never abort the pass.
func (pw *PriceWatcher) CheckAll(ctx context.Context) {
	if !pw.watches.Enabled() {
		return
	}
	keys, err := pw.watches.AllWatchKeys(ctx)
	if err != nil {
		logger.ErrorLogger.Printf("❌ Listing watches: %v", err)
		return
	}
	if len(keys) == 0 {
		logger.InfoLogger.Println("🔍 No active price watches")
		return
	}

	logger.InfoLogger.Printf("🔍 Checking %d price watches...", len(keys))
	pw.routeMemo = make(map[string]memoEntry)

	var notified, removed int
	for _, key := range keys {
		if ctx.Err() != nil {
			return
		}
		w, err := pw.watches.GetWatch(ctx, key)
		if err != nil {
			logger.ErrorLogger.Printf("❌ Loading watch %s: %v", key, err)
			continue
		}
		if w == nil {
			continue
		}
		switch pw.checkOne(ctx, key, *w) {
		case watchNotified:
			notified++
		case watchRemoved:
			removed++
		}
	}
	logger.InfoLogger.Printf("✅ Watch pass done: %d total, %d notified, %d removed", len(keys), notified, removed)
}

type watchOutcome int

const (
	watchUnchanged watchOutcome = iota
	watchNotified
	watchRemoved
)

func (pw *PriceWatcher) checkOne(ctx context.Context, key string, w entity.PriceWatch) watchOutcome {
	now := pw.now()

	// Spam guard: at most one notification per watch per cooldown window.
	if now.Sub(time.Unix(w.LastNotified, 0)) < constants.WatchNotifyCooldown {
		return watchUnchanged
	}

	newPrice, ok := pw.routePrice(ctx, w, now)
	if !ok {
		return watchUnchanged
	}

	change := w.CurrentPrice - newPrice
	absChange := change
	if absChange < 0 {
		absChange = -absChange
	}
	threshold := constants.WatchMinPriceDelta
	if w.Threshold > threshold {
		threshold = w.Threshold
	}

	if change == 0 || absChange < threshold {
		// Track small drifts silently so the next comparison starts from
		// the fresh price.
		if absChange > 0 {
			w.CurrentPrice = newPrice
			if err := pw.watches.UpdateWatch(ctx, key, w); err != nil {
				logger.ErrorLogger.Printf("❌ Updating watch %s: %v", key, err)
			}
		}
		return watchUnchanged
	}

	link := pw.links.BookingLink(
		entity.Offer{Origin: w.Origin, Destination: w.Dest, Price: newPrice},
		w.Dest,
		SearchParams{DepartDate: w.DepartDate, ReturnDate: w.ReturnDate, PassengersCode: w.Passengers},
	)

	err := pw.notifier.NotifyPriceChange(ctx, w, key, newPrice, link)
	if errors.Is(err, ErrRecipientGone) {
		if rmErr := pw.watches.RemoveWatch(ctx, w.UserID, key); rmErr != nil {
			logger.ErrorLogger.Printf("❌ Removing watch %s: %v", key, rmErr)
		}
		logger.InfoLogger.Printf("🗑️ Watch removed, user %d is unreachable", w.UserID)
		return watchRemoved
	}
	if err != nil {
		logger.ErrorLogger.Printf("❌ Notifying user %d: %v", w.UserID, err)
		return watchUnchanged
	}

	old := w.CurrentPrice
	w.CurrentPrice = newPrice
	w.LastNotified = now.Unix()
	if err := pw.watches.UpdateWatch(ctx, key, w); err != nil {
		logger.ErrorLogger.Printf("❌ Updating watch %s: %v", key, err)
	}
	logger.InfoLogger.Printf("✅ Notified %d: %d ₽ → %d ₽", w.UserID, old, newPrice)
	return watchNotified
}

// routePrice returns the current minimum price for a watch's route, memoized
// for a few minutes within one pass.
func (pw *PriceWatcher) routePrice(ctx context.Context, w entity.PriceWatch, now time.Time) (int, bool) {
	memoKey := w.Origin + ":" + w.Dest + ":" + w.DepartDate + ":" + w.ReturnDate
	if e, ok := pw.routeMemo[memoKey]; ok && now.Sub(e.at) < constants.WatchRouteCacheTTL {
		return e.price, true
	}

	var offers []entity.Offer
	var err error
	departAPI := parser.NormalizeDate(w.DepartDate, now)
	if w.ReturnDate != "" {
		offers, err = pw.flights.SearchRoundTrip(ctx, w.Origin, w.Dest, departAPI, parser.NormalizeDate(w.ReturnDate, now))
	} else {
		offers, err = pw.flights.SearchOneWay(ctx, w.Origin, w.Dest, departAPI)
	}
	if err != nil {
		logger.ErrorLogger.Printf("❌ Price check %s→%s: %v", w.Origin, w.Dest, err)
		return 0, false
	}

	best := CheapestOffer(offers)
	if best == nil || !best.HasPrice() {
		return 0, false
	}
	pw.routeMemo[memoKey] = memoEntry{price: best.Price, at: now}
	return best.Price, true
}
