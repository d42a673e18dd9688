package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/domain/repository"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

// SearchResult is what the delivery layer renders after a search: the
// snapshot (already cached when a store is available), its cache ID for
// callback buttons, and the minimum price for the button label.
type SearchResult struct {
	CacheID  string
	Snapshot entity.SearchSnapshot
	MinPrice int
}

// Found reports whether any offers came back.
func (r *SearchResult) Found() bool {
	return len(r.Snapshot.Flights) > 0
}

// SearchUsecase runs one flight search end to end: origin fan-out, upstream
// queries, ranking-ready offer collection, snapshot caching.
type SearchUsecase struct {
	flights repository.FlightRepository
	cache   repository.SearchCacheRepository
	hubs    []string
	now     func() time.Time
}

func NewSearchUsecase(flights repository.FlightRepository, cache repository.SearchCacheRepository) *SearchUsecase {
	return &SearchUsecase{
		flights: flights,
		cache:   cache,
		hubs:    cities.GlobalHubs,
		now:     time.Now,
	}
}

// originCodes resolves the fan-out set: one code for a normal origin, the
// first HubLimit hubs for "везде". Hubs matching the destination are
// skipped.
func (u *SearchUsecase) originCodes(q *entity.FlightQuery) []string {
	hubs := u.hubs
	if len(hubs) > constants.HubLimit {
		hubs = hubs[:constants.HubLimit]
	}
	codes := q.Origin.Codes(hubs)
	out := codes[:0:0]
	for _, c := range codes {
		if c != q.Destination {
			out = append(out, c)
		}
	}
	return out
}

// Search queries every origin concurrently and assembles the snapshot.
// A failing origin is logged and skipped so one bad hub never sinks an
// everywhere search; the error surfaces only when every origin failed and
// nothing was found.
func (u *SearchUsecase) Search(ctx context.Context, q *entity.FlightQuery) (*SearchResult, error) {
	origins := u.originCodes(q)
	departAPI := parser.NormalizeDate(q.DepartDate, u.now())
	returnAPI := ""
	if q.IsRoundTrip() {
		returnAPI = parser.NormalizeDate(q.ReturnDate, u.now())
	}

	var (
		mu      sync.Mutex
		all     []entity.Offer
		lastErr error
		failed  int
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, origin := range origins {
		origin := origin
		g.Go(func() error {
			var offers []entity.Offer
			var err error
			if q.IsRoundTrip() {
				offers, err = u.flights.SearchRoundTrip(gctx, origin, q.Destination, departAPI, returnAPI)
			} else {
				offers, err = u.flights.SearchOneWay(gctx, origin, q.Destination, departAPI)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.ErrorLogger.Printf("search %s-%s failed: %v", origin, q.Destination, err)
				failed++
				lastErr = err
				return nil
			}
			for i := range offers {
				if offers[i].Origin == "" {
					offers[i].Origin = origin
				}
				if offers[i].Destination == "" {
					offers[i].Destination = q.Destination
				}
			}
			all = append(all, offers...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(all) == 0 && failed == len(origins) && lastErr != nil {
		return nil, lastErr
	}

	snap := entity.SearchSnapshot{
		Flights:        all,
		DestIATA:       q.Destination,
		IsRoundTrip:    q.IsRoundTrip(),
		DisplayDepart:  parser.DisplayDate(q.DepartDate, u.now()),
		OriginalDepart: q.DepartDate,
		PassengerDesc:  q.Passengers.Description(),
		PassengersCode: q.Passengers.Code(),
		Everywhere:     q.Origin.IsEverywhere(),
	}
	if q.IsRoundTrip() {
		snap.DisplayReturn = parser.DisplayDate(q.ReturnDate, u.now())
		snap.OriginalReturn = q.ReturnDate
	}

	result := &SearchResult{Snapshot: snap, MinPrice: MinPrice(all)}
	if len(all) > 0 {
		result.CacheID = uuid.NewString()
		if err := u.cache.SaveSearch(ctx, result.CacheID, snap); err != nil {
			logger.ErrorLogger.Printf("cache search %s: %v", result.CacheID, err)
		}
	}
	return result, nil
}

// CachedSearch loads a snapshot for a callback button; (nil, nil) when it
// expired.
func (u *SearchUsecase) CachedSearch(ctx context.Context, cacheID string) (*entity.SearchSnapshot, error) {
	return u.cache.GetSearch(ctx, cacheID)
}
