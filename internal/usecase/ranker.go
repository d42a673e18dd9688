package usecase

import (
	"sort"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

// RankOffers returns the n cheapest offers in ascending price order. The
// input is never mutated. Sorting is stable, so equally priced offers keep
// their upstream order, and offers without a price rank last via the
// sentinel instead of being dropped.
func RankOffers(offers []entity.Offer, n int) []entity.Offer {
	ranked := make([]entity.Offer, len(offers))
	copy(ranked, offers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EffectivePrice() < ranked[j].EffectivePrice()
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DedupeByRoute keeps the first offer seen for each origin/destination
// pair. Applied after ranking, that first offer is the cheapest one.
func DedupeByRoute(offers []entity.Offer) []entity.Offer {
	seen := make(map[string]bool, len(offers))
	out := make([]entity.Offer, 0, len(offers))
	for _, o := range offers {
		if seen[o.RouteKey()] {
			continue
		}
		seen[o.RouteKey()] = true
		out = append(out, o)
	}
	return out
}

// CheapestOffer returns the single cheapest offer, or nil for an empty
// slice.
func CheapestOffer(offers []entity.Offer) *entity.Offer {
	if len(offers) == 0 {
		return nil
	}
	best := offers[0]
	for _, o := range offers[1:] {
		if o.EffectivePrice() < best.EffectivePrice() {
			best = o
		}
	}
	return &best
}

// MinPrice returns the lowest effective price across the offers, or the
// sentinel for an empty slice.
func MinPrice(offers []entity.Offer) int {
	min := constants.MissingPriceSentinel
	for _, o := range offers {
		if p := o.EffectivePrice(); p < min {
			min = p
		}
	}
	return min
}
