package usecase

import (
	"testing"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

func pricedOffers(prices ...int) []entity.Offer {
	offers := make([]entity.Offer, len(prices))
	for i, p := range prices {
		offers[i] = entity.Offer{Origin: "MOW", Destination: "DXB", Price: p}
	}
	return offers
}

func TestRankOffers_SortsAscendingAndTruncates(t *testing.T) {
	offers := pricedOffers(500, 200, 0, 300)

	got := RankOffers(offers, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Price != 200 || got[1].Price != 300 {
		t.Fatalf("RankOffers() = [%d %d], want [200 300]", got[0].Price, got[1].Price)
	}
}

func TestRankOffers_MissingPriceSortsLast(t *testing.T) {
	offers := pricedOffers(500, 0, 300)

	got := RankOffers(offers, -1)
	if got[len(got)-1].Price != 0 {
		t.Fatalf("last offer price = %d, want the unpriced one", got[len(got)-1].Price)
	}
}

func TestRankOffers_DoesNotMutateInput(t *testing.T) {
	offers := pricedOffers(500, 200)
	RankOffers(offers, 1)
	if offers[0].Price != 500 {
		t.Fatalf("input mutated: offers[0].Price = %d, want 500", offers[0].Price)
	}
}

func TestRankOffers_StableForEqualPrices(t *testing.T) {
	offers := []entity.Offer{
		{Origin: "MOW", Destination: "DXB", Price: 300, Airline: "SU"},
		{Origin: "MOW", Destination: "DXB", Price: 300, Airline: "EK"},
	}
	got := RankOffers(offers, -1)
	if got[0].Airline != "SU" || got[1].Airline != "EK" {
		t.Fatalf("equal prices reordered: [%s %s]", got[0].Airline, got[1].Airline)
	}
}

func TestDedupeByRoute_KeepsFirstSeen(t *testing.T) {
	offers := []entity.Offer{
		{Origin: "MOW", Destination: "DXB", Price: 200},
		{Origin: "LED", Destination: "DXB", Price: 250},
		{Origin: "MOW", Destination: "DXB", Price: 400},
	}
	got := DedupeByRoute(offers)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Price != 200 || got[1].Price != 250 {
		t.Fatalf("DedupeByRoute() = [%d %d], want [200 250]", got[0].Price, got[1].Price)
	}
}

func TestCheapestOffer_Empty(t *testing.T) {
	if got := CheapestOffer(nil); got != nil {
		t.Fatalf("CheapestOffer(nil) = %v, want nil", got)
	}
}

func TestCheapestOffer_PicksLowestEffectivePrice(t *testing.T) {
	offers := pricedOffers(700, 400, 0, 900)
	got := CheapestOffer(offers)
	if got == nil || got.Price != 400 {
		t.Fatalf("CheapestOffer() = %v, want price 400", got)
	}
}

func TestMinPrice_EmptyIsSentinel(t *testing.T) {
	if got := MinPrice(nil); got != constants.MissingPriceSentinel {
		t.Fatalf("MinPrice(nil) = %d, want %d", got, constants.MissingPriceSentinel)
	}
}
