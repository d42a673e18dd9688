package telegram

import (
	"strings"
	"testing"

	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{-5, ""},
		{45, "45м"},
		{60, "1ч"},
		{120, "2ч"},
		{310, "5ч 10м"},
	}
	for _, c := range cases {
		if got := formatDuration(c.minutes); got != c.want {
			t.Errorf("formatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestFormatTransfers(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "прямой"},
		{1, "1 пересадка"},
		{2, "2 пересадки"},
		{4, "4 пересадки"},
		{5, "5 пересадок"},
		{11, "11 пересадок"},
	}
	for _, c := range cases {
		if got := formatTransfers(c.n); got != c.want {
			t.Errorf("formatTransfers(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatPriceMissing(t *testing.T) {
	if got := formatPrice(entity.Offer{}); got != "?" {
		t.Errorf("formatPrice(no price) = %q, want %q", got, "?")
	}
	if got := formatPrice(entity.Offer{Price: 12500}); got != "12500 ₽" {
		t.Errorf("formatPrice(12500) = %q, want %q", got, "12500 ₽")
	}
}

func TestFormatTopOffer(t *testing.T) {
	snap := &entity.SearchSnapshot{
		DestIATA:      "DXB",
		DisplayDepart: "15.03.2026",
		PassengerDesc: "1 взрослый",
	}
	offer := entity.Offer{
		Origin:       "MOW",
		Destination:  "DXB",
		Price:        18900,
		Airline:      "SU",
		FlightNumber: "520",
		Transfers:    0,
		Duration:     310,
	}

	got := formatTopOffer(offer, snap)

	for _, want := range []string{
		"Москва → Дубай",
		"18900 ₽",
		"15.03.2026",
		"SU-520",
		"прямой",
		"в пути 5ч 10м",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatTopOffer() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Обратно") {
		t.Errorf("formatTopOffer() rendered a return line for a one-way search:\n%s", got)
	}
}

func TestFormatTopOfferRoundTrip(t *testing.T) {
	snap := &entity.SearchSnapshot{
		DestIATA:      "AER",
		IsRoundTrip:   true,
		DisplayDepart: "10.06.2026",
		DisplayReturn: "20.06.2026",
		PassengerDesc: "2 взрослых",
	}
	offer := entity.Offer{Origin: "LED", Destination: "AER", Price: 9400}

	got := formatTopOffer(offer, snap)
	if !strings.Contains(got, "↩️ Обратно: 20.06.2026") {
		t.Errorf("formatTopOffer() missing return date line:\n%s", got)
	}
}

func TestFormatEverywhereOffer(t *testing.T) {
	snap := &entity.SearchSnapshot{
		DestIATA:       "DXB",
		DisplayDepart:  "20.03.2026",
		PassengerDesc:  "2 взр.",
		PassengersCode: "2",
		Everywhere:     true,
	}
	offer := entity.Offer{
		Origin:      "LED",
		Destination: "DXB",
		Price:       14000,
		Transfers:   1,
		Duration:    360,
	}

	got := formatEverywhereOffer(offer, snap)

	for _, want := range []string{
		"Самый дешёвый вариант в Дубай",
		"Санкт-Петербург",
		"Пулково (LED)",
		"Цена за 1 пассажира:</b> 14000 ₽",
		"для 2 взрослых:</b> ~28000 ₽",
		"1 пересадка",
		"6ч",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatEverywhereOffer() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatEverywhereOfferSingleAdult(t *testing.T) {
	snap := &entity.SearchSnapshot{
		DestIATA:       "AER",
		DisplayDepart:  "10.06.2026",
		PassengerDesc:  "1 взр.",
		PassengersCode: "1",
		Everywhere:     true,
	}

	got := formatEverywhereOffer(entity.Offer{Origin: "MOW", Price: 5200}, snap)
	if strings.Contains(got, "Примерная стоимость") {
		t.Errorf("formatEverywhereOffer() rendered an estimated total for one adult:\n%s", got)
	}
}

func TestFormatOfferList(t *testing.T) {
	snap := &entity.SearchSnapshot{
		DestIATA:      "DXB",
		DisplayDepart: "15.03.2026",
		PassengerDesc: "1 взрослый",
	}
	offers := []entity.Offer{
		{Origin: "MOW", Destination: "DXB", Price: 18900},
		{Origin: "MOW", Destination: "DXB", Price: 21000},
	}
	link := "https://www.aviasales.ru/search/MOW1503DXB1"

	got := formatOfferList(offers, snap, link)

	if !strings.Contains(got, "от: <b>18900 ₽</b>") {
		t.Errorf("formatOfferList() missing min price:\n%s", got)
	}
	if !strings.Contains(got, link) {
		t.Errorf("formatOfferList() missing search link:\n%s", got)
	}
}

func TestFormatTransferOptions(t *testing.T) {
	transfers := []entity.Transfer{
		{ID: "t1", Price: 2500, Vehicle: "Седан"},
		{ID: "t2", Price: 3100, Vehicle: "Минивэн"},
	}

	got := formatTransferOptions(transfers, "AER")
	if !strings.Contains(got, "2500 ₽ — Седан") {
		t.Errorf("formatTransferOptions() missing first offer:\n%s", got)
	}

	if got := formatTransferOptions(nil, "AER"); got != "" {
		t.Errorf("formatTransferOptions(nil) = %q, want empty", got)
	}
}
