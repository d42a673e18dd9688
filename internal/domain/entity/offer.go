package entity

import "github.com/yourusername/telegram-avia-bot/internal/domain/constants"

// Offer is one priced itinerary candidate, already normalized from whichever
// response shape the upstream API returned. Offers live in memory for the
// duration of one search (plus the optional cached snapshot) and are never
// persisted otherwise.
type Offer struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Price        int    `json:"price"`
	Airline      string `json:"airline,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`
	DepartureAt  string `json:"departure_at,omitempty"`
	ReturnAt     string `json:"return_at,omitempty"`
	Transfers    int    `json:"transfers"`
	Duration     int    `json:"duration,omitempty"`
	// Link is the provider-supplied relative booking path, when present.
	Link string `json:"link,omitempty"`
}

// HasPrice reports whether the upstream response carried a usable price.
func (o Offer) HasPrice() bool {
	return o.Price > 0
}

// EffectivePrice is the price used for ranking: offers without a price get
// a large sentinel so they sort last but are never dropped.
func (o Offer) EffectivePrice() int {
	if o.Price > 0 {
		return o.Price
	}
	return constants.MissingPriceSentinel
}

// RouteKey identifies the origin/destination pair for deduplication.
func (o Offer) RouteKey() string {
	return o.Origin + ":" + o.Destination
}

// SearchSnapshot is the cacheable state of one completed search, addressed
// by a generated cache ID. The field names mirror what the callback buttons
// need to render results later.
type SearchSnapshot struct {
	Flights        []Offer `json:"flights"`
	DestIATA       string  `json:"dest_iata"`
	IsRoundTrip    bool    `json:"is_roundtrip"`
	DisplayDepart  string  `json:"display_depart"`
	DisplayReturn  string  `json:"display_return,omitempty"`
	OriginalDepart string  `json:"original_depart"`
	OriginalReturn string  `json:"original_return,omitempty"`
	PassengerDesc  string  `json:"passenger_desc"`
	PassengersCode string  `json:"passengers_code"`
	Everywhere     bool    `json:"origin_everywhere,omitempty"`
}

// Transfer is one airport transfer option from the GetTransfer API.
type Transfer struct {
	ID      string  `json:"id"`
	Price   float64 `json:"price"`
	Vehicle string  `json:"vehicle"`
	From    string  `json:"from,omitempty"`
	To      string  `json:"to,omitempty"`
}
