package travelpayouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

// Client queries the Travelpayouts flight-price API. The endpoint URLs are
// fields so tests can point the client at a local server.
type Client struct {
	http          *resty.Client
	token         string
	transferToken string
	currency      string

	pricesURL    string
	cheapURL     string
	transfersURL string
}

// NewClient builds a gateway with the given API tokens. An empty token
// disables the corresponding searches: they log and return no results
// instead of calling the network.
func NewClient(token, transferToken, currency string) *Client {
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return &Client{
		http:          resty.New().SetTimeout(constants.RequestTimeout),
		token:         token,
		transferToken: transferToken,
		currency:      currency,
		pricesURL:     constants.PricesForDatesURL,
		cheapURL:      constants.CheapPricesURL,
		transfersURL:  constants.TransfersURL,
	}
}

// rawOffer covers both upstream response shapes. The cheap-prices endpoint
// reports the amount as "price", the prices-for-dates endpoint as "value";
// either may be absent. Flight numbers arrive as strings or numbers
// depending on the endpoint.
type rawOffer struct {
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	Value        *float64    `json:"value"`
	Price        *float64    `json:"price"`
	Airline      string      `json:"airline"`
	FlightNumber json.Number `json:"flight_number"`
	DepartureAt  string      `json:"departure_at"`
	ReturnAt     string      `json:"return_at"`
	Transfers    int         `json:"transfers"`
	Duration     int         `json:"duration"`
	Link         string      `json:"link"`
}

func (r rawOffer) toOffer(origin, dest string) entity.Offer {
	price := 0
	switch {
	case r.Value != nil:
		price = int(*r.Value)
	case r.Price != nil:
		price = int(*r.Price)
	}
	o := entity.Offer{
		Origin:       origin,
		Destination:  dest,
		Price:        price,
		Airline:      r.Airline,
		FlightNumber: r.FlightNumber.String(),
		DepartureAt:  r.DepartureAt,
		ReturnAt:     r.ReturnAt,
		Transfers:    r.Transfers,
		Duration:     r.Duration,
		Link:         r.Link,
	}
	if r.Origin != "" {
		o.Origin = r.Origin
	}
	if r.Destination != "" {
		o.Destination = r.Destination
	}
	return o
}

// apiResponse is the common envelope. Data is decoded lazily because the
// two endpoints disagree on its shape: a list of offers for
// prices-for-dates, a map keyed by destination IATA for cheap prices.
type apiResponse struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// decodeOffers turns either data shape into a flat offer slice, stamping
// origin and destination on offers that do not carry their own.
func decodeOffers(data json.RawMessage, origin, dest string) ([]entity.Offer, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var list []rawOffer
	if err := json.Unmarshal(data, &list); err == nil {
		offers := make([]entity.Offer, 0, len(list))
		for _, r := range list {
			offers = append(offers, r.toOffer(origin, dest))
		}
		return offers, nil
	}

	var byDest map[string]map[string]rawOffer
	if err := json.Unmarshal(data, &byDest); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	var offers []entity.Offer
	for _, r := range byDest[dest] {
		offers = append(offers, r.toOffer(origin, dest))
	}
	return offers, nil
}

func (c *Client) search(ctx context.Context, origin, dest, departDate, returnDate string) ([]entity.Offer, error) {
	if c.token == "" {
		logger.ErrorLogger.Println("flight search skipped: API token is not configured")
		return nil, nil
	}

	params := map[string]string{
		"origin":       origin,
		"destination":  dest,
		"departure_at": departDate,
		"sorting":      "price",
		"currency":     c.currency,
		"limit":        fmt.Sprint(constants.SearchResultLimit),
		"token":        c.token,
	}
	if returnDate != "" {
		params["return_at"] = returnDate
	}

	var body apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&body).
		ForceContentType("application/json").
		Get(c.pricesURL)
	if err != nil {
		return nil, fmt.Errorf("travelpayouts request %s-%s: %w", origin, dest, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("travelpayouts request %s-%s: status %d", origin, dest, resp.StatusCode())
	}
	if body.Success != nil && !*body.Success {
		return nil, fmt.Errorf("travelpayouts request %s-%s: %s", origin, dest, body.Error)
	}

	offers, err := decodeOffers(body.Data, origin, dest)
	if err != nil {
		return nil, fmt.Errorf("travelpayouts response %s-%s: %w", origin, dest, err)
	}
	if len(offers) == 0 {
		return c.searchCheap(ctx, origin, dest, departDate, returnDate)
	}
	return offers, nil
}

// searchCheap queries the older cheap-prices endpoint, which covers some
// routes the primary one does not. Its data payload is a map keyed by
// destination IATA rather than a list.
func (c *Client) searchCheap(ctx context.Context, origin, dest, departDate, returnDate string) ([]entity.Offer, error) {
	params := map[string]string{
		"origin":      origin,
		"destination": dest,
		"depart_date": departDate,
		"currency":    c.currency,
		"token":       c.token,
	}
	if returnDate != "" {
		params["return_date"] = returnDate
	}

	var body apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&body).
		ForceContentType("application/json").
		Get(c.cheapURL)
	if err != nil {
		return nil, fmt.Errorf("travelpayouts cheap request %s-%s: %w", origin, dest, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("travelpayouts cheap request %s-%s: status %d", origin, dest, resp.StatusCode())
	}
	if body.Success != nil && !*body.Success {
		return nil, fmt.Errorf("travelpayouts cheap request %s-%s: %s", origin, dest, body.Error)
	}

	offers, err := decodeOffers(body.Data, origin, dest)
	if err != nil {
		return nil, fmt.Errorf("travelpayouts cheap response %s-%s: %w", origin, dest, err)
	}
	return offers, nil
}

// SearchOneWay returns one-way offers for a route. Dates are in the API
// format "YYYY-MM-DD".
func (c *Client) SearchOneWay(ctx context.Context, origin, dest, departDate string) ([]entity.Offer, error) {
	return c.search(ctx, origin, dest, departDate, "")
}

// SearchRoundTrip returns round-trip offers for a route.
func (c *Client) SearchRoundTrip(ctx context.Context, origin, dest, departDate, returnDate string) ([]entity.Offer, error) {
	return c.search(ctx, origin, dest, departDate, returnDate)
}
