package travelpayouts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-token", "transfer-token", "RUB")
	c.pricesURL = srv.URL + "/v3/prices_for_dates"
	c.cheapURL = srv.URL + "/v1/prices/cheap"
	c.transfersURL = srv.URL + "/v2/prices/get-transfer"
	return c
}

func TestSearchOneWay_FlatListShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MOW", r.URL.Query().Get("origin"))
		assert.Equal(t, "DXB", r.URL.Query().Get("destination"))
		assert.Equal(t, "2026-03-15", r.URL.Query().Get("departure_at"))
		assert.Equal(t, "price", r.URL.Query().Get("sorting"))
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"origin":"MOW","destination":"DXB","price":18500,"airline":"SU","flight_number":"520","departure_at":"2026-03-15T09:30:00+03:00","transfers":0,"duration":310,"link":"/search/MOW1503DXB1"},
				{"origin":"MOW","destination":"DXB","price":21000,"airline":"EK","flight_number":"132","transfers":1}
			]
		}`))
	})

	offers, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, 18500, offers[0].Price)
	assert.Equal(t, "SU", offers[0].Airline)
	assert.Equal(t, "520", offers[0].FlightNumber)
	assert.Equal(t, "/search/MOW1503DXB1", offers[0].Link)
}

func TestSearchOneWay_DecodesWithoutContentTypeHeader(t *testing.T) {
	var requests int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Some upstream responses arrive without a JSON Content-Type; the
		// body must still be decoded instead of reading as "no data".
		w.Header()["Content-Type"] = nil
		w.Write([]byte(`{"success": true, "data": [{"origin":"MOW","destination":"DXB","price":15000}]}`))
	})

	offers, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, 15000, offers[0].Price)
	assert.Equal(t, 1, requests, "a decoded non-empty response must not trigger the fallback endpoint")
}

func TestSearchOneWay_MapShapeFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v3/prices_for_dates":
			w.Write([]byte(`{"success": true, "data": []}`))
		case "/v1/prices/cheap":
			assert.Equal(t, "2026-03-15", r.URL.Query().Get("depart_date"))
			w.Write([]byte(`{
				"success": true,
				"data": {"DXB": {
					"0": {"price": 19900, "airline": "U6", "flight_number": 171, "departure_at": "2026-03-15T06:00:00+03:00"},
					"1": {"price": 24000, "airline": "SU", "flight_number": 520}
				}}
			}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	offers, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	for _, o := range offers {
		assert.Equal(t, "MOW", o.Origin)
		assert.Equal(t, "DXB", o.Destination)
	}
}

func TestSearchOneWay_ValueFieldWins(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": [{"value": 12000, "price": 99000}]}`))
	})

	offers, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, 12000, offers[0].Price)
}

func TestSearchRoundTrip_SendsReturnDate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-03-25", r.URL.Query().Get("return_at"))
		w.Write([]byte(`{"success": true, "data": [{"price": 30000}]}`))
	})

	offers, err := c.SearchRoundTrip(context.Background(), "MOW", "DXB", "2026-03-15", "2026-03-25")
	require.NoError(t, err)
	require.Len(t, offers, 1)
}

func TestSearch_UpstreamFailureIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "token is invalid"}`))
	})

	_, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is invalid")
}

func TestSearch_HTTPErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.Error(t, err)
}

func TestNewClient_DefaultCurrency(t *testing.T) {
	c := NewClient("t", "", "")
	assert.Equal(t, "RUB", c.currency)
}

func TestSearch_MissingTokenReturnsNoOffers(t *testing.T) {
	c := NewClient("", "", "RUB")

	offers, err := c.SearchOneWay(context.Background(), "MOW", "DXB", "2026-03-15")
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestSearchTransfers_EconomyTopThree(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AER", r.URL.Query().Get("origin"))
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": "t1", "price": 3000, "vehicle": "Economy"},
				{"id": "t2", "price": 1200, "vehicle": "Economy"},
				{"id": "t3", "price": 900, "vehicle": "Business"},
				{"id": "t4", "price": 2500, "vehicle": "Economy"},
				{"id": "t5", "price": 2000, "vehicle": "Economy"}
			]
		}`))
	})

	transfers, err := c.SearchTransfers(context.Background(), "AER", "2026-03-15", 2)
	require.NoError(t, err)
	require.Len(t, transfers, 3)
	assert.Equal(t, "t2", transfers[0].ID)
	assert.Equal(t, "t5", transfers[1].ID)
	assert.Equal(t, "t4", transfers[2].ID)
	for _, tr := range transfers {
		assert.Equal(t, "Economy", tr.Vehicle)
	}
}

func TestSearchTransfers_MissingTokenReturnsNothing(t *testing.T) {
	c := NewClient("x", "", "RUB")

	transfers, err := c.SearchTransfers(context.Background(), "AER", "2026-03-15", 1)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}
