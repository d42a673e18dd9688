package repository

import (
	"context"

	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

// FlightRepository is the outbound port to the flight-price aggregator.
// Dates are passed in API form (ГГГГ-ММ-ДД). A failed or empty upstream
// response surfaces as an error so the caller can log "no data for this
// origin" and keep going; implementations never panic.
type FlightRepository interface {
	// SearchOneWay queries prices for a single origin/destination/date.
	SearchOneWay(ctx context.Context, origin, dest, departDate string) ([]entity.Offer, error)

	// SearchRoundTrip queries prices including the return leg.
	SearchRoundTrip(ctx context.Context, origin, dest, departDate, returnDate string) ([]entity.Offer, error)
}

// TransferRepository is the outbound port to the airport-transfer API.
type TransferRepository interface {
	// SearchTransfers returns economy transfer options from an airport,
	// cheapest first.
	SearchTransfers(ctx context.Context, airportIATA, date string, adults int) ([]entity.Transfer, error)
}
