package travelpayouts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

type rawTransfer struct {
	ID      string   `json:"id"`
	Price   *float64 `json:"price"`
	Vehicle string   `json:"vehicle"`
	From    string   `json:"from"`
	To      string   `json:"to"`
}

// SearchTransfers looks up airport transfers for the given date. Only the
// Economy vehicle class is kept; results are sorted by price ascending and
// capped at the top three. Missing token or upstream failure yields an
// empty list, transfers are a best-effort extra.
func (c *Client) SearchTransfers(ctx context.Context, airportIATA, date string, adults int) ([]entity.Transfer, error) {
	if c.transferToken == "" {
		logger.InfoLogger.Println("transfer search skipped: transfer token is not configured")
		return nil, nil
	}

	var body struct {
		Success *bool           `json:"success"`
		Error   string          `json:"error"`
		Data    json.RawMessage `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"origin": strings.ToUpper(airportIATA),
			"date":   date,
			"adults": fmt.Sprint(adults),
			"token":  c.transferToken,
		}).
		SetResult(&body).
		ForceContentType("application/json").
		Get(c.transfersURL)
	if err != nil {
		return nil, fmt.Errorf("transfer request %s: %w", airportIATA, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("transfer request %s: status %d", airportIATA, resp.StatusCode())
	}
	if body.Success != nil && !*body.Success {
		return nil, fmt.Errorf("transfer request %s: %s", airportIATA, body.Error)
	}

	var raw []rawTransfer
	if len(body.Data) > 0 {
		if err := json.Unmarshal(body.Data, &raw); err != nil {
			return nil, fmt.Errorf("transfer response %s: %w", airportIATA, err)
		}
	}

	transfers := make([]entity.Transfer, 0, len(raw))
	for _, r := range raw {
		if r.Vehicle != "Economy" {
			continue
		}
		price := float64(constants.MissingPriceSentinel)
		if r.Price != nil {
			price = *r.Price
		}
		transfers = append(transfers, entity.Transfer{
			ID:      r.ID,
			Price:   price,
			Vehicle: r.Vehicle,
			From:    r.From,
			To:      r.To,
		})
	}

	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Price < transfers[j].Price
	})
	if len(transfers) > constants.TopOffers {
		transfers = transfers[:constants.TopOffers]
	}
	return transfers, nil
}
