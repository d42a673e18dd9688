package telegram

import (
	"fmt"
	"strings"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

// formatDuration renders minutes as "5ч 10м", dropping an absent part.
func formatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dм", mins)
	case mins == 0:
		return fmt.Sprintf("%dч", hours)
	default:
		return fmt.Sprintf("%dч %dм", hours, mins)
	}
}

// formatTransfers renders a transfer count in Russian.
func formatTransfers(n int) string {
	switch {
	case n == 0:
		return "прямой"
	case n == 1:
		return "1 пересадка"
	case n >= 2 && n <= 4:
		return fmt.Sprintf("%d пересадки", n)
	default:
		return fmt.Sprintf("%d пересадок", n)
	}
}

// formatPrice renders the price, or a question mark when the upstream
// response had none.
func formatPrice(o entity.Offer) string {
	if !o.HasPrice() {
		return "?"
	}
	return fmt.Sprintf("%d ₽", o.Price)
}

// formatTopOffer renders the "cheapest offer" card.
func formatTopOffer(o entity.Offer, snap *entity.SearchSnapshot) string {
	originName := cities.DisplayName(o.Origin)
	destName := cities.DisplayName(snap.DestIATA)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("✅ Самое дешёвое (%s):\n", snap.PassengerDesc))
	b.WriteString(fmt.Sprintf("✈️ %s → %s — %s — %s\n", originName, destName, formatPrice(o), snap.DisplayDepart))
	if snap.IsRoundTrip && snap.DisplayReturn != "" {
		b.WriteString(fmt.Sprintf("↩️ Обратно: %s\n", snap.DisplayReturn))
	}
	if o.Airline != "" {
		line := cities.AirlineName(o.Airline)
		if o.FlightNumber != "" {
			line += " " + o.Airline + "-" + o.FlightNumber
		}
		b.WriteString("🛫 " + line + "\n")
	}
	details := []string{formatTransfers(o.Transfers)}
	if d := formatDuration(o.Duration); d != "" {
		details = append(details, "в пути "+d)
	}
	b.WriteString("🧭 " + strings.Join(details, ", ") + "\n")
	return b.String()
}

// formatEverywhereOffer renders the detailed card for a search that fanned
// out from all hub cities: airport names, per-passenger price and the
// estimated total for the adults in the request.
func formatEverywhereOffer(o entity.Offer, snap *entity.SearchSnapshot) string {
	destName := cities.DisplayName(snap.DestIATA)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("✅ <b>Самый дешёвый вариант в %s</b>\n", destName))
	b.WriteString(fmt.Sprintf("🛫 <b>%s</b> → <b>%s</b>\n", cities.DisplayName(o.Origin), destName))
	b.WriteString(fmt.Sprintf("📍 %s (%s) → %s (%s)\n",
		cities.AirportName(o.Origin), o.Origin, cities.AirportName(snap.DestIATA), snap.DestIATA))
	b.WriteString(fmt.Sprintf("📅 Дата вылета: %s\n", snap.DisplayDepart))
	if d := formatDuration(o.Duration); d != "" {
		b.WriteString(fmt.Sprintf("⏱️ Продолжительность полета: %s\n", d))
	}
	b.WriteString("✈️ " + formatTransfers(o.Transfers) + "\n")
	if o.Airline != "" {
		line := cities.AirlineName(o.Airline)
		if o.FlightNumber != "" {
			line += " " + o.FlightNumber
		}
		b.WriteString("🛩️ " + line + "\n")
	}

	adults := entity.PassengersFromCode(snap.PassengersCode).Adults
	if o.HasPrice() {
		b.WriteString(fmt.Sprintf("\n💰 <b>Цена за 1 пассажира:</b> %d ₽", o.Price))
		if adults > 1 {
			b.WriteString(fmt.Sprintf("\n🧮 <b>Примерная стоимость для %d взрослых:</b> ~%d ₽", adults, o.Price*adults))
		}
		b.WriteString("\n<i>(стоимость для детей и младенцев может рассчитываться по-другому)</i>")
	} else {
		b.WriteString("\n💰 <b>Цена за 1 пассажира:</b> ?")
	}
	b.WriteString(fmt.Sprintf("\n👥 <b>Пассажиры:</b> %s", snap.PassengerDesc))
	b.WriteString("\n\n⚠️ <i>Цена актуальна на момент поиска. Точная стоимость при бронировании может отличаться.</i>")
	return b.String()
}

// formatOfferList renders the "all offers" card headed by the route
// summary.
func formatOfferList(offers []entity.Offer, snap *entity.SearchSnapshot, link string) string {
	originName := cities.DisplayName(offers[0].Origin)
	destName := cities.DisplayName(snap.DestIATA)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 Все предложения (%s):\n", snap.PassengerDesc))
	b.WriteString(fmt.Sprintf("• Маршрут: <b>%s → %s</b>\n", originName, destName))
	b.WriteString(fmt.Sprintf("• Стоимость от: <b>%s</b>\n", formatPrice(offers[0])))
	b.WriteString(fmt.Sprintf("• Дата вылета: <b>%s</b>\n", snap.DisplayDepart))
	if snap.IsRoundTrip && snap.DisplayReturn != "" {
		b.WriteString(fmt.Sprintf("• Дата возврата: <b>%s</b>\n", snap.DisplayReturn))
	}
	b.WriteString("• Цены указаны <i>за 1 взрослого</i>\n")
	b.WriteString(fmt.Sprintf("🔗 <a href='%s'>Посмотреть все рейсы на Aviasales</a>", link))
	return b.String()
}

// formatTransferOptions renders airport transfer offers under a result.
func formatTransferOptions(transfers []entity.Transfer, destIATA string) string {
	if len(transfers) == 0 {
		return ""
	}
	name := cities.TransferAirports[destIATA]
	if name == "" {
		name = cities.DisplayName(destIATA)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n🚖 <b>Трансферы в %s:</b>\n", name))
	for _, t := range transfers {
		b.WriteString(fmt.Sprintf("• %.0f ₽ — %s\n", t.Price, t.Vehicle))
	}
	return b.String()
}
