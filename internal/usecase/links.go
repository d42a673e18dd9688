package usecase

import (
	"strings"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/internal/infrastructure/parser"
)

// LinkBuilder assembles aviasales deep links. Marker identifies the
// affiliate; when it is empty links carry no tracking parameters at all.
type LinkBuilder struct {
	Marker string
	SubID  string
}

// NewLinkBuilder sets the default sub_id when a marker is configured
// without one.
func NewLinkBuilder(marker, subID string) *LinkBuilder {
	if subID == "" {
		subID = constants.DefaultSubID
	}
	return &LinkBuilder{Marker: marker, SubID: subID}
}

// routeSegment builds the "{ORIG}{DDMM}{DEST}[{DDMM}]{code}" path segment.
func routeSegment(origin, dest, departDate, returnDate, passengersCode string) string {
	var b strings.Builder
	b.WriteString(origin)
	b.WriteString(parser.LinkDate(departDate))
	b.WriteString(dest)
	if returnDate != "" {
		b.WriteString(parser.LinkDate(returnDate))
	}
	b.WriteString(passengersCode)
	return b.String()
}

// withMarker appends marker and sub_id tracking parameters. Untracked
// links are returned unchanged.
func (lb *LinkBuilder) withMarker(link string) string {
	if lb.Marker == "" {
		return link
	}
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + "marker=" + lb.Marker + "&sub_id=" + lb.SubID
}

// updatePassengersInLink swaps the passenger digit at the end of a
// provider-supplied route for the full composition code. Provider links
// always end the route with "1" (one passenger); everything after "?" is
// preserved.
func updatePassengersInLink(link, passengersCode string) string {
	path, query, hasQuery := strings.Cut(link, "?")
	if strings.HasSuffix(path, "1") {
		path = path[:len(path)-1] + passengersCode
	}
	if hasQuery {
		return path + "?" + query
	}
	return path
}

// BookingLink produces the deep link for one offer. A provider-supplied
// link is preferred: it pins the exact itinerary, needing only the
// passenger count fixed up. Otherwise the link is assembled from the query
// route and dates.
func (lb *LinkBuilder) BookingLink(offer entity.Offer, dest string, q SearchParams) string {
	if offer.Link != "" {
		link := offer.Link
		if strings.HasPrefix(link, "/") {
			link = constants.SiteBaseURL + link
		}
		return lb.withMarker(updatePassengersInLink(link, q.PassengersCode))
	}
	return lb.withMarker(constants.SearchBaseURL +
		routeSegment(offer.Origin, dest, q.DepartDate, q.ReturnDate, q.PassengersCode))
}

// SearchPageLink builds a plain search-page link for a route, used when no
// offers came back and the user is pointed at the site instead.
func (lb *LinkBuilder) SearchPageLink(origin, dest string, q SearchParams) string {
	return lb.withMarker(constants.SearchBaseURL +
		routeSegment(origin, dest, q.DepartDate, q.ReturnDate, q.PassengersCode))
}

// MapLink builds the "all destinations" map link for an origin.
func (lb *LinkBuilder) MapLink(origin, departDate, passengersCode string) string {
	return lb.withMarker(constants.MapBaseURL + "?params=" +
		origin + parser.LinkDate(departDate) + passengersCode)
}

// SearchParams carries the user-facing date and passenger fields a link
// needs. Dates stay in "ДД.ММ" form.
type SearchParams struct {
	DepartDate     string
	ReturnDate     string
	PassengersCode string
}
