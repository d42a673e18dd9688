package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yourusername/telegram-avia-bot/internal/domain/cities"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

// ErrBadFormat is returned when the text does not match the request grammar
// at all.
var ErrBadFormat = errors.New("request does not match expected format")

// UnknownCityError reports a city name that matched the grammar but is not
// in the directory. Role distinguishes origin from destination so the bot
// can word the reply.
type UnknownCityError struct {
	Role string // "origin" or "destination"
	Name string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("unknown %s city %q", e.Role, e.Name)
}

// requestRe captures origin, destination, departure date, optional return
// date and an optional passengers tail from a lowercased request line, e.g.
// "москва - дубай 15.03 - 25.03 2 взр., 1 реб".
var requestRe = regexp.MustCompile(
	`^([а-яёa-z\s]+?)\s*[-→>—\s]+\s*([а-яёa-z\s]+?)\s+(\d{1,2}\.\d{1,2})(?:\s*[-–]\s*(\d{1,2}\.\d{1,2}))?\s*(.*)?$`,
)

// Parser turns free-text messages into flight queries. The clock is
// injectable so year resolution is deterministic in tests.
type Parser struct {
	now func() time.Time
}

func New() *Parser {
	return &Parser{now: time.Now}
}

// NewWithClock builds a parser with a fixed clock.
func NewWithClock(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse matches text against the request grammar and resolves city names to
// IATA codes. The whole line is lowercased first, so case never matters.
// An origin of "везде" (or "everywhere") produces a hub fan-out query.
// Returns ErrBadFormat when the grammar does not match and *UnknownCityError
// when a city cannot be resolved.
func (p *Parser) Parse(text string) (*entity.FlightQuery, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	m := requestRe.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrBadFormat
	}
	originName := strings.TrimSpace(m[1])
	destName := strings.TrimSpace(m[2])
	departDate := m[3]
	returnDate := m[4]
	passengersPart := strings.TrimSpace(m[5])

	destIATA, ok := cities.Resolve(destName)
	if !ok {
		return nil, &UnknownCityError{Role: "destination", Name: destName}
	}

	var origin entity.Origin
	if originName == "везде" || originName == "everywhere" {
		origin = entity.AllHubs()
	} else {
		code, ok := cities.Resolve(originName)
		if !ok {
			return nil, &UnknownCityError{Role: "origin", Name: originName}
		}
		origin = entity.SingleOrigin(code)
	}

	return &entity.FlightQuery{
		Origin:      origin,
		OriginName:  originName,
		Destination: destIATA,
		DestName:    destName,
		DepartDate:  departDate,
		ReturnDate:  returnDate,
		Passengers:  ParsePassengers(passengersPart),
	}, nil
}

// Now exposes the parser clock for callers that format dates alongside a
// parsed query.
func (p *Parser) Now() time.Time {
	return p.now()
}
