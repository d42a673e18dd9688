package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

var digitsRe = regexp.MustCompile(`\d+`)

// ParsePassengers extracts a passenger composition from the free-text tail
// of a request. A bare digit string is the packed composition code itself:
// "21" is 2 adults + 1 child, not 21 adults. Otherwise the string is split
// on commas and each part is matched against category stems ("взр",
// "реб"/"дет", "мл", and English equivalents); a part with no number counts
// as 1. Empty or unrecognized input yields the default single adult.
func ParsePassengers(s string) entity.PassengerComposition {
	s = strings.TrimSpace(s)
	if s == "" {
		return entity.DefaultPassengers()
	}

	if isDigits(s) {
		c := entity.PassengersFromCode(s)
		return entity.NewPassengerComposition(c.Adults, c.Children, c.Infants)
	}

	var adults, children, infants int
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		n := 1
		if m := digitsRe.FindString(part); m != "" {
			n, _ = strconv.Atoi(m)
		}
		switch {
		case strings.Contains(part, "взр") || strings.Contains(part, "взросл") || strings.Contains(part, "adult"):
			adults = n
		case strings.Contains(part, "реб") || strings.Contains(part, "дет") || strings.Contains(part, "child"):
			children = n
		case strings.Contains(part, "мл") || strings.Contains(part, "млад") || strings.Contains(part, "infant"):
			infants = n
		}
	}

	return entity.NewPassengerComposition(adults, children, infants)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
