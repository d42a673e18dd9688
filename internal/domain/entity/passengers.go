package entity

import (
	"fmt"
	"strings"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
)

// PassengerComposition holds the passenger counts for a booking request.
// The zero value is not valid; use NewPassengerComposition.
type PassengerComposition struct {
	Adults   int
	Children int
	Infants  int
}

// NewPassengerComposition builds a composition clamped to aviasales booking
// rules: at least one adult, at most MaxPassengers seats total, and no more
// infants than adults (infants travel on an adult's lap).
func NewPassengerComposition(adults, children, infants int) PassengerComposition {
	if adults < 1 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}
	if infants < 0 {
		infants = 0
	}

	if adults+children+infants > constants.MaxPassengers {
		remaining := constants.MaxPassengers - adults
		if remaining < 0 {
			remaining = 0
			adults = constants.MaxPassengers
		}
		if children > remaining {
			children = remaining
		}
		if infants > remaining-children {
			infants = remaining - children
		}
	}
	if infants > adults {
		infants = adults
	}

	return PassengerComposition{Adults: adults, Children: children, Infants: infants}
}

// DefaultPassengers is exactly one adult.
func DefaultPassengers() PassengerComposition {
	return PassengerComposition{Adults: 1}
}

// PassengersFromCode decodes a packed digit code ("1", "21", "211") back
// into counts. Malformed codes fall back to one adult.
func PassengersFromCode(code string) PassengerComposition {
	digits := []rune(code)
	if len(digits) == 0 || digits[0] < '1' || digits[0] > '9' {
		return DefaultPassengers()
	}
	c := PassengerComposition{Adults: int(digits[0] - '0')}
	if len(digits) > 1 && digits[1] >= '0' && digits[1] <= '9' {
		c.Children = int(digits[1] - '0')
	}
	if len(digits) > 2 && digits[2] >= '0' && digits[2] <= '9' {
		c.Infants = int(digits[2] - '0')
	}
	return c
}

// Code packs the composition into the aviasales digit string: the adults
// digit, then the children digit if non-zero, then the infants digit if
// non-zero. The clamps in NewPassengerComposition keep every count
// single-digit, which is what makes the no-separator format decodable.
func (c PassengerComposition) Code() string {
	code := fmt.Sprintf("%d", c.Adults)
	if c.Children > 0 {
		code += fmt.Sprintf("%d", c.Children)
	}
	if c.Infants > 0 {
		code += fmt.Sprintf("%d", c.Infants)
	}
	return code
}

// Description returns the human-readable Russian summary, e.g.
// "2 взр., 1 реб.".
func (c PassengerComposition) Description() string {
	var parts []string
	if c.Adults > 0 {
		parts = append(parts, fmt.Sprintf("%d взр.", c.Adults))
	}
	if c.Children > 0 {
		parts = append(parts, fmt.Sprintf("%d реб.", c.Children))
	}
	if c.Infants > 0 {
		parts = append(parts, fmt.Sprintf("%d мл.", c.Infants))
	}
	if len(parts) == 0 {
		return "1 взр."
	}
	return strings.Join(parts, ", ")
}

// Total returns the number of seats plus lap infants.
func (c PassengerComposition) Total() int {
	return c.Adults + c.Children + c.Infants
}
